package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, template_version, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, face_descriptor, voice_descriptor, template_version, created_at
    FROM users
    WHERE username = $1;`

	getUserByID = `SELECT user_id, username, email, password_hash, face_descriptor, voice_descriptor, template_version, created_at
    FROM users
    WHERE user_id = $1;`

	saveFaceDescriptor = `UPDATE users
    SET face_descriptor = $1, template_version = template_version + 1
    WHERE user_id = $2 AND template_version = $3
    RETURNING template_version;`

	saveVoiceDescriptor = `UPDATE users
    SET voice_descriptor = $1, template_version = template_version + 1
    WHERE user_id = $2 AND template_version = $3
    RETURNING template_version;`

	getFaceDescriptor = `SELECT face_descriptor
    FROM users
    WHERE user_id = $1;`

	getVoiceDescriptor = `SELECT voice_descriptor
    FROM users
    WHERE user_id = $1;`

	getTemplateVersion = `SELECT template_version
    FROM users
    WHERE user_id = $1;`

	createSession = `INSERT INTO auth_sessions (session_id, user_id, factors, expires_at)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	getSession = `SELECT session_id, user_id, factors, expires_at, created_at
    FROM auth_sessions
    WHERE session_id = $1 AND expires_at > NOW();`

	updateSessionFactors = `UPDATE auth_sessions
    SET factors = $1
    WHERE session_id = $2;`

	deleteExpiredSessions = `DELETE FROM auth_sessions
    WHERE expires_at <= NOW();`
)
