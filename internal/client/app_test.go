// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/mock"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScriptedApp(server *mock.MockServerAdapter, input, password string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		server:       server,
		in:           bufio.NewReader(strings.NewReader(input)),
		out:          out,
		readPassword: func() (string, error) { return password, nil },
		logger:       logger.Nop(),
	}, out
}

func writeDescriptorFile(t *testing.T, d models.Descriptor) string {
	t.Helper()
	data, err := json.Marshal(d)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "descriptor.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestApp_Run_LoginHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	face := models.Descriptor{0.1, 0.2}
	voice := models.Descriptor{0.3, 0.4}
	facePath := writeDescriptorFile(t, face)
	voicePath := writeDescriptorFile(t, voice)

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Token().Return("").AnyTimes()
	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "alice", Password: "secret"}).Return(nil),
		server.EXPECT().VerifyFace(gomock.Any(), face).
			Return(models.MatchResponse{Match: true, Distance: floatPtr(0.2)}, nil),
		server.EXPECT().VerifyVoice(gomock.Any(), voice).
			Return(models.MatchResponse{Match: true, Similarity: floatPtr(0.9)}, nil),
		server.EXPECT().AccessProtected(gomock.Any()).
			Return(models.AckResponse{Message: "access granted"}, nil),
	)

	input := "l\nalice\n" + facePath + "\n" + voicePath + "\n"
	app, out := newScriptedApp(server, input, "secret")

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "access granted")
}

func TestApp_Run_RegisterCollectsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	face := models.Descriptor{0.1}
	voice := models.Descriptor{0.2}
	facePath := writeDescriptorFile(t, face)
	voicePath := writeDescriptorFile(t, voice)

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Token().Return("").AnyTimes()
	gomock.InOrder(
		server.EXPECT().Register(gomock.Any(), models.RegisterRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "hunter2",
		}).Return(nil),
		server.EXPECT().EnrollFace(gomock.Any(), face).Return(nil),
		server.EXPECT().EnrollVoice(gomock.Any(), voice).Return(nil),
		server.EXPECT().AccessProtected(gomock.Any()).
			Return(models.AckResponse{Message: "access granted"}, nil),
	)

	input := "r\nbob\nbob@example.com\n" + facePath + "\n" + voicePath + "\n"
	app, _ := newScriptedApp(server, input, "hunter2")

	require.NoError(t, app.Run())
}

func TestApp_Run_FaceMismatchRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	face := models.Descriptor{0.1, 0.2}
	voice := models.Descriptor{0.3}
	facePath := writeDescriptorFile(t, face)
	voicePath := writeDescriptorFile(t, voice)

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Token().Return("").AnyTimes()
	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil),
		server.EXPECT().VerifyFace(gomock.Any(), face).
			Return(models.MatchResponse{Match: false, Distance: floatPtr(0.9)}, nil),
		server.EXPECT().VerifyFace(gomock.Any(), face).
			Return(models.MatchResponse{Match: true, Distance: floatPtr(0.2)}, nil),
		server.EXPECT().VerifyVoice(gomock.Any(), voice).
			Return(models.MatchResponse{Match: true, Similarity: floatPtr(0.8)}, nil),
		server.EXPECT().AccessProtected(gomock.Any()).
			Return(models.AckResponse{Message: "access granted"}, nil),
	)

	input := "l\nalice\n" + facePath + "\n" + facePath + "\n" + voicePath + "\n"
	app, out := newScriptedApp(server, input, "secret")

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "face mismatch (distance 0.9000)")
}

func TestApp_Run_AttemptsExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	face := models.Descriptor{0.1}
	facePath := writeDescriptorFile(t, face)

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Token().Return("").AnyTimes()
	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil)
	server.EXPECT().VerifyFace(gomock.Any(), face).
		Return(models.MatchResponse{Match: false, Distance: floatPtr(0.9)}, nil).
		Times(maxFactorAttempts)

	input := "l\nalice\n" + strings.Repeat(facePath+"\n", maxFactorAttempts)
	app, _ := newScriptedApp(server, input, "secret")

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attempts exhausted")
}

// After the password step the app surfaces the user id carried in the
// token's subject claim.
func TestApp_Run_DisplaysUserIDFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token, err := utils.GenerateJWTToken("test-issuer", 7, "session-1", time.Hour, "sign-key")
	require.NoError(t, err)

	face := models.Descriptor{0.1}
	voice := models.Descriptor{0.2}
	facePath := writeDescriptorFile(t, face)
	voicePath := writeDescriptorFile(t, voice)

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Token().Return(token.SignedString).AnyTimes()
	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil),
		server.EXPECT().VerifyFace(gomock.Any(), face).
			Return(models.MatchResponse{Match: true, Distance: floatPtr(0.2)}, nil),
		server.EXPECT().VerifyVoice(gomock.Any(), voice).
			Return(models.MatchResponse{Match: true, Similarity: floatPtr(0.9)}, nil),
		server.EXPECT().AccessProtected(gomock.Any()).
			Return(models.AckResponse{Message: "access granted"}, nil),
	)

	input := "l\nalice\n" + facePath + "\n" + voicePath + "\n"
	app, out := newScriptedApp(server, input, "secret")

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "password factor completed (user #7)")
}

func TestLoadDescriptor_BareArrayAndWrapped(t *testing.T) {
	want := models.Descriptor{0.5, -0.25}

	barePath := writeDescriptorFile(t, want)
	got, err := loadDescriptor(barePath)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := json.Marshal(models.DescriptorRequest{Descriptor: want})
	require.NoError(t, err)
	wrappedPath := filepath.Join(t.TempDir(), "wrapped.json")
	require.NoError(t, os.WriteFile(wrappedPath, data, 0o600))

	got, err = loadDescriptor(wrappedPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadDescriptor_MissingFile(t *testing.T) {
	_, err := loadDescriptor(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
