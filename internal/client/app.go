// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Blocci/Art-Connect/internal/adapter"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
	"golang.org/x/term"
)

const maxFactorAttempts = 3

// App is the interactive console client. It prompts for credentials and
// captured biometric samples (descriptor JSON files or audio recordings) and
// walks a [Flow] to the Authenticated state.
type App struct {
	server adapter.ServerAdapter

	in  *bufio.Reader
	out io.Writer

	// readPassword hides keyboard echo when stdin is a terminal.
	readPassword func() (string, error)

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp constructs an App reading from stdin and writing to stdout.
func NewApp(server adapter.ServerAdapter, logger *logger.Logger) *App {
	return &App{
		server:       server,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		readPassword: readPasswordFromTerminal,
		logger:       logger,
	}
}

// Run implements [Client]. It executes one full authentication flow and
// finishes by requesting the factor-gated resource.
func (a *App) Run() error {
	ctx := context.Background()

	mode, err := a.chooseMode()
	if err != nil {
		return err
	}
	flow := NewFlow(a.server, mode, a.logger)

	if err = a.passwordStep(ctx, flow); err != nil {
		return err
	}
	if err = a.faceStep(ctx, flow); err != nil {
		return err
	}
	if err = a.voiceStep(ctx, flow); err != nil {
		return err
	}

	ack, err := flow.AccessProtected(ctx)
	if err != nil {
		return fmt.Errorf("access protected resource: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s\n", ack.Message)
	return nil
}

func (a *App) chooseMode() (Mode, error) {
	for {
		answer, err := a.prompt("[r]egister or [l]ogin? ")
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(answer) {
		case "r", "register":
			return ModeRegister, nil
		case "l", "login":
			return ModeLogin, nil
		}
		fmt.Fprintln(a.out, "please answer r or l")
	}
}

func (a *App) passwordStep(ctx context.Context, flow *Flow) error {
	username, err := a.prompt("username: ")
	if err != nil {
		return err
	}

	var email string
	if flow.Mode() == ModeRegister {
		if email, err = a.prompt("email: "); err != nil {
			return err
		}
	}

	fmt.Fprint(a.out, "password: ")
	password, err := a.readPassword()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	fmt.Fprintln(a.out)

	if flow.Mode() == ModeRegister {
		err = flow.SubmitRegistration(ctx, models.RegisterRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
	} else {
		err = flow.SubmitLogin(ctx, models.LoginRequest{
			Username: username,
			Password: password,
		})
	}
	if err != nil {
		return fmt.Errorf("password factor: %w", err)
	}

	// The subject claim carries the user id; shown unverified, the server
	// is the authority.
	if userID, idErr := utils.ParseUserIDFromJWT(a.server.Token()); idErr == nil {
		fmt.Fprintf(a.out, "password factor completed (user #%d)\n", userID)
	} else {
		fmt.Fprintln(a.out, "password factor completed")
	}
	return nil
}

func (a *App) faceStep(ctx context.Context, flow *Flow) error {
	for attempt := 1; attempt <= maxFactorAttempts; attempt++ {
		path, err := a.prompt("face descriptor file (JSON array): ")
		if err != nil {
			return err
		}

		d, err := loadDescriptor(path)
		if err != nil {
			fmt.Fprintf(a.out, "cannot load descriptor: %v\n", err)
			continue
		}

		result, err := flow.SubmitFace(ctx, d)
		if err != nil {
			if retryable(err) {
				fmt.Fprintf(a.out, "face factor rejected: %v\n", err)
				continue
			}
			return fmt.Errorf("face factor: %w", err)
		}
		if result.Match {
			fmt.Fprintln(a.out, "face factor completed")
			return nil
		}

		if result.Distance != nil {
			fmt.Fprintf(a.out, "face mismatch (distance %.4f), try again\n", *result.Distance)
		} else {
			fmt.Fprintln(a.out, "face mismatch, try again")
		}
	}
	return fmt.Errorf("face factor: %d attempts exhausted", maxFactorAttempts)
}

func (a *App) voiceStep(ctx context.Context, flow *Flow) error {
	for attempt := 1; attempt <= maxFactorAttempts; attempt++ {
		path, err := a.prompt("voice sample (descriptor .json or recording file): ")
		if err != nil {
			return err
		}

		var result models.MatchResponse
		if strings.EqualFold(filepath.Ext(path), ".json") {
			d, loadErr := loadDescriptor(path)
			if loadErr != nil {
				fmt.Fprintf(a.out, "cannot load descriptor: %v\n", loadErr)
				continue
			}
			result, err = flow.SubmitVoice(ctx, d)
		} else {
			audio, loadErr := os.ReadFile(path)
			if loadErr != nil {
				fmt.Fprintf(a.out, "cannot read recording: %v\n", loadErr)
				continue
			}
			result, err = flow.SubmitVoiceAudio(ctx, audio, filepath.Base(path))
		}
		if err != nil {
			if retryable(err) {
				fmt.Fprintf(a.out, "voice factor rejected: %v\n", err)
				continue
			}
			return fmt.Errorf("voice factor: %w", err)
		}
		if result.Match {
			fmt.Fprintln(a.out, "voice factor completed")
			return nil
		}

		if result.Similarity != nil {
			fmt.Fprintf(a.out, "voice mismatch (similarity %.4f), try again\n", *result.Similarity)
		} else {
			fmt.Fprintln(a.out, "voice mismatch, try again")
		}
	}
	return fmt.Errorf("voice factor: %d attempts exhausted", maxFactorAttempts)
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// retryable reports whether the user can fix the failure by re-capturing
// and resubmitting the same step.
func retryable(err error) bool {
	return errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrBadGateway)
}

// loadDescriptor reads a descriptor from a JSON file containing either a
// bare float array or a {"descriptor": [...]} object.
func loadDescriptor(path string) (models.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d models.Descriptor
	if err = json.Unmarshal(data, &d); err == nil {
		return d, nil
	}

	var wrapped models.DescriptorRequest
	if err = json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("not a descriptor JSON: %w", err)
	}
	return wrapped.Descriptor, nil
}

func readPasswordFromTerminal() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input: fall back to a plain line read.
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
