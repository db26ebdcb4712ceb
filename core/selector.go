package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Selector presents names to the user and returns the one picked. An
// empty string with a nil error means the user picked nothing.
type Selector interface {
	Select(ctx context.Context, names []string) (string, error)
}

// ExternalSelector pipes the names through an interactive finder such as fzf.
type ExternalSelector struct {
	Command string
	Args    []string
	Stderr  io.Writer
}

// exit codes fzf (and compatible finders) use for "nothing chosen"
const (
	finderNoMatch     = 1
	finderInterrupted = 130
)

func (s *ExternalSelector) Select(ctx context.Context, names []string) (string, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	Logger.Debugw("running selector", "command", s.Command, "args", s.Args)

	cmd.Stdin = strings.NewReader(strings.Join(names, "\n") + "\n")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			Logger.Infow("selector interrupted", "error", ctx.Err())
			return "", nil
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case finderNoMatch, finderInterrupted:
				Logger.Infow("selector returned no choice", "code", exitErr.ExitCode())
				return "", nil
			}
		}
		return "", fmt.Errorf("selector %v failed: %w", s.Command, err)
	}

	choice, _, _ := strings.Cut(stdout.String(), "\n")
	return strings.TrimSpace(choice), nil
}

// NewSelector picks the external finder unless the built-in one is requested
// or the finder is not installed.
func NewSelector(settings *UserSettings) Selector {
	if settings.BuiltinSelector {
		return &BuiltinSelector{}
	}

	if _, err := exec.LookPath(settings.Finder.Command); err != nil {
		Logger.Warnw("finder not found, using built-in selector", "command", settings.Finder.Command, "error", err)
		return &BuiltinSelector{}
	}

	return &ExternalSelector{
		Command: settings.Finder.Command,
		Args:    settings.Finder.Args,
	}
}
