package core

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gamepick/platform"
)

type Starter func(cmd *exec.Cmd) error

// Launcher hands a steam:// URI to the platform URI handler.
type Launcher struct {
	Command string
	Args    []string
	Scheme  string
	DryRun  bool
	Out     io.Writer
	start   Starter
}

func NewLauncher(settings *UserSettings, dryRun bool) *Launcher {
	return &Launcher{
		Command: settings.Launcher.Command,
		Args:    settings.Launcher.Args,
		Scheme:  settings.UriScheme,
		DryRun:  dryRun,
		Out:     os.Stdout,
		start:   startDetached,
	}
}

func GameUri(scheme string, id string) string {
	return fmt.Sprintf("%v://rungameid/%v", scheme, id)
}

func (l *Launcher) BuildCommand(d *Descriptor) *exec.Cmd {
	args := append(append([]string{}, l.Args...), GameUri(l.Scheme, d.Id))
	return exec.Command(l.Command, args...)
}

// Launch starts the handler for d and returns without waiting on it.
func (l *Launcher) Launch(d *Descriptor) error {
	cmd := l.BuildCommand(d)
	if l.DryRun {
		fmt.Fprintln(l.Out, strings.Join(cmd.Args, " "))
		return nil
	}

	Logger.Infow("launching game", "id", d.Id, "name", d.Name, "command", cmd.Args)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to launch %v: %w", d.Name, err)
	}

	return nil
}

func startDetached(cmd *exec.Cmd) error {
	platform.Detach(cmd)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}
