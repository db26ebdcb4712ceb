package core

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:embed version.txt
var VersionRevision string

const APP_NAME = "gamepick"

var (
	ErrSteamRootMissing     = errors.New("steam root not accessible")
	ErrDescriptorDirMissing = errors.New("descriptor directory missing")
	ErrNoDescriptors        = errors.New("no descriptors")
	ErrSelectionNotFound    = errors.New("selection not found")
)

type Options struct {
	Generate        bool   `short:"g" long:"generate" description:"Scan the Steam libraries and write one descriptor per game"`
	Select          bool   `short:"s" long:"select" description:"Pick a game from the existing descriptors and launch it"`
	Config          string `short:"c" long:"config" description:"Path to the settings file. Defaults to User's Config Dir / gamepick / settings.yaml"`
	SteamRoot       string `short:"r" long:"steam-root" description:"Steam install directory to scan, overrides the settings file"`
	DescriptorDir   string `short:"o" long:"descriptor-dir" description:"Directory descriptors are written to and read from"`
	LogLocation     string `short:"l" long:"log-location" description:"Specifies path to logfile. Defaults to User's Cache Dir / gamepick.log"`
	BuiltinSelector bool   `short:"b" long:"builtin-selector" description:"Use the built-in terminal selector instead of the external finder"`
	Prune           bool   `short:"p" long:"prune" description:"Remove descriptors of games that are no longer installed"`
	DryRun          bool   `short:"d" long:"dry-run" description:"Print the launch command instead of running it"`
	Verbose         bool   `short:"v" long:"verbose" description:"Enable verbose logging"`
	Version         bool   `short:"V" long:"version" description:"Print the version and exit"`
}

type Mode int

const (
	ModeAll Mode = iota
	ModeGenerate
	ModeSelect
)

// GetMode maps the flags to what should run. Both or neither means everything.
func (ops *Options) GetMode() Mode {
	switch {
	case ops.Generate && !ops.Select:
		return ModeGenerate
	case ops.Select && !ops.Generate:
		return ModeSelect
	default:
		return ModeAll
	}
}

func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeSelect:
		return "select"
	default:
		return "all"
	}
}

func GetVersion() string {
	return strings.TrimSpace(VersionRevision)
}

// App bundles what one invocation needs. Selector is resolved on first use
// when left nil.
type App struct {
	Settings *UserSettings
	Fs       LocalFs
	Selector Selector
	Launcher *Launcher
	Out      io.Writer
}

func MakeApp(settings *UserSettings, ops *Options, out io.Writer) *App {
	launcher := NewLauncher(settings, ops.DryRun)
	launcher.Out = out

	return &App{
		Settings: settings,
		Fs:       GetDefaultLocalFs(),
		Launcher: launcher,
		Out:      out,
	}
}

func (app *App) Generate(prune bool) error {
	result, err := GenerateDescriptors(app.Fs, app.Settings, prune)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "Wrote %v descriptors to %v (%v skipped", len(result.Written), app.Settings.DescriptorDir, len(result.Excluded))
	if prune {
		fmt.Fprintf(app.Out, ", %v pruned", len(result.Pruned))
	}
	fmt.Fprintln(app.Out, ")")
	return nil
}

// SelectAndLaunch runs the selector over the descriptor dir and launches
// the pick. No pick is not an error.
func (app *App) SelectAndLaunch(ctx context.Context) error {
	names, err := ListDescriptors(app.Fs, app.Settings.DescriptorDir)
	if err != nil {
		return err
	}

	if app.Selector == nil {
		app.Selector = NewSelector(app.Settings)
	}

	choice, err := app.Selector.Select(ctx, names)
	if err != nil {
		return err
	}

	if choice == "" {
		Logger.Infow("nothing selected")
		return nil
	}

	descriptor, err := LoadDescriptor(app.Fs, app.Settings.DescriptorDir, choice)
	if err != nil {
		return err
	}

	return app.Launcher.Launch(descriptor)
}

func (app *App) RequestMainOperation(ctx context.Context, ops *Options) error {
	mode := ops.GetMode()
	Logger.Infow("starting", "mode", mode.String(), "version", GetVersion())

	if mode == ModeAll || mode == ModeGenerate {
		if err := app.Generate(ops.Prune); err != nil {
			return err
		}
	}

	if mode == ModeAll || mode == ModeSelect {
		if err := app.SelectAndLaunch(ctx); err != nil {
			return err
		}
	}

	return nil
}
