package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"gamepick/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF6B6B"))

func fatal(err error) {
	core.Logger.Errorw("fatal", "error", err)
	core.SyncLogging()
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+err.Error())
	os.Exit(1)
}

func initLogging(ops *core.Options) {
	var err error
	if ops.LogLocation != "" {
		err = core.InitLoggingWithPath(ops.LogLocation, ops.Verbose)
	} else {
		err = core.InitLoggingWithDefaultPath(ops.Verbose)
	}

	if err != nil {
		if consoleErr := core.InitConsoleLogging(ops.Verbose); consoleErr != nil {
			fmt.Fprintln(os.Stderr, consoleErr)
			return
		}
		core.Logger.Warnw("cannot open log file, logging to stderr", "error", err)
	}
}

func main() {
	ops := &core.Options{}
	parser := flags.NewParser(ops, flags.Default)
	parser.Usage = "[--generate | --select] [OPTIONS]"

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if ops.Version {
		fmt.Println(core.APP_NAME, core.GetVersion())
		return
	}

	initLogging(ops)
	defer core.SyncLogging()

	settingsPath := ops.Config
	if settingsPath == "" {
		settingsPath = core.GetDefaultSettingsPath()
	}

	settings, err := core.LoadOrCreateUserSettings(settingsPath)
	if err != nil {
		fatal(err)
	}
	settings.ApplyOptions(ops)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := core.MakeApp(settings, ops, os.Stdout)
	if err := app.RequestMainOperation(ctx, ops); err != nil {
		stop()
		fatal(err)
	}
}
