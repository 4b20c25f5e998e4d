package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/timer"
	"github.com/akyairhashvil/dialtimer/internal/tui"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

func main() {
	if err := run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := requireTerminal(int(os.Stdout.Fd())); err != nil {
		return err
	}

	// 1. Logging goes to a file; the terminal belongs to the TUI.
	if err := setupLogging(); err != nil {
		return err
	}
	defer func() {
		util.LogError("close log", util.CloseLogging())
	}()

	// 2. One controller for the session, driven by the real clock.
	ctrl := timer.New(clock.NewRealClock(), timer.Options{TickInterval: config.TickInterval})
	defer ctrl.Close()

	util.Infof("%s starting", config.AppName)
	p := tea.NewProgram(tui.NewMainModel(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	util.Infof("%s exiting", config.AppName)
	return nil
}

func requireTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w (fd %d)", ErrNotTerminal, fd)
	}
	return nil
}

func setupLogging() error {
	util.SetLevel(util.ParseLevel(os.Getenv(config.LogLevelEnv)))
	if err := util.InitLogging(util.DataDir(config.AppName), config.LogFileName); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}
