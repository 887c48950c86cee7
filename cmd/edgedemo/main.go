package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"edgedemo/internal/config"
	"edgedemo/internal/edge"
	"edgedemo/internal/state"
	"edgedemo/internal/telemetry"
	"edgedemo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

// flags holds the parsed command line.
type flags struct {
	configPath string
	effects    string
	debug      bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to a config file (default: user config dir)")
	flag.StringVar(&f.effects, "effects", "", "scroll edge effects: auto, on or off (overrides config)")
	flag.BoolVar(&f.debug, "debug", false, "write a debug log to the configured log file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edgedemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Edgedemo shows scroll edge effects on tabbed card lists.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func run(f flags) error {
	if err := loadDotenv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	mode, err := cfg.EffectsMode()
	if err != nil {
		return err
	}
	if f.effects != "" {
		if mode, err = edge.ParseMode(f.effects); err != nil {
			return fmt.Errorf("-effects: %w", err)
		}
	}

	if f.debug {
		logFile, err := tea.LogToFile(cfg.Log.File, "edgedemo")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	exporter, err := telemetry.New(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	capability := edge.DetectCapability(mode, lipgloss.ColorProfile())
	log.Printf("start: effects=%s edge effects supported=%v options=%+v", mode, capability.SupportsEdgeEffects(), opts)

	model := ui.NewAppModel(ui.AppConfig{
		Options:    opts,
		Capability: capability,
		Listeners: func(tab string) []state.Listener {
			return []state.Listener{exporter.Listener(tab)}
		},
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// loadDotenv reads path into the environment. A missing file is fine.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "edgedemo: %v\n", err)
		os.Exit(1)
	}
}
