package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/catalog"
	"careergranny/internal/config"
	"careergranny/internal/eventbus"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, dataFile, logPath string
	flag.StringVar(&configPath, "config", config.FileName, "Path to the config file")
	flag.StringVar(&dataFile, "data", "", "Catalog YAML or .ics file (overrides data_file)")
	flag.StringVar(&logPath, "log", "", "Log file (overrides log_file)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		if cfg == nil {
			cfg = config.DefaultConfig()
		}
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
		appLog.SetOutput(logFile)
	}
	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))

	// Load the catalog before the UI starts; a broken data file is fatal
	cat, source, err := catalog.Load(cfg.DataFile)
	if err != nil {
		appLog.Error("catalog load failed", err, "source", source)
		fmt.Fprintf(os.Stderr, "Error loading catalog %s: %v\n", source, err)
		os.Exit(1)
	}
	store := logic.NewMemoryCatalogStore(cat.Search, cat.Events, cat.Stats)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Forward what the UI should hear about
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	unsubscribe := []func(){
		bus.Subscribe(eventbus.EventError, forward),
		bus.Subscribe(eventbus.EventCatalogLoaded, forward),
	}
	defer func() {
		for _, u := range unsubscribe {
			u()
		}
	}()

	bus.Publish(eventbus.CatalogLoadedEvent{
		Source:      source,
		SearchCount: len(cat.Search),
		EventCount:  len(cat.Events),
	})

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		appLog.Error("program exited", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	appLog.Info("program exited")
}
