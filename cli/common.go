package cli

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/montrey/workspaces/config"
	"github.com/montrey/workspaces/search"
	"github.com/montrey/workspaces/store"
)

// EnvDebug turns on logging to a file in the config directory.
const EnvDebug = "WORKSPACES_DEBUG"

// app bundles what every command needs.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	closeLog func()
}

// openApp loads the configuration, applies flag overrides, starts logging
// and opens the store.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	closeLog := setupLogging(cfg)

	db, err := store.InitDB(cfg.Paths.Database)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to init db: %w", err)
	}
	log.Printf("using database %s", cfg.Paths.Database)
	return &app{cfg: cfg, db: db, closeLog: closeLog}, nil
}

func (a *app) Close() {
	a.db.Close()
	a.closeLog()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Paths.Database = dbPath
	}
	if backend != "" {
		cfg.Picker.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends the standard logger to the configured file. Without
// one, logs are discarded: the picker owns the terminal.
func setupLogging(cfg *config.Config) func() {
	path := cfg.Paths.LogFile
	if path == "" && os.Getenv(EnvDebug) != "" {
		path = filepath.Join(config.Dir(), "debug.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(path, "workspaces")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}
}

func toEntries(workspaces []store.Workspace) []search.Entry {
	entries := make([]search.Entry, len(workspaces))
	for i, ws := range workspaces {
		entries[i] = search.Entry{Name: ws.Name, Path: ws.Path}
	}
	return entries
}
