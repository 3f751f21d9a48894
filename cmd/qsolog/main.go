package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tansy/qsolog/core"
	"github.com/tansy/qsolog/internal/config"
	"github.com/tansy/qsolog/internal/database"
	"github.com/tansy/qsolog/internal/database/repository"
	"github.com/tansy/qsolog/internal/service"
	"github.com/tansy/qsolog/tabs"
)

func main() {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	qsoRepo := repository.NewQSORepo(db)
	dupes := &service.DupeChecker{Log: qsoRepo}

	logbook := tabs.NewLogbookTab(qsoRepo, dupes, cfg.LayoutResource())
	keys := core.NewKeyRegistry(core.DefaultBindings())
	model := core.NewModel(cfg.Station.Callsign, []core.Tab{logbook}, keys, db)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// setupLogging routes slog diagnostics to a file when QSOLOG_DEBUG names
// one; otherwise debug chatter from the dialogs is dropped.
func setupLogging() {
	path := os.Getenv("QSOLOG_DEBUG")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("warn: debug log unavailable: %v", err)
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
