// Command dialpick shows a searchable directory of countries with their
// dialing prefixes and prints the one you pick.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/dialpick/internal/config"
	"github.com/jask/dialpick/internal/country"
	"github.com/jask/dialpick/internal/database"
	"github.com/jask/dialpick/internal/database/repository"
	"github.com/jask/dialpick/internal/locale"
	"github.com/jask/dialpick/internal/logging"
	"github.com/jask/dialpick/internal/tui"
)

func main() {
	query := flag.String("query", "", "Print entries matching the query and exit")
	history := flag.Int("history", 0, "Print the last N selections and exit")
	initConfig := flag.Bool("init-config", false, "Write the effective configuration file and exit")
	flag.Parse()

	if err := run(*query, *history, *initConfig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(query string, history int, initConfig bool) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if initConfig {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println(config.Path())
		return nil
	}

	log, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closer.Close()

	catalog, err := locale.NewCatalog(cfg.Locale)
	if err != nil {
		return err
	}
	dir := country.NewDirectory(catalog, cfg.CommonCodes)
	log.WithFields(logrus.Fields{
		"locale":      catalog.Tag().String(),
		"all":         dir.RowCount(1),
		"common":      dir.RowCount(0),
		"territories": len(catalog.AllTerritoryCodes()),
	}).Debug("directory loaded")

	if query != "" {
		dir.SetQuery(query)
		printEntries(os.Stdout, dir.Filtered())
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	selections := repository.NewSelectionRepo(db)

	if history > 0 {
		recent, err := selections.Recent(ctx, history)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		for _, s := range recent {
			fmt.Printf("%s  %s %-6s %s\n", s.SelectedAt.Local().Format(time.DateTime), s.Code, s.Prefix, s.Name)
		}
		return nil
	}

	dir.SetListener(country.ListenerFunc(func(e country.Entry) {
		_, err := selections.Record(ctx, repository.Selection{Code: e.Code, Name: e.Name, Prefix: e.Prefix})
		if err != nil {
			log.WithError(err).WithField("code", e.Code).Warn("record selection")
			return
		}
		log.WithField("code", e.Code).Info("country selected")
	}))

	model := tui.New(dir, cfg.UI.PageSize)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	if entry, ok := model.Chosen(); ok {
		printEntries(os.Stdout, []country.Entry{entry})
	}
	return nil
}

func printEntries(w io.Writer, entries []country.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %-6s %s %s\n", e.Code, e.Prefix, e.Flag, e.Name)
	}
}
