package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/config"
	"github.com/abhisek/disciple/internal/logger"
	"github.com/abhisek/disciple/internal/prefs"
	"github.com/abhisek/disciple/internal/progress"
	"github.com/abhisek/disciple/internal/store"
)

// session is everything a command needs for one run.
type session struct {
	cfg      config.Config
	logger   *zap.Logger
	catalog  *catalog.Catalog
	progress *progress.Store
	prefs    *prefs.Prefs
	backend  store.Backend
	db       *store.Store
}

// openSession resolves config, loads the catalog and opens progress storage.
// A broken catalog is fatal. Storage that cannot be opened is not: the
// session continues in memory after a warning.
func openSession(cmd *cobra.Command, v *viper.Viper, tui bool) (*session, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("content failed to load: %w", err)
	}

	s := &session{cfg: cfg, catalog: c}

	var backend store.Backend
	dbPath := ""
	if cfg.Ephemeral {
		backend = store.NewMemory()
	} else {
		dbPath, err = resolveDBPath(cfg)
		if err == nil {
			s.db, err = store.Open(dbPath)
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Progress storage unavailable:", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "Changes will not be saved this session.")
			backend = store.Unavailable{Err: err}
		} else {
			backend = s.db
		}
	}

	s.logger, err = buildLogger(cfg, dbPath, tui)
	if err != nil {
		s.closeDB()
		return nil, err
	}

	s.backend = backend
	s.progress = progress.Open(backend, c, progress.WithLogger(s.logger.Named("progress")))
	s.prefs = prefs.New(backend, s.logger.Named("prefs"))
	return s, nil
}

// Close flushes progress and releases the database.
func (s *session) Close() {
	s.progress.Close()
	s.closeDB()
	_ = s.logger.Sync()
}

func (s *session) closeDB() {
	if s.db != nil {
		s.db.Close()
	}
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CoursePath != "" {
		return catalog.LoadFile(cfg.CoursePath)
	}
	return catalog.Load()
}

// resolveDBPath returns the database path using --db / DISCIPLE_DB
// (highest priority), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// buildLogger logs to stderr for CLI commands. The TUI owns the terminal, so
// it logs to a file beside the database, or nowhere for ephemeral sessions.
func buildLogger(cfg config.Config, dbPath string, tui bool) (*zap.Logger, error) {
	opts := logger.Options{Mode: cfg.LogMode, Level: cfg.LogLevel}
	if tui {
		if dbPath == "" {
			return zap.NewNop(), nil
		}
		opts.Path = filepath.Join(filepath.Dir(dbPath), "disciple.log")
	}
	l, err := logger.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

// explain turns core errors into messages that tell the user what to do.
func explain(err error) error {
	var unknown *progress.ErrUnknownLesson
	if errors.As(err, &unknown) {
		return fmt.Errorf("%w (run `disciple lessons` to list lesson IDs)", err)
	}
	return err
}
