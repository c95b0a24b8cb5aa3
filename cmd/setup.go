package cmd

import (
	"fmt"
	"os"

	"audiobook-exporter/core/catalog"
	"audiobook-exporter/core/config"
	"audiobook-exporter/core/logger"
	"audiobook-exporter/core/storage"
	"audiobook-exporter/feature/audiobooks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session is the shared state of one command invocation.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	svc    *audiobooks.Service
	source string
}

// newSession loads configuration, builds the run-scoped logger and resolves
// the library root. sourceFlag wins over LIBRARY_SOURCE when non-empty.
func newSession(sourceFlag string) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	if sourceFlag != "" {
		cfg.Library.Source = sourceFlag
	}
	source := cfg.Library.ResolveSource(homeDir(l))

	return &session{
		cfg:    cfg,
		logger: l,
		svc:    audiobooks.NewService(storage.NewOSClient(), cfg.Library, l),
		source: source,
	}, nil
}

func (s *session) loadCatalog() (*catalog.Catalog, error) {
	return s.svc.LoadCatalog(s.source)
}

func homeDir(l *zap.Logger) string {
	home, err := os.UserHomeDir()
	if err != nil {
		l.Warn("Could not determine home directory", zap.Error(err))
		return ""
	}
	return home
}
