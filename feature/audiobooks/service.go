package audiobooks

import (
	"audiobook-exporter/core/catalog"
	"audiobook-exporter/core/export"
	"audiobook-exporter/core/reconcile"
	"audiobook-exporter/core/storage"

	"go.uber.org/zap"
)

// Service handles audiobook library operations.
type Service struct {
	client  storage.Client
	library catalog.Config
	logger  *zap.Logger
}

// NewService creates a new audiobooks service.
func NewService(client storage.Client, library catalog.Config, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		library: library,
		logger:  logger,
	}
}

// LoadCatalog reads the metadata document under source.
func (s *Service) LoadCatalog(source string) (*catalog.Catalog, error) {
	metadataPath := s.library.MetadataPath(source)
	s.logger.Info("Reading audiobook library", zap.String("path", metadataPath))

	cat, err := catalog.Load(s.client, metadataPath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Found audiobooks",
		zap.Int("books", len(cat.Books)),
		zap.Int("tracks", cat.TrackCount()),
	)
	return cat, nil
}

// Diff classifies every track of cat against the destination.
func (s *Service) Diff(cat *catalog.Catalog, source, dest string) ([]reconcile.FileDiff, reconcile.Summary) {
	diffs := reconcile.ComputeDiff(s.client, cat, source, dest)
	summary := reconcile.Summarize(diffs)

	s.logger.Debug("Diff computed",
		zap.Int("new", summary.NewFiles),
		zap.Int("exists", summary.ExistingFiles),
		zap.Int("source_missing", summary.MissingFiles),
	)
	return diffs, summary
}

// ResolveLink downgrades a symlink request to a copy when the destination
// filesystem cannot hold links.
func (s *Service) ResolveLink(requested bool) bool {
	if requested && !s.client.SupportsSymlinks() {
		s.logger.Warn("Symbolic links are not supported here, copying files instead")
		return false
	}
	return requested
}

// Export runs the executor over cat.
func (s *Service) Export(cat *catalog.Catalog, opts export.Options) (*export.Stats, error) {
	opts.Link = s.ResolveLink(opts.Link)
	return export.NewExecutor(s.client, s.logger).Export(cat, opts)
}
