package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mmcdole/showbox/internal/adapter"
	"github.com/mmcdole/showbox/internal/adapter/tvmaze"
	"github.com/mmcdole/showbox/internal/domain"
)

// SourceConfig contains the configuration needed to create a Catalog
type SourceConfig struct {
	Type    adapter.CatalogType
	URL     string
	Timeout time.Duration
}

// NewClient creates a Catalog based on the configured catalog type.
// This factory function abstracts away the specific backend implementation.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid catalog URL: %q", cfg.URL)
		}
	}

	switch cfg.Type {
	case adapter.CatalogTypeTVMaze, "":
		return tvmaze.NewClient(cfg.URL, cfg.Timeout, logger), nil

	default:
		return nil, fmt.Errorf("unknown catalog type: %s", cfg.Type)
	}
}

// NewClientFromConfig creates a Catalog from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.Catalog, error) {
	return NewClient(&SourceConfig{
		Type:    cfg.Catalog.Type,
		URL:     cfg.Catalog.URL,
		Timeout: cfg.Catalog.Timeout,
	}, logger)
}
