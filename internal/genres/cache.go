package genres

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"moviescout/internal/logging"
	"moviescout/internal/services"
	"moviescout/internal/tmdb"
)

// Lister fetches the provider's genre list.
type Lister interface {
	MovieGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// Cache lazily loads and memoizes the genre Catalog.
type Cache struct {
	source Lister
	logger *slog.Logger

	group singleflight.Group

	mu      sync.RWMutex
	catalog *Catalog
}

// NewCache constructs a cache backed by source.
func NewCache(source Lister, logger *slog.Logger) *Cache {
	return &Cache{
		source: source,
		logger: logging.NewComponentLogger(logger, "genres"),
	}
}

// Catalog returns the memoized catalog, fetching it on first use. Errors wrap
// services.ErrProviderUnavailable.
func (c *Cache) Catalog(ctx context.Context) (*Catalog, error) {
	if cached := c.loaded(); cached != nil {
		return cached, nil
	}
	value, err, shared := c.group.Do("genres", func() (any, error) {
		if cached := c.loaded(); cached != nil {
			return cached, nil
		}
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("genre catalog load shared with concurrent caller")
	}
	return value.(*Catalog), nil
}

// CatalogOrEmpty returns the catalog, or an empty one when loading fails. The
// failure is logged as a warning so the pipeline can continue.
func (c *Cache) CatalogOrEmpty(ctx context.Context) *Catalog {
	catalog, err := c.Catalog(ctx)
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, c.logger), "genre catalog unavailable", "genre_catalog_unavailable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify tmdb.api_key and network access"),
			logging.String(logging.FieldImpact, "genre requests match no movies for this request"),
		)
		return Empty()
	}
	return catalog
}

func (c *Cache) loaded() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

func (c *Cache) fetch(ctx context.Context) (*Catalog, error) {
	if c.source == nil {
		return nil, services.Wrap(services.ErrProviderUnavailable, "genres", "load", "no catalog source configured", nil)
	}
	list, err := c.source.MovieGenres(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrProviderUnavailable, "genres", "load", "fetch genre list", err)
	}
	catalog := NewCatalog(list)
	if catalog.Len() == 0 {
		return nil, services.Wrap(services.ErrProviderUnavailable, "genres", "load", "provider returned no usable genres", nil)
	}

	c.mu.Lock()
	c.catalog = catalog
	c.mu.Unlock()

	c.logger.Debug("genre catalog loaded", logging.Int("genres", catalog.Len()))
	return catalog, nil
}
