package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// Store serves catalog snapshots.
type Store interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Invalidate()
}

type store struct {
	repo  repository.Catalog
	cache *expirable.LRU[string, *Snapshot]
	group singleflight.Group
}

// NewStore creates a catalog store that caches snapshots for ttl.
// A non-positive ttl disables caching.
func NewStore(repo repository.Catalog, ttl time.Duration) Store {
	s := &store{repo: repo}
	if ttl > 0 {
		s.cache = expirable.NewLRU[string, *Snapshot](1, nil, ttl)
	}
	return s
}

// Snapshot returns the cached snapshot or loads a fresh one. Concurrent
// misses share a single load.
func (s *store) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.Get(snapshotKey); ok {
			return snap, nil
		}
	}

	v, err, _ := s.group.Do(snapshotKey, func() (any, error) {
		snap, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Add(snapshotKey, snap)
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate drops the cached snapshot.
func (s *store) Invalidate() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *store) load(ctx context.Context) (*Snapshot, error) {
	log := logger.FromContext(ctx)

	rarities, err := s.repo.GetRarities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	styles, err := s.repo.GetStyles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	themes, err := s.repo.GetThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	series, err := s.repo.GetSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	characters, err := s.repo.GetCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	variants, err := s.repo.GetVariants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}

	snap := NewSnapshot(rarities, styles, themes, series, characters, variants)
	if snap.DroppedConfigurations > 0 {
		log.Warn(LogMsgDroppedConfigurations, "count", snap.DroppedConfigurations)
	}
	log.Debug(LogMsgCatalogLoaded,
		"rarities", len(rarities),
		"styles", len(styles),
		"themes", len(themes),
		"variants", len(variants),
		"rollable_variants", len(snap.RollableVariants()))
	return snap, nil
}
