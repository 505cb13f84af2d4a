package repository

import (
	"context"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// Catalog reads the authored game data. Rows are returned in id order;
// rarities are ordered by threshold.
type Catalog interface {
	GetRarities(ctx context.Context) ([]domain.Rarity, error)
	GetStyles(ctx context.Context) ([]domain.Style, error)
	GetThemes(ctx context.Context) ([]domain.Theme, error)
	GetSeries(ctx context.Context) ([]domain.Series, error)
	GetCharacters(ctx context.Context) ([]domain.Character, error)
	// GetVariants returns every variant with its reference images and raw card configurations.
	GetVariants(ctx context.Context) ([]domain.CharacterVariant, error)
	GetLegacyCardKeys(ctx context.Context) ([]domain.ImageKey, error)
}

// CatalogSeeder writes authored game data.
type CatalogSeeder interface {
	// ApplySeed upserts the seed in one transaction. Existing players keep
	// their progress.
	ApplySeed(ctx context.Context, seed *domain.CatalogSeed) (*domain.SeedResult, error)
}
