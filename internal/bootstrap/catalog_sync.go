package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/repository"
	"github.com/osse101/GatchaLife_Go/internal/validation"
)

// SyncCatalog checks the catalog seed file against its JSON schema, then loads,
// validates, and applies the catalog seed file to the
// database, then drops the cached snapshot so the next roll sees the new
// catalog. An empty path skips the sync.
func SyncCatalog(ctx context.Context, path string, seeder repository.CatalogSeeder, store catalog.Store) error {
	if path == "" {
		slog.Info(LogMsgCatalogSyncDisabled)
		return nil
	}
	slog.Info(LogMsgSyncingCatalog, "path", path)

	if err := validation.NewSchemaValidator().ValidateFile(path, validation.CatalogSchema); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCatalogSchema, err)
	}

	seed, err := catalog.LoadSeed(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := catalog.ValidateSeed(seed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := seeder.ApplySeed(ctx, seed)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}
	if store != nil {
		store.Invalidate()
	}

	slog.Info(LogMsgCatalogSynced,
		"rarities", result.Rarities,
		"styles", result.Styles,
		"themes", result.Themes,
		"series", result.Series,
		"characters", result.Characters,
		"variants", result.Variants,
		"players_created", result.Players)

	return nil
}
