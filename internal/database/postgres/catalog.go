package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetRarities retrieves all rarities ordered by threshold
func (r *CatalogRepository) GetRarities(ctx context.Context) ([]domain.Rarity, error) {
	query := `
		SELECT id, name, min_roll_threshold, ui_color_hex
		FROM rarities
		ORDER BY min_roll_threshold, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRarities, err)
	}

	rarities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rarity, error) {
		var rr domain.Rarity
		err := row.Scan(&rr.ID, &rr.Name, &rr.MinRollThreshold, &rr.UIColorHex)
		return rr, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRarities, err)
	}
	return rarities, nil
}

// GetStyles retrieves all styles
func (r *CatalogRepository) GetStyles(ctx context.Context) ([]domain.Style, error) {
	query := `
		SELECT id, name, rarity_id, style_keywords, composition_hint, unlock_level
		FROM styles
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStyles, err)
	}

	styles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Style, error) {
		var s domain.Style
		err := row.Scan(&s.ID, &s.Name, &s.RarityID, &s.StyleKeywords, &s.CompositionHint, &s.UnlockLevel)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStyles, err)
	}
	return styles, nil
}

// GetThemes retrieves all themes
func (r *CatalogRepository) GetThemes(ctx context.Context) ([]domain.Theme, error) {
	query := `
		SELECT id, name, category, ambiance, keywords_theme, prompt_background,
		       integration_idea, vibe_tags, base_rarity_tier, unlock_level
		FROM themes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryThemes, err)
	}

	themes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Theme, error) {
		var t domain.Theme
		err := row.Scan(
			&t.ID,
			&t.Name,
			&t.Category,
			&t.Ambiance,
			&t.KeywordsTheme,
			&t.PromptBackground,
			&t.IntegrationIdea,
			&t.VibeTags,
			&t.BaseRarityTier,
			&t.UnlockLevel,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryThemes, err)
	}
	return themes, nil
}

// GetSeries retrieves all series
func (r *CatalogRepository) GetSeries(ctx context.Context) ([]domain.Series, error) {
	query := `SELECT id, name, description, unlock_level FROM series ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySeries, err)
	}

	series, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Series, error) {
		var s domain.Series
		err := row.Scan(&s.ID, &s.Name, &s.Description, &s.UnlockLevel)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySeries, err)
	}
	return series, nil
}

// GetCharacters retrieves all characters with their series name
func (r *CatalogRepository) GetCharacters(ctx context.Context) ([]domain.Character, error) {
	query := `
		SELECT c.id, c.name, c.series_id, s.name, c.description, c.unlock_level,
		       c.identity_face_image, c.body_type_description, c.height_perception,
		       c.lore_tags, c.affinity_environments, c.clashing_environments, c.legacy
		FROM characters c
		JOIN series s ON s.id = c.series_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCharacters, err)
	}

	characters, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Character, error) {
		var c domain.Character
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.SeriesID,
			&c.SeriesName,
			&c.Description,
			&c.UnlockLevel,
			&c.IdentityFaceImage,
			&c.BodyTypeDescription,
			&c.HeightPerception,
			&c.LoreTags,
			&c.AffinityEnvironments,
			&c.ClashingEnvironments,
			&c.Legacy,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCharacters, err)
	}
	return characters, nil
}

// GetVariants retrieves all variants with reference images and card configurations
func (r *CatalogRepository) GetVariants(ctx context.Context) ([]domain.CharacterVariant, error) {
	query := `
		SELECT id, character_id, name, description, theme_id, visual_override,
		       variant_type, card_configurations, legacy
		FROM character_variants
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryVariants, err)
	}

	variants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CharacterVariant, error) {
		var v domain.CharacterVariant
		var rawConfigs []byte
		err := row.Scan(
			&v.ID,
			&v.CharacterID,
			&v.Name,
			&v.Description,
			&v.ThemeID,
			&v.VisualOverride,
			&v.VariantType,
			&rawConfigs,
			&v.Legacy,
		)
		if err != nil {
			return v, err
		}
		v.CardConfigurations, err = decodeConfigurations(ctx, v.ID, rawConfigs)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryVariants, err)
	}

	if err := r.attachReferenceImages(ctx, variants); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *CatalogRepository) attachReferenceImages(ctx context.Context, variants []domain.CharacterVariant) error {
	if len(variants) == 0 {
		return nil
	}

	index := make(map[int64]int, len(variants))
	for i, v := range variants {
		index[v.ID] = i
	}

	query := `
		SELECT variant_id, filename, mime_type, data
		FROM variant_reference_images
		ORDER BY variant_id, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryReferences, err)
	}
	defer rows.Close()

	for rows.Next() {
		var variantID int64
		var img domain.ReferenceImage
		if err := rows.Scan(&variantID, &img.Filename, &img.MimeType, &img.Data); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToQueryReferences, err)
		}
		if i, ok := index[variantID]; ok {
			variants[i].ReferenceImages = append(variants[i].ReferenceImages, img)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return nil
}

// GetLegacyCardKeys retrieves the identity tuples of every retired card
func (r *CatalogRepository) GetLegacyCardKeys(ctx context.Context) ([]domain.ImageKey, error) {
	query := `
		SELECT variant_id, rarity_id, style_id, theme_id
		FROM cards
		WHERE legacy
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLegacyKeys, err)
	}

	keys, err := pgx.CollectRows(rows, scanImageKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLegacyKeys, err)
	}
	return keys, nil
}

// decodeConfigurations decodes the JSONB list entry by entry so that one
// malformed entry does not hide the rest of the variant's catalog.
func decodeConfigurations(ctx context.Context, variantID int64, raw []byte) ([]domain.CardConfiguration, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%s (variant %d): %w", ErrMsgFailedToDecodeConfigs, variantID, err)
	}

	configs := make([]domain.CardConfiguration, 0, len(entries))
	for i, entry := range entries {
		var cfg domain.CardConfiguration
		if err := json.Unmarshal(entry, &cfg); err != nil {
			logger.FromContext(ctx).Warn(LogMsgSkippingInvalidConfiguration,
				"variant_id", variantID, "index", i, "error", err)
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func scanImageKey(row pgx.CollectableRow) (domain.ImageKey, error) {
	var k domain.ImageKey
	err := row.Scan(&k.VariantID, &k.RarityID, &k.StyleID, &k.ThemeID)
	return k, err
}
