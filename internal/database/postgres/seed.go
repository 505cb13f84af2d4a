package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// ApplySeed upserts the seed in one transaction. Rows are matched by
// case-insensitive name within their parent.
func (r *CatalogRepository) ApplySeed(ctx context.Context, seed *domain.CatalogSeed) (*domain.SeedResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	w := seedWriter{tx: tx, ids: make(map[string]int64)}
	steps := []func(context.Context, *domain.CatalogSeed) error{
		w.rarities,
		w.styles,
		w.themes,
		w.series,
		w.characters,
		w.variants,
		w.players,
	}
	for _, step := range steps {
		if err := step(ctx, seed); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToApplySeed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return &w.result, nil
}

type seedWriter struct {
	tx     pgx.Tx
	ids    map[string]int64
	result domain.SeedResult
}

func seedKey(kind, name string) string {
	return kind + ":" + strings.ToLower(strings.TrimSpace(name))
}

// upsert runs update and falls back to insert when no row matched. Both
// statements take the same arguments and return the row id.
func (w *seedWriter) upsert(ctx context.Context, update, insert string, args ...any) (int64, error) {
	var id int64
	err := w.tx.QueryRow(ctx, update, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = w.tx.QueryRow(ctx, insert, args...).Scan(&id)
	}
	return id, err
}

func (w *seedWriter) lookup(kind, name string) (int64, error) {
	id, ok := w.ids[seedKey(kind, name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown %s %q", domain.ErrInvalidInput, kind, name)
	}
	return id, nil
}

func (w *seedWriter) rarities(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, rr := range seed.Rarities {
		id, err := w.upsert(ctx,
			`UPDATE rarities SET min_roll_threshold = $2, ui_color_hex = $3
			 WHERE lower(name) = lower($1) RETURNING id`,
			`INSERT INTO rarities (name, min_roll_threshold, ui_color_hex)
			 VALUES ($1, $2, $3) RETURNING id`,
			rr.Name, rr.MinRollThreshold, orDefault(rr.UIColorHex, defaultRarityColor))
		if err != nil {
			return fmt.Errorf("rarity %q: %w", rr.Name, err)
		}
		w.ids[seedKey("rarity", rr.Name)] = id
		w.result.Rarities++
	}
	return nil
}

func (w *seedWriter) styles(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, s := range seed.Styles {
		rarityID, err := w.lookup("rarity", s.Rarity)
		if err != nil {
			return err
		}
		_, err = w.upsert(ctx,
			`UPDATE styles SET style_keywords = $3, composition_hint = $4, unlock_level = $5
			 WHERE lower(name) = lower($1) AND rarity_id = $2 RETURNING id`,
			`INSERT INTO styles (name, rarity_id, style_keywords, composition_hint, unlock_level)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			s.Name, rarityID, s.StyleKeywords, s.CompositionHint, atLeastOne(s.UnlockLevel))
		if err != nil {
			return fmt.Errorf("style %q: %w", s.Name, err)
		}
		w.result.Styles++
	}
	return nil
}

func (w *seedWriter) themes(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, t := range seed.Themes {
		id, err := w.upsert(ctx,
			`UPDATE themes SET category = $2, ambiance = $3, keywords_theme = $4, prompt_background = $5,
			        integration_idea = $6, vibe_tags = $7, base_rarity_tier = $8, unlock_level = $9
			 WHERE lower(name) = lower($1) RETURNING id`,
			`INSERT INTO themes (name, category, ambiance, keywords_theme, prompt_background,
			        integration_idea, vibe_tags, base_rarity_tier, unlock_level)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			t.Name, t.Category, t.Ambiance, t.KeywordsTheme, t.PromptBackground,
			t.IntegrationIdea, nonNil(t.VibeTags), atLeastOne(t.BaseRarityTier), atLeastOne(t.UnlockLevel))
		if err != nil {
			return fmt.Errorf("theme %q: %w", t.Name, err)
		}
		w.ids[seedKey("theme", t.Name)] = id
		w.result.Themes++
	}
	return nil
}

func (w *seedWriter) series(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, s := range seed.Series {
		id, err := w.upsert(ctx,
			`UPDATE series SET description = $2, unlock_level = $3
			 WHERE lower(name) = lower($1) RETURNING id`,
			`INSERT INTO series (name, description, unlock_level) VALUES ($1, $2, $3) RETURNING id`,
			s.Name, s.Description, atLeastOne(s.UnlockLevel))
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		w.ids[seedKey("series", s.Name)] = id
		w.result.Series++
	}
	return nil
}

func (w *seedWriter) characters(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, c := range seed.Characters {
		seriesID, err := w.lookup("series", c.Series)
		if err != nil {
			return err
		}
		id, err := w.upsert(ctx,
			`UPDATE characters SET description = $3, unlock_level = $4, body_type_description = $5,
			        height_perception = $6, lore_tags = $7, affinity_environments = $8,
			        clashing_environments = $9, legacy = $10
			 WHERE lower(name) = lower($1) AND series_id = $2 RETURNING id`,
			`INSERT INTO characters (name, series_id, description, unlock_level, body_type_description,
			        height_perception, lore_tags, affinity_environments, clashing_environments, legacy)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
			c.Name, seriesID, c.Description, atLeastOne(c.UnlockLevel), c.BodyTypeDescription,
			c.HeightPerception, nonNil(c.LoreTags), nonNil(c.AffinityEnvironments),
			nonNil(c.ClashingEnvironments), c.Legacy)
		if err != nil {
			return fmt.Errorf("character %q: %w", c.Name, err)
		}
		w.ids[seedKey("character", c.Name)] = id
		w.result.Characters++
	}
	return nil
}

func (w *seedWriter) variants(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, v := range seed.Variants {
		characterID, err := w.lookup("character", v.Character)
		if err != nil {
			return err
		}
		var themeID *int64
		if v.Theme != "" {
			id, err := w.lookup("theme", v.Theme)
			if err != nil {
				return err
			}
			themeID = &id
		}
		configs := v.CardConfigurations
		if configs == nil {
			configs = []domain.CardConfiguration{}
		}
		rawConfigs, err := json.Marshal(configs)
		if err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		variantType := v.VariantType
		if variantType == "" {
			variantType = domain.VariantCanon
		}

		_, err = w.upsert(ctx,
			`UPDATE character_variants SET description = $3, theme_id = $4, visual_override = $5,
			        variant_type = $6, card_configurations = $7, legacy = $8
			 WHERE lower(name) = lower($1) AND character_id = $2 RETURNING id`,
			`INSERT INTO character_variants (name, character_id, description, theme_id, visual_override,
			        variant_type, card_configurations, legacy)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			v.Name, characterID, v.Description, themeID, v.VisualOverride,
			string(variantType), rawConfigs, v.Legacy)
		if err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		w.result.Variants++
	}
	return nil
}

func (w *seedWriter) players(ctx context.Context, seed *domain.CatalogSeed) error {
	for _, p := range seed.Players {
		tag, err := w.tx.Exec(ctx,
			`INSERT INTO players (username, level, xp, gatcha_coins)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (username) DO NOTHING`,
			p.Username, atLeastOne(p.Level), p.XP, p.Coins)
		if err != nil {
			return fmt.Errorf("player %q: %w", p.Username, err)
		}
		w.result.Players += int(tag.RowsAffected())
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func atLeastOne(n int) int {
	return max(n, 1)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
