package gacha

import (
	"context"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// Candidate is one planned drop with its resolved catalog rows.
type Candidate struct {
	Variant *domain.CharacterVariant
	Rarity  domain.Rarity
	Style   domain.Style
	Theme   domain.Theme
	// Config is the configuration the drop was built from; zero when the
	// variant had none.
	Config   domain.CardConfiguration
	Pose     string
	Roll     RollInfo
	Fallback bool
}

// Key returns the card identity of the candidate.
func (c Candidate) Key() domain.ImageKey {
	return domain.ImageKey{
		VariantID: c.Variant.ID,
		RarityID:  c.Rarity.ID,
		StyleID:   c.Style.ID,
		ThemeID:   c.Theme.ID,
	}
}

// ImageRequest converts the candidate into an artwork request.
func (c Candidate) ImageRequest() imagegen.Request {
	return imagegen.Request{
		Variant: c.Variant,
		Rarity:  c.Rarity,
		Style:   c.Style,
		Theme:   c.Theme,
		Pose:    c.Pose,
		Config:  c.Config,
	}
}

// Plan is the outcome of planning one batch.
type Plan struct {
	Candidates       []Candidate
	Requested        int
	Attempts         int
	LegacyCollisions int
	ShortfallReason  string
}

// Planner assembles drop batches from a catalog snapshot.
type Planner struct {
	rng         RandomSource
	maxAttempts int
}

// NewPlanner creates a planner. maxAttempts bounds the number of rarity
// rolls spent on one batch.
func NewPlanner(rng RandomSource, maxAttempts int) *Planner {
	if rng == nil {
		rng = DefaultRNG()
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPlanAttempts
	}
	return &Planner{rng: rng, maxAttempts: maxAttempts}
}

type poolEntry struct {
	variant *domain.CharacterVariant
	config  domain.CardConfiguration
}

// Plan produces up to count candidates for a player of the given level.
// Candidates matching a key in legacy are discarded and replanned. Running
// out of attempts yields a short plan, not an error.
func (p *Planner) Plan(ctx context.Context, snap *catalog.Snapshot, legacy map[domain.ImageKey]bool, level, count int) (*Plan, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	plan := &Plan{Requested: count, Candidates: make([]Candidate, 0, count)}
	variants := snap.RollableVariants()
	pools := make(map[int64][]poolEntry)
	unresolved := 0

	for plan.Attempts < p.maxAttempts && len(plan.Candidates) < count {
		plan.Attempts++

		rarity, roll, err := SelectRarity(p.rng, snap.Rarities, level)
		if err != nil {
			return nil, err
		}

		entry, fallback := p.pick(variants, rarity, pools)
		if fallback {
			log.Debug(LogMsgCandidateFallback, "rarity", rarity.Name, "variant_id", entry.variant.ID)
		}

		style, ok := p.resolveStyle(ctx, snap, entry.config, rarity)
		if !ok {
			unresolved++
			continue
		}
		theme := p.resolveTheme(ctx, snap, entry.config)

		cand := Candidate{
			Variant:  entry.variant,
			Rarity:   rarity,
			Style:    *style,
			Theme:    *theme,
			Config:   entry.config,
			Pose:     entry.config.Pose,
			Roll:     roll,
			Fallback: fallback,
		}

		if legacy[cand.Key()] {
			plan.LegacyCollisions++
			log.Debug(LogMsgLegacyCollision, "key", cand.Key().String())
			continue
		}

		plan.Candidates = append(plan.Candidates, cand)
	}

	if len(plan.Candidates) < count {
		plan.ShortfallReason = ShortfallAttemptsExhausted
		if plan.LegacyCollisions > 0 && unresolved == 0 && p.maxAttempts >= count {
			plan.ShortfallReason = ShortfallLegacyExhausted
		}
	}
	return plan, nil
}

// pick chooses a (variant, configuration) pair for the rarity: uniformly
// among the non-legacy configurations matching it, else a random variant
// with one of its non-legacy configurations or an empty one. Pools are
// built once per rarity and kept in pools for the rest of the batch.
func (p *Planner) pick(variants []*domain.CharacterVariant, rarity domain.Rarity, pools map[int64][]poolEntry) (poolEntry, bool) {
	pool, built := pools[rarity.ID]
	if !built {
		for _, v := range variants {
			for _, cfg := range v.CardConfigurations {
				if !cfg.Legacy && utils.SameName(cfg.Rarity, rarity.Name) {
					pool = append(pool, poolEntry{variant: v, config: cfg})
				}
			}
		}
		pools[rarity.ID] = pool
	}
	if len(pool) > 0 {
		return pool[p.rng.IntN(len(pool))], false
	}

	v := variants[p.rng.IntN(len(variants))]
	var usable []domain.CardConfiguration
	for _, cfg := range v.CardConfigurations {
		if !cfg.Legacy {
			usable = append(usable, cfg)
		}
	}
	if len(usable) == 0 {
		return poolEntry{variant: v}, true
	}
	return poolEntry{variant: v, config: usable[p.rng.IntN(len(usable))]}, true
}

// resolveStyle looks the configuration's style up within the rarity, then
// falls back to a random style of the rarity, then to any style.
func (p *Planner) resolveStyle(ctx context.Context, snap *catalog.Snapshot, cfg domain.CardConfiguration, rarity domain.Rarity) (*domain.Style, bool) {
	if st, ok := snap.FindStyle(cfg.Style.Name, rarity.ID); ok {
		return st, true
	}
	if cfg.Style.Name != "" {
		logger.FromContext(ctx).Debug(LogMsgUnresolvedStyle, "style", cfg.Style.Name, "rarity", rarity.Name)
	}
	if owned := snap.StylesForRarity(rarity.ID); len(owned) > 0 {
		return owned[p.rng.IntN(len(owned))], true
	}
	if len(snap.Styles) == 0 {
		return nil, false
	}
	return &snap.Styles[p.rng.IntN(len(snap.Styles))], true
}

// resolveTheme looks the configuration's theme up by name, else picks any theme.
func (p *Planner) resolveTheme(ctx context.Context, snap *catalog.Snapshot, cfg domain.CardConfiguration) *domain.Theme {
	if th, ok := snap.FindTheme(cfg.Theme.Name); ok {
		return th
	}
	if cfg.Theme.Name != "" {
		logger.FromContext(ctx).Debug(LogMsgUnresolvedTheme, "theme", cfg.Theme.Name)
	}
	return &snap.Themes[p.rng.IntN(len(snap.Themes))]
}
