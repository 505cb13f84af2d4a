package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// LoadSeed reads a catalog seed file.
func LoadSeed(path string) (*domain.CatalogSeed, error) {
	var seed domain.CatalogSeed
	if err := utils.LoadJSON(path, &seed); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSeed, err)
	}
	return &seed, nil
}

// ValidateSeed checks that names are present and unique and that every
// reference resolves within the seed. All problems are reported together.
func ValidateSeed(seed *domain.CatalogSeed) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...)))
	}

	rarities := names(len(seed.Rarities), func(i int) string { return seed.Rarities[i].Name }, "rarity", fail)
	for _, r := range seed.Rarities {
		if r.MinRollThreshold < 0 || r.MinRollThreshold > MaxRollThreshold {
			fail("rarity %q threshold %d outside 0..%d", r.Name, r.MinRollThreshold, MaxRollThreshold)
		}
	}

	styleKeys := make(map[string]bool, len(seed.Styles))
	for _, s := range seed.Styles {
		if strings.TrimSpace(s.Name) == "" {
			fail("style without name")
			continue
		}
		if !rarities[utils.FoldName(s.Rarity)] {
			fail("style %q references unknown rarity %q", s.Name, s.Rarity)
		}
		key := utils.FoldName(s.Name) + "/" + utils.FoldName(s.Rarity)
		if styleKeys[key] {
			fail("duplicate style %q for rarity %q", s.Name, s.Rarity)
		}
		styleKeys[key] = true
	}

	themes := names(len(seed.Themes), func(i int) string { return seed.Themes[i].Name }, "theme", fail)
	series := names(len(seed.Series), func(i int) string { return seed.Series[i].Name }, "series", fail)
	characters := names(len(seed.Characters), func(i int) string { return seed.Characters[i].Name }, "character", fail)
	for _, c := range seed.Characters {
		if !series[utils.FoldName(c.Series)] {
			fail("character %q references unknown series %q", c.Name, c.Series)
		}
	}

	for _, v := range seed.Variants {
		if strings.TrimSpace(v.Name) == "" {
			fail("variant of %q without name", v.Character)
			continue
		}
		if !characters[utils.FoldName(v.Character)] {
			fail("variant %q references unknown character %q", v.Name, v.Character)
		}
		if v.Theme != "" && !themes[utils.FoldName(v.Theme)] {
			fail("variant %q references unknown theme %q", v.Name, v.Theme)
		}
		for i, cfg := range v.CardConfigurations {
			if err := cfg.Validate(); err != nil {
				fail("variant %q configuration %d: %v", v.Name, i, err)
				continue
			}
			if !rarities[utils.FoldName(cfg.Rarity)] {
				fail("variant %q configuration %d references unknown rarity %q", v.Name, i, cfg.Rarity)
			}
		}
	}

	names(len(seed.Players), func(i int) string { return seed.Players[i].Username }, "player", fail)
	for _, p := range seed.Players {
		if p.Coins < 0 {
			fail("player %q has negative coins", p.Username)
		}
	}

	return errors.Join(errs...)
}

// names collects folded names, reporting blanks and duplicates.
func names(n int, name func(int) string, kind string, fail func(string, ...any)) map[string]bool {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		raw := name(i)
		if strings.TrimSpace(raw) == "" {
			fail("%s without name", kind)
			continue
		}
		key := utils.FoldName(raw)
		if seen[key] {
			fail("duplicate %s %q", kind, raw)
		}
		seen[key] = true
	}
	return seen
}
