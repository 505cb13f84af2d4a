package gacha

import (
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// MatchConfiguration returns the first configuration of the variant whose
// rarity label matches rarity. When style and theme are both given, a
// non-empty style or theme name on the configuration must match as well.
// Returns nil when nothing matches.
func MatchConfiguration(variant *domain.CharacterVariant, rarity domain.Rarity, style *domain.Style, theme *domain.Theme) *domain.CardConfiguration {
	if variant == nil {
		return nil
	}
	for i := range variant.CardConfigurations {
		cfg := &variant.CardConfigurations[i]
		if !utils.SameName(cfg.Rarity, rarity.Name) {
			continue
		}
		if style != nil && theme != nil {
			if cfg.Style.Name != "" && !utils.SameName(cfg.Style.Name, style.Name) {
				continue
			}
			if cfg.Theme.Name != "" && !utils.SameName(cfg.Theme.Name, theme.Name) {
				continue
			}
		}
		return cfg
	}
	return nil
}

// PoseFor returns the pose authored for a realized card: the exact
// (rarity, style, theme) configuration first, then the first configuration
// of the rarity, else "".
func PoseFor(variant *domain.CharacterVariant, rarity domain.Rarity, style domain.Style, theme domain.Theme) string {
	if variant == nil {
		return ""
	}
	for _, cfg := range variant.CardConfigurations {
		if utils.SameName(cfg.Rarity, rarity.Name) &&
			utils.SameName(cfg.Style.Name, style.Name) &&
			utils.SameName(cfg.Theme.Name, theme.Name) {
			return cfg.Pose
		}
	}
	for _, cfg := range variant.CardConfigurations {
		if utils.SameName(cfg.Rarity, rarity.Name) {
			return cfg.Pose
		}
	}
	return ""
}

// ConfigurationFor returns the configuration that describes a realized card,
// using the same precedence as PoseFor. Returns nil when none applies.
func ConfigurationFor(variant *domain.CharacterVariant, rarity domain.Rarity, style domain.Style, theme domain.Theme) *domain.CardConfiguration {
	if cfg := MatchConfiguration(variant, rarity, &style, &theme); cfg != nil {
		return cfg
	}
	return MatchConfiguration(variant, rarity, nil, nil)
}
