package gacha

import (
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// RollInfo carries the diagnostics of one rarity roll.
type RollInfo struct {
	BaseRoll   int     `json:"base_roll"`
	LevelBonus float64 `json:"level_bonus"`
	FinalRoll  float64 `json:"final_roll"`
	Rarity     string  `json:"rarity"`
}

// LevelBonus returns min(level * 0.5, 20). Negative levels earn nothing.
func LevelBonus(level int) float64 {
	return utils.ClampFloat(float64(level)*LevelBonusPerLevel, 0, MaxLevelBonus)
}

// FinalRoll applies the level bonus to a base roll and caps the result at 100.
func FinalRoll(baseRoll, level int) float64 {
	return min(float64(baseRoll)+LevelBonus(level), MaxFinalRoll)
}

// PickRarity returns the rarity owning finalRoll: the highest threshold not
// above the roll, first in catalog order on ties. When no threshold
// qualifies the lowest-threshold rarity is returned.
func PickRarity(rarities []domain.Rarity, finalRoll float64) (domain.Rarity, error) {
	if len(rarities) == 0 {
		return domain.Rarity{}, domain.ErrNoRarities
	}

	best := -1
	lowest := 0
	for i, r := range rarities {
		if r.MinRollThreshold < rarities[lowest].MinRollThreshold {
			lowest = i
		}
		if float64(r.MinRollThreshold) > finalRoll {
			continue
		}
		if best == -1 || r.MinRollThreshold > rarities[best].MinRollThreshold {
			best = i
		}
	}

	if best == -1 {
		return rarities[lowest], nil
	}
	return rarities[best], nil
}

// SelectRarity draws a base roll and picks the matching rarity for level.
func SelectRarity(rng RandomSource, rarities []domain.Rarity, level int) (domain.Rarity, RollInfo, error) {
	if len(rarities) == 0 {
		return domain.Rarity{}, RollInfo{}, domain.ErrNoRarities
	}

	base := MinBaseRoll + rng.IntN(MaxBaseRoll-MinBaseRoll+1)
	return rollWithBase(rarities, base, level)
}

func rollWithBase(rarities []domain.Rarity, base, level int) (domain.Rarity, RollInfo, error) {
	final := FinalRoll(base, level)
	rarity, err := PickRarity(rarities, final)
	if err != nil {
		return domain.Rarity{}, RollInfo{}, err
	}
	return rarity, RollInfo{
		BaseRoll:   base,
		LevelBonus: LevelBonus(level),
		FinalRoll:  final,
		Rarity:     rarity.Name,
	}, nil
}
