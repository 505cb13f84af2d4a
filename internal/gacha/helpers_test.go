package gacha

import (
	"sync"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// scriptedRNG replays fixed values, reduced modulo n. It returns 0 once the
// script is exhausted.
type scriptedRNG struct {
	mu   sync.Mutex
	vals []int
	pos  int
}

func script(vals ...int) *scriptedRNG {
	return &scriptedRNG{vals: vals}
}

func (s *scriptedRNG) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.vals) {
		return 0
	}
	v := s.vals[s.pos]
	s.pos++
	return v % n
}

// base converts a desired base roll into the scripted IntN value.
func base(roll int) int {
	return roll - MinBaseRoll
}

var (
	common = domain.Rarity{ID: 1, Name: "Common", MinRollThreshold: 0}
	rare   = domain.Rarity{ID: 2, Name: "Rare", MinRollThreshold: 80}

	watercolor = domain.Style{ID: 10, Name: "Watercolor", RarityID: 1}
	neon       = domain.Style{ID: 11, Name: "Neon", RarityID: 2}
	beach      = domain.Theme{ID: 20, Name: "Beach"}
	city       = domain.Theme{ID: 21, Name: "City"}
)

// testCatalog has a configured variant (1), a variant without any
// configuration (2) and a legacy variant (3).
func testCatalog() *catalog.Snapshot {
	return catalog.NewSnapshot(
		[]domain.Rarity{common, rare},
		[]domain.Style{watercolor, neon},
		[]domain.Theme{beach, city},
		[]domain.Series{{ID: 1, Name: "Originals"}},
		[]domain.Character{{ID: 1, Name: "Mika", SeriesID: 1}},
		[]domain.CharacterVariant{
			{
				ID: 1, CharacterID: 1, Name: "Summer",
				CardConfigurations: []domain.CardConfiguration{
					{Rarity: "common", Style: domain.NameRef{Name: "WATERCOLOR"}, Theme: domain.NameRef{Name: "beach"}, Pose: "waving"},
					{Rarity: "Rare", Style: domain.NameRef{Name: "Neon"}, Theme: domain.NameRef{Name: "City"}, Pose: "posing"},
				},
			},
			{ID: 2, CharacterID: 1, Name: "Plain"},
			{
				ID: 3, CharacterID: 1, Name: "Retired", Legacy: true,
				CardConfigurations: []domain.CardConfiguration{{Rarity: "Common", Pose: "old"}},
			},
		},
	)
}

// commonCatalog has n variants, each with exactly one Common configuration,
// and Common as the only rarity.
func commonCatalog(n int) *catalog.Snapshot {
	variants := make([]domain.CharacterVariant, n)
	for i := range variants {
		variants[i] = domain.CharacterVariant{
			ID: int64(i + 1), CharacterID: 1, Name: "Variant",
			CardConfigurations: []domain.CardConfiguration{
				{Rarity: "Common", Style: domain.NameRef{Name: "Watercolor"}, Theme: domain.NameRef{Name: "Beach"}, Pose: "standing"},
			},
		}
	}
	return catalog.NewSnapshot(
		[]domain.Rarity{common},
		[]domain.Style{watercolor},
		[]domain.Theme{beach},
		nil,
		[]domain.Character{{ID: 1, Name: "Mika"}},
		variants,
	)
}
