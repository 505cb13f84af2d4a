package catalog

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

func validSeed() *domain.CatalogSeed {
	return &domain.CatalogSeed{
		Rarities: []domain.Rarity{{Name: "Common"}, {Name: "Rare", MinRollThreshold: 80}},
		Styles: []domain.SeedStyle{
			{Style: domain.Style{Name: "Anime"}, Rarity: "common"},
			{Style: domain.Style{Name: "Anime"}, Rarity: "Rare"},
		},
		Themes:     []domain.Theme{{Name: "Forest"}},
		Series:     []domain.Series{{Name: "Original"}},
		Characters: []domain.SeedCharacter{{Character: domain.Character{Name: "Aki"}, Series: "Original"}},
		Variants: []domain.SeedVariant{{
			CharacterVariant: domain.CharacterVariant{
				Name:               "Base",
				CardConfigurations: []domain.CardConfiguration{{Rarity: "RARE", Pose: "waving"}},
			},
			Character: "aki",
			Theme:     "Forest",
		}},
		Players: []domain.Player{{Username: "player1", Coins: 1000}},
	}
}

func TestValidateSeed(t *testing.T) {
	t.Run("valid seed with case-insensitive references", func(t *testing.T) {
		assert.NoError(t, ValidateSeed(validSeed()))
	})

	tests := []struct {
		name    string
		mutate  func(*domain.CatalogSeed)
		wantMsg string
	}{
		{
			name:    "duplicate rarity",
			mutate:  func(s *domain.CatalogSeed) { s.Rarities = append(s.Rarities, domain.Rarity{Name: "common"}) },
			wantMsg: `duplicate rarity "common"`,
		},
		{
			name:    "threshold out of range",
			mutate:  func(s *domain.CatalogSeed) { s.Rarities[1].MinRollThreshold = 101 },
			wantMsg: "threshold 101",
		},
		{
			name:    "style with unknown rarity",
			mutate:  func(s *domain.CatalogSeed) { s.Styles[0].Rarity = "Mythic" },
			wantMsg: `unknown rarity "Mythic"`,
		},
		{
			name:    "character with unknown series",
			mutate:  func(s *domain.CatalogSeed) { s.Characters[0].Series = "Other" },
			wantMsg: `unknown series "Other"`,
		},
		{
			name:    "variant with unknown character",
			mutate:  func(s *domain.CatalogSeed) { s.Variants[0].Character = "Ren" },
			wantMsg: `unknown character "Ren"`,
		},
		{
			name:    "configuration without rarity",
			mutate:  func(s *domain.CatalogSeed) { s.Variants[0].CardConfigurations[0].Rarity = "" },
			wantMsg: domain.ErrMsgInvalidConfiguration,
		},
		{
			name:    "configuration with unknown rarity",
			mutate:  func(s *domain.CatalogSeed) { s.Variants[0].CardConfigurations[0].Rarity = "Epic" },
			wantMsg: `unknown rarity "Epic"`,
		},
		{
			name:    "player without username",
			mutate:  func(s *domain.CatalogSeed) { s.Players[0].Username = " " },
			wantMsg: "player without name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := validSeed()
			tt.mutate(seed)

			err := ValidateSeed(seed)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		seed := validSeed()
		seed.Styles[0].Rarity = "Mythic"
		seed.Characters[0].Series = "Other"

		err := ValidateSeed(seed)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mythic")
		assert.Contains(t, err.Error(), "Other")
	})
}

func TestLoadSeed_ShippedCatalog(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "configs", "catalog.json")

	seed, err := LoadSeed(path)

	require.NoError(t, err)
	assert.NoError(t, ValidateSeed(seed))
	assert.Len(t, seed.Rarities, 3)
	assert.Equal(t, "Original", seed.Characters[0].Series)
	assert.Equal(t, "Aki", seed.Variants[0].Character)
	require.Len(t, seed.Variants[0].CardConfigurations, 2)
	assert.Equal(t, "Watercolor", seed.Variants[0].CardConfigurations[1].Style.Name)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, ErrMsgFailedToLoadSeed)
}
