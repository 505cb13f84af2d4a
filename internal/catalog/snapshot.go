package catalog

import (
	"fmt"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// Snapshot is an immutable view of the catalog used for the duration of a roll.
type Snapshot struct {
	Rarities   []domain.Rarity // ascending MinRollThreshold
	Styles     []domain.Style
	Themes     []domain.Theme
	Series     []domain.Series
	Characters []domain.Character
	Variants   []domain.CharacterVariant
	LoadedAt   time.Time

	// DroppedConfigurations counts card configurations rejected by Validate.
	DroppedConfigurations int

	rarityByID    map[int64]*domain.Rarity
	styleByID     map[int64]*domain.Style
	themeByID     map[int64]*domain.Theme
	variantByID   map[int64]*domain.CharacterVariant
	characterByID map[int64]*domain.Character
	stylesByRare  map[int64][]*domain.Style
	rollable      []*domain.CharacterVariant
}

// NewSnapshot indexes the catalog rows. Variants get their Character
// pointer set and invalid card configurations are dropped.
func NewSnapshot(rarities []domain.Rarity, styles []domain.Style, themes []domain.Theme,
	series []domain.Series, characters []domain.Character, variants []domain.CharacterVariant) *Snapshot {
	s := &Snapshot{
		Rarities:      rarities,
		Styles:        styles,
		Themes:        themes,
		Series:        series,
		Characters:    characters,
		Variants:      variants,
		LoadedAt:      time.Now(),
		rarityByID:    make(map[int64]*domain.Rarity, len(rarities)),
		styleByID:     make(map[int64]*domain.Style, len(styles)),
		themeByID:     make(map[int64]*domain.Theme, len(themes)),
		variantByID:   make(map[int64]*domain.CharacterVariant, len(variants)),
		characterByID: make(map[int64]*domain.Character, len(characters)),
		stylesByRare:  make(map[int64][]*domain.Style),
	}

	for i := range s.Rarities {
		s.rarityByID[s.Rarities[i].ID] = &s.Rarities[i]
	}
	for i := range s.Styles {
		st := &s.Styles[i]
		s.styleByID[st.ID] = st
		s.stylesByRare[st.RarityID] = append(s.stylesByRare[st.RarityID], st)
	}
	for i := range s.Themes {
		s.themeByID[s.Themes[i].ID] = &s.Themes[i]
	}
	for i := range s.Characters {
		s.characterByID[s.Characters[i].ID] = &s.Characters[i]
	}
	for i := range s.Variants {
		v := &s.Variants[i]
		v.Character = s.characterByID[v.CharacterID]
		valid := validConfigurations(v.CardConfigurations)
		s.DroppedConfigurations += len(v.CardConfigurations) - len(valid)
		v.CardConfigurations = valid
		s.variantByID[v.ID] = v
		if v.Character != nil && !v.IsLegacy() {
			s.rollable = append(s.rollable, v)
		}
	}
	return s
}

func validConfigurations(configs []domain.CardConfiguration) []domain.CardConfiguration {
	valid := configs[:0:0]
	for _, c := range configs {
		if c.Validate() == nil {
			valid = append(valid, c)
		}
	}
	return valid
}

// Validate reports whether the snapshot can serve a roll.
func (s *Snapshot) Validate() error {
	if len(s.Rarities) == 0 {
		return domain.ErrNoRarities
	}
	if len(s.rollable) == 0 || len(s.Styles) == 0 || len(s.Themes) == 0 {
		return fmt.Errorf("%w: %d variants, %d styles, %d themes",
			domain.ErrCatalogIncomplete, len(s.rollable), len(s.Styles), len(s.Themes))
	}
	return nil
}

// RollableVariants returns the non-legacy variants of non-legacy characters.
func (s *Snapshot) RollableVariants() []*domain.CharacterVariant {
	return s.rollable
}

// Rarity looks up a rarity by id.
func (s *Snapshot) Rarity(id int64) (*domain.Rarity, bool) {
	r, ok := s.rarityByID[id]
	return r, ok
}

// Style looks up a style by id.
func (s *Snapshot) Style(id int64) (*domain.Style, bool) {
	st, ok := s.styleByID[id]
	return st, ok
}

// Theme looks up a theme by id.
func (s *Snapshot) Theme(id int64) (*domain.Theme, bool) {
	t, ok := s.themeByID[id]
	return t, ok
}

// Variant looks up a variant by id.
func (s *Snapshot) Variant(id int64) (*domain.CharacterVariant, bool) {
	v, ok := s.variantByID[id]
	return v, ok
}

// StylesForRarity returns the styles owned by a rarity in catalog order.
func (s *Snapshot) StylesForRarity(rarityID int64) []*domain.Style {
	return s.stylesByRare[rarityID]
}

// FindStyle finds a style of the given rarity by name, case-insensitively.
func (s *Snapshot) FindStyle(name string, rarityID int64) (*domain.Style, bool) {
	if name == "" {
		return nil, false
	}
	for _, st := range s.stylesByRare[rarityID] {
		if utils.SameName(st.Name, name) {
			return st, true
		}
	}
	return nil, false
}

// FindTheme finds a theme by name, case-insensitively.
func (s *Snapshot) FindTheme(name string) (*domain.Theme, bool) {
	if name == "" {
		return nil, false
	}
	for i := range s.Themes {
		if utils.SameName(s.Themes[i].Name, name) {
			return &s.Themes[i], true
		}
	}
	return nil, false
}
