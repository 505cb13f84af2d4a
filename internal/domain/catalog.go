package domain

import "strings"

// Rarity is a roll bucket. A rarity owns every final roll in
// [MinRollThreshold, next threshold).
type Rarity struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	MinRollThreshold int    `json:"min_roll_threshold"`
	UIColorHex       string `json:"ui_color_hex"`
}

// Style is an art style. A style always belongs to exactly one rarity tier.
type Style struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	RarityID        int64  `json:"rarity"`
	StyleKeywords   string `json:"style_keywords"`
	CompositionHint string `json:"composition_hint"`
	UnlockLevel     int    `json:"unlock_level"`
}

// Theme is a background/context for a card. Themes are not rarity scoped.
type Theme struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Ambiance         string   `json:"ambiance"`
	KeywordsTheme    string   `json:"keywords_theme"`
	PromptBackground string   `json:"prompt_background"`
	IntegrationIdea  string   `json:"integration_idea"`
	VibeTags         []string `json:"vibe_tags"`
	BaseRarityTier   int      `json:"base_rarity_tier"`
	UnlockLevel      int      `json:"unlock_level"`
}

// Series groups characters by origin.
type Series struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnlockLevel int    `json:"unlock_level"`
}

// Character is the identity shared by all of its variants.
type Character struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	SeriesID             int64    `json:"series"`
	SeriesName           string   `json:"series_name"`
	Description          string   `json:"description"`
	UnlockLevel          int      `json:"unlock_level"`
	IdentityFaceImage    []byte   `json:"-"`
	BodyTypeDescription  string   `json:"body_type_description"`
	HeightPerception     string   `json:"height_perception"`
	LoreTags             []string `json:"lore_tags"`
	AffinityEnvironments []string `json:"affinity_environments"`
	ClashingEnvironments []string `json:"clashing_environments"`
	Legacy               bool     `json:"legacy"`
}

// VariantType distinguishes canon outfits from skins.
type VariantType string

const (
	VariantCanon VariantType = "CANON"
	VariantSkin  VariantType = "SKIN"
)

// ReferenceImage is one reference picture attached to a variant.
type ReferenceImage struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
	Data     []byte `json:"-"`
}

// CharacterVariant is a concrete look of a character. Its CardConfigurations
// are the source of truth for which drops are valid for it.
type CharacterVariant struct {
	ID                 int64               `json:"id"`
	CharacterID        int64               `json:"character"`
	Character          *Character          `json:"-"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	ThemeID            *int64              `json:"theme,omitempty"`
	VisualOverride     string              `json:"visual_override"`
	VariantType        VariantType         `json:"variant_type"`
	ReferenceImages    []ReferenceImage    `json:"-"`
	CardConfigurations []CardConfiguration `json:"card_configurations"`
	Legacy             bool                `json:"legacy"`
}

// IsLegacy reports whether the variant or its character is retired.
func (v *CharacterVariant) IsLegacy() bool {
	if v.Legacy {
		return true
	}
	return v.Character != nil && v.Character.Legacy
}

// NameRef references a catalog row by name.
type NameRef struct {
	Name string `json:"name"`
}

// CardConfiguration is one curated (rarity, style, theme, pose) pairing for a
// variant. An empty style or theme name matches anything.
type CardConfiguration struct {
	Rarity string  `json:"rarity"`
	Style  NameRef `json:"style"`
	Theme  NameRef `json:"theme"`
	Pose   string  `json:"pose"`
	Legacy bool    `json:"legacy,omitempty"`
}

// Validate checks the fields required for an entry to take part in rolls.
func (c CardConfiguration) Validate() error {
	if strings.TrimSpace(c.Rarity) == "" {
		return ErrInvalidConfiguration
	}
	return nil
}

// IsZero reports whether the configuration carries no data at all.
func (c CardConfiguration) IsZero() bool {
	return c == CardConfiguration{}
}
