package domain

// CatalogSeed is authored game data addressed by name. Rows are created or
// updated in place; nothing is deleted.
type CatalogSeed struct {
	Rarities   []Rarity        `json:"rarities"`
	Styles     []SeedStyle     `json:"styles"`
	Themes     []Theme         `json:"themes"`
	Series     []Series        `json:"series"`
	Characters []SeedCharacter `json:"characters"`
	Variants   []SeedVariant   `json:"variants"`
	Players    []Player        `json:"players"`
}

// SeedStyle is a style bound to its rarity by name.
type SeedStyle struct {
	Style
	Rarity string `json:"rarity_name"`
}

// SeedCharacter is a character bound to its series by name.
type SeedCharacter struct {
	Character
	Series string `json:"series_name"`
}

// SeedVariant is a variant bound to its character, and optionally a theme, by name.
type SeedVariant struct {
	CharacterVariant
	Character string `json:"character_name"`
	Theme     string `json:"theme_name,omitempty"`
}

// SeedResult counts the rows written per kind.
type SeedResult struct {
	Rarities   int
	Styles     int
	Themes     int
	Series     int
	Characters int
	Variants   int
	Players    int
}

// Total is the number of rows written.
func (r SeedResult) Total() int {
	return r.Rarities + r.Styles + r.Themes + r.Series + r.Characters + r.Variants + r.Players
}
