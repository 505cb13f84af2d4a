package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
	"rarities": [{"name": "Common", "min_roll_threshold": 0, "ui_color_hex": "#AAAAAA"}],
	"styles": [{"name": "Sketch", "rarity_name": "Common", "unlock_level": 1}],
	"themes": [{"name": "Beach", "vibe_tags": ["sunny"], "base_rarity_tier": 1}],
	"series": [{"name": "Original"}],
	"characters": [{"name": "Aiko", "series_name": "Original", "lore_tags": ["calm"]}],
	"variants": [{
		"name": "Aiko Summer",
		"character_name": "Aiko",
		"theme_name": "Beach",
		"variant_type": "SKIN",
		"card_configurations": [{"rarity": "Common", "style": {"name": "Sketch"}, "pose": "waving"}]
	}],
	"players": [{"username": "default", "level": 1, "xp": 0, "gatcha_coins": 100}]
}`

func TestValidateBytes_Catalog(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  bool
		contains string
	}{
		{name: "valid catalog", data: validCatalog},
		{name: "empty document", data: `{}`},
		{
			name:     "threshold above 100",
			data:     `{"rarities": [{"name": "Mythic", "min_roll_threshold": 101}]}`,
			wantErr:  true,
			contains: "/rarities/0/min_roll_threshold",
		},
		{
			name:     "style without rarity",
			data:     `{"styles": [{"name": "Sketch"}]}`,
			wantErr:  true,
			contains: "required",
		},
		{
			name:     "unknown variant type",
			data:     `{"variants": [{"name": "V", "character_name": "C", "variant_type": "ALT"}]}`,
			wantErr:  true,
			contains: "/variants/0/variant_type",
		},
		{
			name:     "negative coins",
			data:     `{"players": [{"username": "p", "gatcha_coins": -1}]}`,
			wantErr:  true,
			contains: "minimum",
		},
		{
			name:     "bad color",
			data:     `{"rarities": [{"name": "Rare", "ui_color_hex": "blue"}]}`,
			wantErr:  true,
			contains: "pattern",
		},
		{
			name:     "malformed JSON",
			data:     `{"rarities": [}`,
			wantErr:  true,
			contains: ErrMsgFailedToParseData,
		},
	}

	v := NewSchemaValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), CatalogSchema)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	v := NewSchemaValidator()
	assert.NoError(t, v.ValidateFile(path, CatalogSchema))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), CatalogSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToReadData)
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nope.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToLoadSchema)
}

func TestValidateBytes_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), CatalogSchema))
	require.NoError(t, v.ValidateBytes([]byte(validCatalog), CatalogSchema))

	assert.Len(t, v.schemas, 1)
}

func TestValidateBytes_ReportsEveryViolation(t *testing.T) {
	data := `{"players": [{"username": ""}, {"username": "ok", "level": -2}]}`

	err := NewSchemaValidator().ValidateBytes([]byte(data), CatalogSchema)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/players/0/username")
	assert.Contains(t, err.Error(), "/players/1/level")
}
