package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadJSON(t *testing.T) {
	type rarity struct {
		Name      string `json:"name"`
		Threshold int    `json:"min_roll_threshold"`
	}

	t.Run("decodes catalog entries", func(t *testing.T) {
		path := writeFile(t, "rarities.json", `[{"name":"Common","min_roll_threshold":0},{"name":"Rare","min_roll_threshold":80}]`)

		var got []rarity
		require.NoError(t, LoadJSON(path, &got))

		assert.Equal(t, []rarity{{"Common", 0}, {"Rare", 80}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		var got []rarity
		err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeFile(t, "broken.json", `[{"name":`)

		var got []rarity
		err := LoadJSON(path, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		path := writeFile(t, "double.json", `{"name":"Common"} {"name":"Rare"}`)

		var got rarity
		err := LoadJSON(path, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected data after document")
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		path := writeFile(t, "spaced.json", "{\"name\":\"Epic\"}\n\n")

		var got rarity
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, "Epic", got.Name)
	})
}
