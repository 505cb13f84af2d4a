package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadJSON decodes the single JSON document stored at path into target.
// Trailing content after the document is rejected.
func LoadJSON(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to unmarshal JSON from %s: unexpected data after document", path)
	}
	return nil
}
