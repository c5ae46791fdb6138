// Package export serializes the finished word list for the trainer UI.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Marshal encodes entries as an indented JSON array with keys id, en, ru,
// level. Non-ASCII and HTML characters are written as-is.
func Marshal(entries []domain.WordEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.WordEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile replaces path with the encoded entries.
func WriteFile(path string, entries []domain.WordEntry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}
