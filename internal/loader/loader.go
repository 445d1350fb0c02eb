// Package loader parses a project document (YAML, at $HOME/.muxed/<project>.yml)
// into the unenriched model.Session tree. It owns the three window-entry
// shapes and the two pre-hook shapes; everything downstream of it
// (internal/enrich onward) sees a single canonical representation.
package loader

import (
	"fmt"
	"os"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// LoadBytes decodes a single project document already read into memory.
func LoadBytes(data []byte) (*model.Session, error) {
	return decode(data)
}

// LoadFile reads and decodes a project document from disk.
func LoadFile(path string) (*model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	session, err := decode(data)
	if err != nil {
		return nil, err
	}
	return session, nil
}
