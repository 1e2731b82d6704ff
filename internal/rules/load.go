package rules

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load decodes a TOML rule table and compiles it.
func Load(r io.Reader) (*Engine, error) {
	var t Table
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding rule table: %w", err)
	}
	return New(t)
}

// LoadFile reads and compiles a rule table from disk.
func LoadFile(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule table %s: %w", path, err)
	}
	defer f.Close()

	e, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("rule table %s: %w", path, err)
	}
	return e, nil
}
