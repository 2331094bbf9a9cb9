package furia

import (
	"encoding/gob"
	"io"
)

// Save writes m to w as a gob stream describing the rule structure: no
// other wire format is prescribed.
func (m *Model) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// Load decodes a Model previously written by Save.
func Load(r io.Reader) (*Model, error) {
	m := &Model{}
	if err := gob.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}
	return m, nil
}
