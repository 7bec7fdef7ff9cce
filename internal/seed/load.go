package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/sprintline/internal/db"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSnapshot []byte

// Parse decodes a YAML snapshot. Unknown keys are rejected so typos in a
// hand-edited seed surface immediately.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &s, nil
}

// Load reads the snapshot at path, or the embedded default snapshot when
// path is empty, validates it and converts it to a tree.
func Load(path string) (*db.Tree, error) {
	data := defaultSnapshot
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed: %w", err)
		}
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := Validate(s); len(errs) > 0 {
		return nil, fmt.Errorf("validating seed: %w", errors.Join(errs...))
	}
	return Convert(s, time.Now().UTC()), nil
}
