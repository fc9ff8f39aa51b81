package smoketests

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBattery reads a YAML battery file and applies it on top of base: fields present in
// the file replace the corresponding fields of base, and everything else is kept. Unknown
// fields are rejected so that a misspelt key is not silently ignored.
func LoadBattery(path string, base Battery) (Battery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Battery{}, fmt.Errorf("failed to read battery file '%s': %w", path, err)
	}
	return ParseBattery(data, base, filepath.Base(path))
}

// ParseBattery is LoadBattery for data that has already been read; source is used only in
// error messages.
func ParseBattery(data []byte, base Battery, source string) (Battery, error) {
	b := base.clone()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Battery{}, fmt.Errorf("YAML parsing error in '%s': %w", source, err)
	}

	if err := b.Validate(); err != nil {
		return Battery{}, fmt.Errorf("validation failed for '%s': %w", source, err)
	}
	return b, nil
}
