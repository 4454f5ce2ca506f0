package catalog

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// LoadFile reads a YAML catalog document from disk
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "catalog file not found").
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	file, err := Load(raw)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return file, nil
}

// Load parses a YAML catalog document. Unknown top level or spell keys are
// rejected; an empty document yields an empty catalog.
func Load(raw []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &File{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "invalid catalog document")
	}
	return &file, nil
}

// Marshal renders a catalog document as YAML
func Marshal(file *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, errors.Wrap(err, "failed to encode catalog")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode catalog")
	}
	return buf.Bytes(), nil
}
