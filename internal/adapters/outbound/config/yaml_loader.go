package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/billkraft/billkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".billkraft.yaml"

// YAMLLoader implements domain.DocumentLoader by reading invoice YAML files.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads an invoice document. A directory is searched for .billkraft.yaml
// and falls back to the demo document when none exists. A file path must exist.
func (l *YAMLLoader) Load(path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return domain.Document{}, err
	}

	file := path
	if info.IsDir() {
		file = filepath.Join(path, fileName)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if info.IsDir() && errors.Is(err, os.ErrNotExist) {
			return domain.DemoDocument(), nil
		}
		return domain.Document{}, err
	}

	// Unknown keys are rejected so a typo such as "prise" cannot silently
	// zero an item's price.
	var doc domain.Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return domain.Document{}, fmt.Errorf("%w: parsing %s: %w", domain.ErrInvalidArgument, filepath.Base(file), err)
	}

	return doc, nil
}
