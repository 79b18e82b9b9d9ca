package models

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tatianab/detective-quest/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultMinSupport is used when a case does not set min_support.
const DefaultMinSupport = 2

var ErrInvalidCase = errors.NewSentinel("invalid case")

//go:embed cases/manor.yaml
var defaultCase []byte

// DefaultCase returns the built-in mansion case.
func DefaultCase() (*Case, error) {
	c, err := ParseCase(defaultCase)
	if err != nil {
		return nil, errors.Wrap(err, "parse embedded case")
	}
	return c, nil
}

// LoadCase reads and validates the case file at path.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read case file", slog.String("path", path))
	}
	c, err := ParseCase(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse case file", slog.String("path", path))
	}
	return c, nil
}

// ParseCase decodes a YAML case definition and fills in defaults. Unknown fields are rejected so that typos in
// hand-written case files do not silently drop rooms.
func ParseCase(data []byte) (*Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Case
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(ErrInvalidCase, "decode yaml", slog.String("cause", err.Error()))
	}
	if c.MinSupport == 0 {
		c.MinSupport = DefaultMinSupport
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the case-level fields. The room tree itself is checked when the mansion is built.
func (c *Case) Validate() error {
	var errs []error
	if c.Entry == nil {
		errs = append(errs, errors.Wrap(ErrInvalidCase, "case has no entry room"))
	}
	if c.MinSupport < 1 {
		errs = append(errs, errors.Wrap(ErrInvalidCase, "min_support must be positive",
			slog.Int("min_support", c.MinSupport)))
	}
	for i, a := range c.Clues {
		if a.Clue == "" || a.Suspect == "" {
			errs = append(errs, errors.Wrap(ErrInvalidCase, "clue assignment needs clue and suspect",
				slog.Int("index", i)))
		}
	}
	return errors.Join(errs...)
}

// ListCases returns the names of the case files (*.yaml, *.yml) in dir without their extension.
func ListCases(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read case directory", slog.String("dir", dir))
	}

	var cases []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			cases = append(cases, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	return cases, nil
}
