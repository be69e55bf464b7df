package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frieze/frieze"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid frieze file")

// File is the top-level YAML document.
type File struct {
	Defaults Defaults `yaml:"defaults"`
	Friezes  []Entry  `yaml:"friezes" validate:"required,min=1,unique=Name,dive"`
}

// Defaults apply to every entry that leaves the field unset.
type Defaults struct {
	Width  *int `yaml:"width" validate:"omitempty,min=0"`
	Rows   *int `yaml:"rows" validate:"omitempty,min=0"`
	Strict bool `yaml:"strict"`
}

// Entry describes one frieze.
type Entry struct {
	Name      string   `yaml:"name" validate:"required"`
	Type      string   `yaml:"type" validate:"required,oneof=quid quiddity diag diagonal diaganol"`
	Seed      []string `yaml:"seed" validate:"required,min=1,dive,required"`
	LeftStart int      `yaml:"leftstart"`
	Width     *int     `yaml:"width" validate:"omitempty,min=0"`
	Rows      *int     `yaml:"rows" validate:"omitempty,min=0"`
	Strict    *bool    `yaml:"strict"`
}

// Result pairs an entry name with its built frieze.
type Result struct {
	Name   string
	Frieze *frieze.Frieze
}

var validate = validator.New()

// Load reads and validates a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frieze file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse frieze YAML: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &f, nil
}

// Options resolves the builder options of e against d.
func (e Entry) Options(d Defaults, logger zerolog.Logger) frieze.Options {
	opts := frieze.DefaultOptions()
	opts.Logger = logger.With().Str("frieze", e.Name).Logger()
	opts.LeftStart = e.LeftStart
	opts.Strict = d.Strict

	if d.Width != nil {
		opts.Width = *d.Width
	}
	if d.Rows != nil {
		opts.RowCount = *d.Rows
	}
	if e.Width != nil {
		opts.Width = *e.Width
	}
	if e.Rows != nil {
		opts.RowCount = *e.Rows
	}
	if e.Strict != nil {
		opts.Strict = *e.Strict
	}

	return opts
}

// Build builds one entry.
func (f *File) Build(e Entry, logger zerolog.Logger) (*frieze.Frieze, error) {
	opts := e.Options(f.Defaults, logger)
	fr, err := frieze.BuildNamed(e.Type, e.Seed, &opts)
	if err != nil {
		return nil, fmt.Errorf("frieze %q: %w", e.Name, err)
	}

	return fr, nil
}

// BuildAll builds every entry in file order and stops at the first error.
func (f *File) BuildAll(logger zerolog.Logger) ([]Result, error) {
	out := make([]Result, 0, len(f.Friezes))
	for _, e := range f.Friezes {
		fr, err := f.Build(e, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, Result{Name: e.Name, Frieze: fr})
	}

	return out, nil
}

// Lookup returns the entry called name.
func (f *File) Lookup(name string) (Entry, bool) {
	for _, e := range f.Friezes {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}
