package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
)

// File represents the sentenizer configuration file
type File struct {
	Window         int           `yaml:"window"`
	ExtendDefaults bool          `yaml:"extend_defaults"`
	Markers        parse.Markers `yaml:"markers"`
	Abbreviations  Abbreviations `yaml:"abbreviations"`
}

// Abbreviations lists table keys per class
type Abbreviations struct {
	Initials  []string `yaml:"initials"`
	Head      []string `yaml:"head"`
	Tail      []string `yaml:"tail"`
	Other     []string `yaml:"other"`
	HeadPair  []string `yaml:"head_pair"`
	TailPair  []string `yaml:"tail_pair"`
	OtherPair []string `yaml:"other_pair"`
}

// Empty reports whether no class lists any key.
func (a Abbreviations) Empty() bool {
	for _, keys := range a.entries() {
		if len(keys) > 0 {
			return false
		}
	}
	return true
}

func (a Abbreviations) entries() map[abbrev.Class][]string {
	return map[abbrev.Class][]string{
		abbrev.Initials:  a.Initials,
		abbrev.Head:      a.Head,
		abbrev.Tail:      a.Tail,
		abbrev.Other:     a.Other,
		abbrev.HeadPair:  a.HeadPair,
		abbrev.TailPair:  a.TailPair,
		abbrev.OtherPair: a.OtherPair,
	}
}

// Tables builds tables from the file. With no keys listed the built-in
// tables are used; with extend_defaults the keys are merged into them.
func (f *File) Tables() (*abbrev.Tables, error) {
	if f.Abbreviations.Empty() {
		return abbrev.Default(), nil
	}

	tables, err := abbrev.NewTables(f.Abbreviations.entries())
	if err != nil {
		return nil, err
	}
	if f.ExtendDefaults {
		return abbrev.Default().Merge(tables), nil
	}
	return tables, nil
}

// Validate checks the window and marker classes.
func (f *File) Validate() error {
	if f.Window < 0 {
		return fmt.Errorf("%w: window must not be negative, got %d", internalerr.ErrInvalidConfig, f.Window)
	}
	return f.Markers.WithDefaults().Validate()
}

// Parse decodes a configuration document.
// Unknown fields are rejected so typos in class names surface early.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile loads configuration from a YAML file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
