package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/cognicore/sentenizer/pkg/sentenizer"
	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
	"github.com/cognicore/sentenizer/pkg/sentenizer/rules"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store/sqlite"
)

// Loader loads configuration sources and constructs a Sentenizer.
// Later sources win: built-in defaults, then ConfigPath, then the tables
// stored in TablesDBPath, then Window.
type Loader struct {
	ConfigPath   string
	TablesDBPath string
	Window       int
	Tracer       rules.Tracer
}

// Components holds all loaded configuration components
type Components struct {
	Sentenizer *sentenizer.Sentenizer
	Tables     *abbrev.Tables
	Markers    parse.Markers
	Window     int
}

// Load reads all configuration sources and returns initialized components
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	file := &File{}
	if l.ConfigPath != "" {
		f, err := LoadFile(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		file = f
	}

	tables, err := file.Tables()
	if err != nil {
		return nil, fmt.Errorf("load abbreviations: %w", err)
	}

	if l.TablesDBPath != "" {
		stored, err := loadStoredTables(ctx, l.TablesDBPath)
		switch {
		case errors.Is(err, internalerr.ErrNotFound):
			// Empty database: keep what we have.
		case err != nil:
			return nil, fmt.Errorf("load tables db: %w", err)
		default:
			tables = stored
		}
	}

	window := file.Window
	if l.Window != 0 {
		window = l.Window
	}

	s, err := sentenizer.New(sentenizer.Options{
		Window:  window,
		Markers: file.Markers,
		Tables:  tables,
		Tracer:  l.Tracer,
	})
	if err != nil {
		return nil, fmt.Errorf("build sentenizer: %w", err)
	}

	return &Components{
		Sentenizer: s,
		Tables:     tables,
		Markers:    s.Markers(),
		Window:     s.Window(),
	}, nil
}

func loadStoredTables(ctx context.Context, path string) (*abbrev.Tables, error) {
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.LoadTables(ctx)
}
