package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store/sqlite"
)

func TestLoaderDefaults(t *testing.T) {
	comp, err := (&Loader{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Window != parse.DefaultWindow {
		t.Errorf("Window = %d, want %d", comp.Window, parse.DefaultWindow)
	}
	if comp.Tables != abbrev.Default() {
		t.Error("expected the built-in tables")
	}
	if comp.Markers != parse.DefaultMarkers() {
		t.Errorf("Markers = %+v", comp.Markers)
	}
	if got := comp.Sentenizer.Sentenize("Он живёт в г. Москве."); len(got) != 1 {
		t.Errorf("unexpected split: %q", got)
	}
}

func TestLoaderConfigFileAndWindowOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentenizer.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	comp, err := (&Loader{ConfigPath: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Window != 30 {
		t.Errorf("Window = %d, want 30 from the file", comp.Window)
	}
	if comp.Markers.SentenceEnd != ".!?" {
		t.Errorf("SentenceEnd = %q", comp.Markers.SentenceEnd)
	}

	comp, err = (&Loader{ConfigPath: path, Window: 12}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Window != 12 {
		t.Errorf("Window = %d, want the override 12", comp.Window)
	}
}

func TestLoaderTablesFromDB(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "tables.db")

	// An empty database falls back to the built-in tables.
	comp, err := (&Loader{TablesDBPath: dbPath}).Load(ctx)
	if err != nil {
		t.Fatalf("Load with empty db: %v", err)
	}
	if comp.Tables != abbrev.Default() {
		t.Error("empty database should keep the built-in tables")
	}

	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	custom := abbrev.MustNewTables(map[abbrev.Class][]string{abbrev.Head: {"дом"}})
	if err := store.SaveTables(ctx, st, custom); err != nil {
		t.Fatalf("SaveTables: %v", err)
	}
	st.Close()

	comp, err = (&Loader{TablesDBPath: dbPath}).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Tables.Has(abbrev.Head, "дом") || comp.Tables.Has(abbrev.Head, "г") {
		t.Errorf("stored tables should replace the defaults: %v", comp.Tables.Entries())
	}
	if got := comp.Sentenizer.Sentenize("Это дом. Номер пять."); len(got) != 1 {
		t.Errorf("stored abbreviation should join, got %q", got)
	}
}

func TestLoaderMissingConfig(t *testing.T) {
	l := &Loader{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}
	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestLoaderNegativeWindow(t *testing.T) {
	if _, err := (&Loader{Window: -3}).Load(context.Background()); err == nil {
		t.Error("expected error for a negative window")
	}
}
