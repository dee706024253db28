package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
)

const sampleConfig = `
window: 30
markers:
  sentence_end: ".!?"
abbreviations:
  head: [кот, Пёс]
  tail_pair: [x.y]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Window != 30 {
		t.Errorf("Window = %d, want 30", f.Window)
	}
	if f.Markers.SentenceEnd != ".!?" {
		t.Errorf("SentenceEnd = %q", f.Markers.SentenceEnd)
	}

	tables, err := f.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if !tables.Has(abbrev.Head, "пёс") || !tables.IsPair("x", "y") {
		t.Errorf("configured keys missing: %v", tables.Entries())
	}
	if tables.Has(abbrev.Head, "г") {
		t.Error("without extend_defaults the built-in keys should not be present")
	}
}

func TestParseExtendDefaults(t *testing.T) {
	f, err := Parse([]byte("extend_defaults: true\nabbreviations:\n  other: [кот]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tables, err := f.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if !tables.Has(abbrev.Other, "кот") || !tables.Has(abbrev.Head, "г") {
		t.Error("extend_defaults should merge configured keys into the built-in tables")
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	tables, err := f.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if tables != abbrev.Default() {
		t.Error("an empty file should select the built-in tables")
	}
}

func TestParseRejects(t *testing.T) {
	docs := map[string]string{
		"unknown field":    "abbreviation:\n  head: [г]\n",
		"negative window":  "window: -5\n",
		"markers w/o dot":  "markers:\n  sentence_end: \"!?\"\n",
		"malformed yaml":   "window: [1, 2\n",
		"wrong value type": "window: many\n",
	}
	for name, doc := range docs {
		_, err := Parse([]byte(doc))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: error should wrap ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestTablesRejectsBadKeys(t *testing.T) {
	f, err := Parse([]byte("abbreviations:\n  head_pair: [тп]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := f.Tables(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for a pair without a dot, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentenizer.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Window != 30 {
		t.Errorf("Window = %d, want 30", f.Window)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
