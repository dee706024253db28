package abbrev

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
)

func TestNewTablesRejectsMalformedKeys(t *testing.T) {
	bad := []map[Class][]string{
		{Head: {""}},
		{Head: {"a b"}},
		{Head: {"т.е"}},
		{HeadPair: {"тп"}},
		{TailPair: {".п"}},
		{OtherPair: {"т."}},
		{OtherPair: {"т.п.д"}},
		{Class(42): {"x"}},
	}
	for _, entries := range bad {
		_, err := NewTables(entries)
		if err == nil {
			t.Errorf("expected error for %v", entries)
			continue
		}
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("error for %v should wrap ErrInvalidConfig, got %v", entries, err)
		}
	}
}

func TestTablesNormalizeKeys(t *testing.T) {
	tables := MustNewTables(map[Class][]string{
		Head:     {"Г", "ПРОФ"},
		TailPair: {"Т.Д"},
	})

	if !tables.Has(Head, "г") || !tables.Has(Head, "Проф") {
		t.Error("lookups should ignore case")
	}
	if !tables.IsWord("ПРОФ") {
		t.Error("IsWord should ignore case")
	}
	if !tables.IsPair("т", "Д") {
		t.Error("IsPair should ignore case")
	}
	if tables.IsWord("т.д") {
		t.Error("pair keys must not match as words")
	}
	if got := tables.Keys(Head); !reflect.DeepEqual(got, []string{"г", "проф"}) {
		t.Errorf("Keys(Head) = %v", got)
	}
	if tables.Len() != 3 {
		t.Errorf("Len = %d, want 3", tables.Len())
	}
}

func TestTablesNormalizeComposition(t *testing.T) {
	// "й" written as "и" plus a combining breve.
	decomposed := "\u0438\u0306"
	tables := MustNewTables(map[Class][]string{Other: {decomposed}})

	if !tables.IsWord("\u0439") {
		t.Error("decomposed and composed forms should match")
	}
}

func TestTablesMerge(t *testing.T) {
	a := MustNewTables(map[Class][]string{Head: {"г"}})
	b := MustNewTables(map[Class][]string{Head: {"ул"}, TailPair: {"т.д"}})

	merged := a.Merge(b)
	if !merged.Has(Head, "г") || !merged.Has(Head, "ул") || !merged.Has(TailPair, "т.д") {
		t.Errorf("merged tables missing keys: %v", merged.Entries())
	}
	if a.Has(Head, "ул") {
		t.Error("Merge must not modify its receiver")
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range Classes {
		got, err := ParseClass(c.String())
		if err != nil {
			t.Fatalf("ParseClass(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseClass(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if _, err := ParseClass("footnote"); err == nil {
		t.Error("expected error for unknown class name")
	}
	if got := Class(99).String(); got != "class(99)" {
		t.Errorf("unknown class String() = %q", got)
	}
}

func TestDefaultTablesAreValid(t *testing.T) {
	entries := DefaultEntries()
	for _, c := range Classes {
		if len(entries[c]) == 0 {
			t.Errorf("default %s table is empty", c)
		}
	}
	if _, err := NewTables(entries); err != nil {
		t.Fatalf("default tables should validate: %v", err)
	}

	entries[Head] = append(entries[Head], "zz")
	if Default().Has(Head, "zz") {
		t.Error("DefaultEntries should return a copy")
	}
}
