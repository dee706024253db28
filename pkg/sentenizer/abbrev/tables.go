// Package abbrev holds the abbreviation tables and the classifier that
// decides whether a dot belongs to an abbreviation rather than a sentence end.
package abbrev

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
)

// Class identifies one of the seven abbreviation tables.
type Class int

const (
	Initials Class = iota
	Head
	Tail
	Other
	HeadPair
	TailPair
	OtherPair
)

// Classes lists every table class in a stable order.
var Classes = []Class{Initials, Head, Tail, Other, HeadPair, TailPair, OtherPair}

var classNames = map[Class]string{
	Initials:  "initials",
	Head:      "head",
	Tail:      "tail",
	Other:     "other",
	HeadPair:  "head_pair",
	TailPair:  "tail_pair",
	OtherPair: "other_pair",
}

// String returns the class name used in config files and the store.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// IsPair reports whether keys of the class are dotted pairs.
func (c Class) IsPair() bool {
	return c == HeadPair || c == TailPair || c == OtherPair
}

// ParseClass maps a configuration name such as "head_pair" to its class.
func ParseClass(name string) (Class, error) {
	for c, n := range classNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown abbreviation class %q", internalerr.ErrInvalidConfig, name)
}

// Tables is an immutable set of abbreviation tables.
// Keys are lower-cased and NFC-normalized.
type Tables struct {
	sets map[Class]map[string]struct{}
}

// NewTables validates and normalizes entries. Missing classes are empty.
func NewTables(entries map[Class][]string) (*Tables, error) {
	t := &Tables{sets: make(map[Class]map[string]struct{}, len(Classes))}
	for _, c := range Classes {
		t.sets[c] = make(map[string]struct{})
	}
	for c, keys := range entries {
		set, ok := t.sets[c]
		if !ok {
			return nil, fmt.Errorf("%w: unknown abbreviation class %d", internalerr.ErrInvalidConfig, int(c))
		}
		for _, k := range keys {
			key := Normalize(k)
			if err := validateKey(c, key); err != nil {
				return nil, err
			}
			set[key] = struct{}{}
		}
	}
	return t, nil
}

// MustNewTables is like NewTables but panics on invalid entries.
func MustNewTables(entries map[Class][]string) *Tables {
	t, err := NewTables(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize returns the lookup form of a key.
func Normalize(key string) string {
	return norm.NFC.String(strings.ToLower(key))
}

func validateKey(c Class, key string) error {
	if key == "" || strings.IndexFunc(key, parse.IsSpace) >= 0 {
		return fmt.Errorf("%w: %s key %q is empty or contains whitespace", internalerr.ErrInvalidConfig, c, key)
	}
	if !c.IsPair() {
		if strings.Contains(key, ".") {
			return fmt.Errorf("%w: %s key %q must not contain '.'", internalerr.ErrInvalidConfig, c, key)
		}
		return nil
	}
	head, tail, ok := strings.Cut(key, ".")
	if !ok || head == "" || tail == "" || strings.Contains(tail, ".") {
		return fmt.Errorf("%w: %s key %q must look like \"head.tail\"", internalerr.ErrInvalidConfig, c, key)
	}
	return nil
}

// Has reports whether key is in the given class.
func (t *Tables) Has(c Class, key string) bool {
	_, ok := t.sets[c][Normalize(key)]
	return ok
}

// IsWord reports whether word is a single-word abbreviation of any class.
func (t *Tables) IsWord(word string) bool {
	key := Normalize(word)
	for _, c := range []Class{Initials, Head, Tail, Other} {
		if _, ok := t.sets[c][key]; ok {
			return true
		}
	}
	return false
}

// IsPair reports whether head.tail is a known pair abbreviation.
func (t *Tables) IsPair(head, tail string) bool {
	key := Normalize(head + "." + tail)
	for _, c := range []Class{HeadPair, TailPair, OtherPair} {
		if _, ok := t.sets[c][key]; ok {
			return true
		}
	}
	return false
}

// Keys returns the sorted keys of a class.
func (t *Tables) Keys(c Class) []string {
	keys := make([]string, 0, len(t.sets[c]))
	for k := range t.sets[c] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of keys across all classes.
func (t *Tables) Len() int {
	n := 0
	for _, set := range t.sets {
		n += len(set)
	}
	return n
}

// Entries returns a copy of the tables suitable for NewTables or storage.
func (t *Tables) Entries() map[Class][]string {
	out := make(map[Class][]string, len(Classes))
	for _, c := range Classes {
		out[c] = t.Keys(c)
	}
	return out
}

// Merge returns new tables holding the keys of t and other.
func (t *Tables) Merge(other *Tables) *Tables {
	entries := t.Entries()
	for c, keys := range other.Entries() {
		entries[c] = append(entries[c], keys...)
	}
	// Both inputs were already validated.
	return MustNewTables(entries)
}
