package store

import (
	"context"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
)

// Store keeps abbreviation tables outside the binary so they can be edited
// per deployment without a rebuild.
type Store interface {
	Close() error

	// UpsertTable replaces every key of one class in a single transaction.
	UpsertTable(ctx context.Context, class abbrev.Class, keys []string) error
	// Keys returns the sorted keys of one class.
	Keys(ctx context.Context, class abbrev.Class) ([]string, error)
	// LoadTables builds immutable tables from the stored keys.
	// It returns internalerr.ErrNotFound when the store holds no keys at all.
	LoadTables(ctx context.Context) (*abbrev.Tables, error)
}

// SaveTables writes every class of t into s.
func SaveTables(ctx context.Context, s Store, t *abbrev.Tables) error {
	for _, c := range abbrev.Classes {
		if err := s.UpsertTable(ctx, c, t.Keys(c)); err != nil {
			return err
		}
	}
	return nil
}
