package seeds

import (
	"context"

	"github.com/EmpoweredVote/emotodo-seed/store"
)

// SeedAll seeds every collection this tool owns into st.
func SeedAll(ctx context.Context, st store.Store, opts ...Option) error {
	if _, err := New(st, opts...).Run(ctx); err != nil {
		return err
	}
	return nil
}
