package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmpoweredVote/emotodo-seed/config"
)

// ErrConnection marks failures to reach the backend or authenticate with it.
var ErrConnection = errors.New("store connection failed")

// Document is one keyed record in a collection.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the document database the seeder talks to.
type Store interface {
	// List returns every document in collection, ordered by id.
	List(ctx context.Context, collection string) ([]Document, error)
	// SetMerge upserts a document. Fields not named in fields are kept.
	SetMerge(ctx context.Context, collection, id string, fields map[string]any) error
	Close() error
}

// Open connects to the backend selected by cfg.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case config.BackendFirestore:
		s, err = OpenFirestore(ctx, cfg.ProjectID, firestoreOptions(cfg)...)
	case config.BackendPostgres:
		s, err = OpenPostgres(ctx, cfg.DatabaseURL)
	case config.BackendMemory:
		s = NewMemory()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, cfg.Backend, err)
	}
	return s, nil
}

// IDs returns the ids of docs in order.
func IDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

func cloneFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
