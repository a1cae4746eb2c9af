package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/EmpoweredVote/emotodo-seed/config"
)

// Firestore is a Store backed by Cloud Firestore or the Firestore emulator.
type Firestore struct {
	client *firestore.Client
}

// OpenFirestore creates a client for projectID. With no options the client
// uses Application Default Credentials, or the emulator when
// FIRESTORE_EMULATOR_HOST is set.
func OpenFirestore(ctx context.Context, projectID string, opts ...option.ClientOption) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return &Firestore{client: client}, nil
}

// firestoreOptions passes the API key through unless it is the demo
// placeholder or the emulator is in use.
func firestoreOptions(cfg config.Config) []option.ClientOption {
	if host := os.Getenv("FIRESTORE_EMULATOR_HOST"); host != "" {
		log.Printf("[firestore] using emulator at %s", host)
		return nil
	}
	if cfg.Defaulted("API_KEY") {
		return nil
	}
	return []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
}

func (f *Firestore) List(ctx context.Context, collection string) ([]Document, error) {
	iter := f.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

func (f *Firestore) SetMerge(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := f.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
