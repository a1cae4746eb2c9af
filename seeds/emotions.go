package seeds

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/EmpoweredVote/emotodo-seed/emotions"
	"github.com/EmpoweredVote/emotodo-seed/store"
)

// Collection is where the emotion catalog lives.
const Collection = "emotions"

// Seeder writes the emotion catalog into a store and verifies it.
type Seeder struct {
	store      store.Store
	catalog    []emotions.Emotion
	collection string
	limiter    *rate.Limiter
	logger     *log.Logger
	runID      string
}

type Option func(*Seeder)

// WithLogger replaces the default stdout logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Seeder) { s.logger = l }
}

// WithWriteRate caps upserts per second. Zero or less means unlimited.
func WithWriteRate(perSecond float64) Option {
	return func(s *Seeder) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithCollection targets a collection other than Collection.
func WithCollection(name string) Option {
	return func(s *Seeder) { s.collection = name }
}

// WithCatalog seeds list instead of the built-in catalog.
func WithCatalog(list []emotions.Emotion) Option {
	return func(s *Seeder) { s.catalog = append([]emotions.Emotion(nil), list...) }
}

func New(st store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store:      st,
		catalog:    emotions.Catalog(),
		collection: Collection,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		runID:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(os.Stdout, fmt.Sprintf("[seed run=%s] ", s.runID[:8]), log.LstdFlags)
	}
	return s
}

// Result describes a completed run.
type Result struct {
	RunID string
	// Existing holds every id found before writing, catalog or not.
	Existing []string
	// Missing holds the catalog ids absent before writing.
	Missing []string
	// Written holds the ids upserted, in write order.
	Written        []string
	ShortCircuited bool
}

// Run lists the collection, upserts the catalog when anything is missing
// and verifies the result. Any failure ends the run.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: s.runID}

	if err := emotions.Validate(s.catalog); err != nil {
		return res, err
	}

	s.logger.Printf("🚀 Seeding %d emotions into %q...", len(s.catalog), s.collection)

	docs, err := s.ListExisting(ctx)
	if err != nil {
		return res, fmt.Errorf("%w: %w", store.ErrConnection, err)
	}
	res.Existing = store.IDs(docs)

	missing := emotions.ComputeMissing(res.Existing, s.catalog)
	res.Missing = emotions.IDs(missing)

	if len(docs) > 0 {
		s.logger.Printf("⚠️  Found %d existing emotions", len(docs))
		if len(missing) == 0 {
			s.logger.Printf("✅ All %d required emotions already exist", len(s.catalog))
			s.logger.Printf("📋 Existing emotions: %s", strings.Join(res.Existing, ", "))
			res.ShortCircuited = true
			return res, nil
		}
		s.logger.Printf("❌ Missing %d emotions: %s", len(missing), strings.Join(res.Missing, ", "))
	}

	s.logger.Println("📝 Creating/updating emotions...")
	res.Written, err = s.UpsertAll(ctx, s.catalog)
	if err != nil {
		return res, err
	}

	s.logger.Println("🔍 Verifying emotion data...")
	ok, stillMissing, err := s.Verify(ctx, s.catalog)
	if !ok {
		return res, &VerificationError{Missing: stillMissing, Err: err}
	}

	s.logger.Printf("✅ All %d required emotions verified", len(s.catalog))
	return res, nil
}

// ListExisting returns every document currently in the collection.
func (s *Seeder) ListExisting(ctx context.Context) ([]store.Document, error) {
	return s.store.List(ctx, s.collection)
}

// UpsertAll merges each record into the store in catalog order, one at a
// time. It stops at the first failure.
func (s *Seeder) UpsertAll(ctx context.Context, list []emotions.Emotion) ([]string, error) {
	written := make([]string, 0, len(list))
	for _, e := range list {
		if err := s.limiter.Wait(ctx); err != nil {
			return written, &WriteError{ID: e.ID, Written: written, Err: err}
		}
		if err := s.store.SetMerge(ctx, s.collection, e.ID, e.Fields()); err != nil {
			return written, &WriteError{ID: e.ID, Written: written, Err: err}
		}
		written = append(written, e.ID)
		s.logger.Printf("  ✅ %s %s (%s/%s)", e.Emoji, e.Name, e.Category, e.Energy)
	}
	return written, nil
}

// Verify re-lists the collection and reports which records are absent. If the
// re-read fails every record counts as missing.
func (s *Seeder) Verify(ctx context.Context, list []emotions.Emotion) (bool, []string, error) {
	docs, err := s.store.List(ctx, s.collection)
	if err != nil {
		return false, emotions.IDs(list), err
	}
	missing := emotions.IDs(emotions.ComputeMissing(store.IDs(docs), list))
	return len(missing) == 0, missing, nil
}
