package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store. It backs dry runs and tests.
//
// FailList and FailSet, when set, are consulted before each call and may
// return an error to simulate backend failures. FailList receives the
// 1-based call number.
type Memory struct {
	mu   sync.Mutex
	data map[string]map[string]map[string]any

	ListCalls int
	SetCalls  int

	FailList func(call int) error
	FailSet  func(collection, id string) error
}

func NewMemory() *Memory {
	return &Memory{data: map[string]map[string]map[string]any{}}
}

func (m *Memory) List(ctx context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.FailList != nil {
		if err := m.FailList(m.ListCalls); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(m.data[collection]))
	for id, fields := range m.data[collection] {
		docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (m *Memory) SetMerge(ctx context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls++
	if m.FailSet != nil {
		if err := m.FailSet(collection, id); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	coll, ok := m.data[collection]
	if !ok {
		coll = map[string]map[string]any{}
		m.data[collection] = coll
	}
	doc, ok := coll[id]
	if !ok {
		doc = map[string]any{}
		coll[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

// Put replaces a document outright, bypassing counters and failure hooks.
func (m *Memory) Put(collection, id string, fields map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[collection] == nil {
		m.data[collection] = map[string]map[string]any{}
	}
	m.data[collection][id] = cloneFields(fields)
}

// Get returns a copy of a document, bypassing counters and failure hooks.
func (m *Memory) Get(collection, id string) (map[string]any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return nil, false
	}
	return cloneFields(doc), true
}

func (m *Memory) Close() error { return nil }
