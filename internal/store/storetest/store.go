// Package storetest provides an in-memory store.DocumentStore for tests.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/discoverypromo/raffle-admin-backend/internal/store"
)

var _ store.DocumentStore = (*Store)(nil)

// Store is an in-memory document store. Server timestamps advance by one
// second per write so ordering assertions are deterministic. Forced errors can
// be installed per collection to exercise failure paths.
type Store struct {
	mu     sync.Mutex
	seq    int
	now    time.Time
	data   map[string][]store.Document
	Calls  int // total remote operations attempted

	FailList   map[string]error
	FailAdd    map[string]error
	FailDelete map[string]error
}

// New creates an empty store.
func New() *Store {
	return &Store{
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		data:       make(map[string][]store.Document),
		FailList:   make(map[string]error),
		FailAdd:    make(map[string]error),
		FailDelete: make(map[string]error),
	}
}

// Seed inserts a document directly, bypassing call counting, and returns its id.
func (s *Store) Seed(collection string, fields map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(collection, fields)
}

// Docs returns a copy of the documents currently in a collection, in
// insertion order.
func (s *Store) Docs(collection string) []store.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.Document(nil), s.data[collection]...)
}

func (s *Store) ListAll(_ context.Context, collection string, opts *store.ListOptions) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if err := s.FailList[collection]; err != nil {
		return nil, err
	}

	docs := append([]store.Document(nil), s.data[collection]...)
	if opts != nil && opts.OrderBy != "" {
		field := opts.OrderBy
		desc := opts.Direction == store.Descending
		sort.SliceStable(docs, func(i, j int) bool {
			if desc {
				return lessValue(docs[j].Fields[field], docs[i].Fields[field])
			}
			return lessValue(docs[i].Fields[field], docs[j].Fields[field])
		})
	}
	return docs, nil
}

func (s *Store) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if err := s.FailAdd[collection]; err != nil {
		return "", err
	}
	return s.insert(collection, fields), nil
}

func (s *Store) Delete(_ context.Context, collection string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if err := s.FailDelete[collection]; err != nil {
		return err
	}
	docs := s.data[collection]
	for i, doc := range docs {
		if doc.ID == id {
			s.data[collection] = append(docs[:i:i], docs[i+1:]...)
			break
		}
	}
	return nil // deleting an absent document is a no-op
}

func (s *Store) insert(collection string, fields map[string]any) string {
	s.seq++
	s.now = s.now.Add(time.Second)
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		if value == store.ServerTimestamp {
			copied[key] = s.now
			continue
		}
		copied[key] = value
	}
	id := fmt.Sprintf("doc-%d", s.seq)
	s.data[collection] = append(s.data[collection], store.Document{ID: id, Fields: copied})
	return id
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
