// Package store defines the document-store boundary the admin backend talks
// to: named collections of documents with generated identifiers. Everything
// above this interface is backend-agnostic; the mongodb subpackage is the
// production implementation.
package store

import "context"

// Direction orders a listing by the chosen field.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Document is a single record: a backend-generated identifier and its fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// ListOptions selects the ordering of a listing. When OrderBy is empty the
// ordering is backend-defined and must not be relied upon.
type ListOptions struct {
	OrderBy   string
	Direction Direction
}

// DocumentStore is the capability set this system depends on. Delete is
// idempotent: removing an already-absent document is not an error.
type DocumentStore interface {
	ListAll(ctx context.Context, collection string, opts *ListOptions) ([]Document, error)
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	Delete(ctx context.Context, collection string, id string) error
}

type serverTimestamp struct{}

// ServerTimestamp is a sentinel field value. Implementations replace it with a
// timestamp assigned at write time, not by the caller.
var ServerTimestamp = serverTimestamp{}
