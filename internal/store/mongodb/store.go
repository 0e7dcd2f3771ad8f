// Package mongodb implements the store.DocumentStore façade on top of a
// MongoDB database, one raffle collection per prize plus the submissions and
// activity log collections.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/discoverypromo/raffle-admin-backend/internal/store"
)

// Compile-time check that Store satisfies the façade.
var _ store.DocumentStore = (*Store)(nil)

// Store translates the generic document operations to MongoDB calls. It holds
// no state beyond the database handle.
type Store struct {
	db *mongo.Database
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListAll returns every document in the collection, ordered by opts when given.
func (s *Store) ListAll(ctx context.Context, collection string, opts *store.ListOptions) ([]store.Document, error) {
	findOpts := options.Find()
	if opts != nil && opts.OrderBy != "" {
		order := 1
		if opts.Direction == store.Descending {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.OrderBy, Value: order}})
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, classify("list", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, classify("list", collection, err)
	}

	docs := make([]store.Document, 0, len(raw))
	for _, fields := range raw {
		doc := store.Document{Fields: make(map[string]any, len(fields))}
		for key, value := range fields {
			if key == "_id" {
				doc.ID = idString(value)
				continue
			}
			doc.Fields[key] = normalize(value)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Add inserts a document and returns the generated identifier. The
// store.ServerTimestamp sentinel is resolved to the write time here, so
// callers never stamp documents themselves.
func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	insert := make(bson.M, len(fields))
	for key, value := range fields {
		if value == store.ServerTimestamp {
			insert[key] = primitive.NewDateTimeFromTime(time.Now().UTC())
			continue
		}
		insert[key] = value
	}

	result, err := s.db.Collection(collection).InsertOne(ctx, insert)
	if err != nil {
		return "", classify("add", collection, err)
	}
	return idString(result.InsertedID), nil
}

// Delete removes a document by identifier. A malformed or unknown identifier
// refers to a document that no longer exists, which is not an error.
func (s *Store) Delete(ctx context.Context, collection string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return classify("delete", collection, err)
	}
	return nil
}

func idString(value any) string {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// normalize converts driver-specific field values into plain Go types so the
// layers above never import BSON.
func normalize(value any) any {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case primitive.ObjectID:
		return v.Hex()
	case primitive.A:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// Mongo server error codes carried through to the failure taxonomy.
const (
	codeUnauthorized      = 13
	codeNamespaceNotFound = 26
)

func classify(op, collection string, err error) error {
	kind := store.KindUnknown
	switch {
	case mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		kind = store.KindTimeout
	case errors.Is(err, mongo.ErrNoDocuments):
		kind = store.KindNotFound
	default:
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			switch {
			case cmdErr.Code == codeUnauthorized:
				kind = store.KindPermissionDenied
			case cmdErr.Code == codeNamespaceNotFound:
				kind = store.KindNotFound
			case cmdErr.HasErrorLabel("NetworkError"):
				kind = store.KindTransport
			}
		}
	}
	return &store.RemoteError{Op: op, Collection: collection, Kind: kind, Err: err}
}
