package catalog

import (
	"context"
	"time"
)

// Item is one record in a named collection. The backend assigns the ID on
// insert; it never changes and is never reused after deletion.
type Item struct {
	ID        string         `json:"id"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
}

// Field returns a field as string, or "" if absent or not text.
func (it Item) Field(name string) string {
	s, _ := it.Fields[name].(string)
	return s
}

// Query narrows a List or Count. Zero value means the whole collection in
// the collection's default order.
type Query struct {
	Equals    map[string]string
	OrderBy   string
	Ascending bool
}

// Gateway is the access point to the remote datastore. Every call is a
// single round trip; there is no pagination and no retry here — callers
// decide what to do with a failure.
type Gateway interface {
	List(ctx context.Context, collection string, q Query) ([]Item, error)
	Insert(ctx context.Context, collection string, fields map[string]any) (Item, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string, q Query) (int, error)
}
