package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches the given id or filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert or update collides with a
	// unique-field constraint.
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// ListOptions controls ordering and size of FindAll results. The zero value
// means insertion order, no cap.
type ListOptions struct {
	SortBy string
	Desc   bool
	Limit  int64
}

// Store is the document-store seam handlers are built against. It is
// constructed once at startup and injected into every handler; the Mongo
// implementation backs production and Memory backs tests.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	FindByID(ctx context.Context, collection, id string, out any) error
	FindOne(ctx context.Context, collection string, filter map[string]any, out any) error
	FindAll(ctx context.Context, collection string, opts ListOptions, out any) error
	UpdateByID(ctx context.Context, collection, id string, set map[string]any, out any) error
	DeleteByID(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string) (int64, error)
	CountFiltered(ctx context.Context, collection string, filter map[string]any) (int64, error)
}
