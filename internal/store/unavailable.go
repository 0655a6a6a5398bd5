package store

import (
	"context"
	"errors"
)

// Unavailable is the Store used when the Mongo connection failed at startup.
// The server keeps serving; every store-backed request fails with this error
// and surfaces as a 500.
type Unavailable struct{}

var errUnavailable = errors.New("document store unavailable")

func (Unavailable) Insert(context.Context, string, any) (string, error) { return "", errUnavailable }

func (Unavailable) FindByID(context.Context, string, string, any) error { return errUnavailable }

func (Unavailable) FindOne(context.Context, string, map[string]any, any) error {
	return errUnavailable
}

func (Unavailable) FindAll(context.Context, string, ListOptions, any) error { return errUnavailable }

func (Unavailable) UpdateByID(context.Context, string, string, map[string]any, any) error {
	return errUnavailable
}

func (Unavailable) DeleteByID(context.Context, string, string) error { return errUnavailable }

func (Unavailable) Count(context.Context, string) (int64, error) { return 0, errUnavailable }

func (Unavailable) CountFiltered(context.Context, string, map[string]any) (int64, error) {
	return 0, errUnavailable
}
