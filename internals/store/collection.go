// Package store is the document store gateway: one Collection per named
// collection, each exposing the same six operations regardless of driver.
package store

import (
	"context"
	"errors"
)

// ErrNotFound dikembalikan FindOne kalau tidak ada dokumen yang cocok.
var ErrNotFound = errors.New("store: document not found")

// Filter adalah equality match per kolom: {"email": "a@b.c"}.
type Filter map[string]any

// Patch meniru $set dan $inc pada document store.
type Patch struct {
	Set map[string]any
	Inc map[string]int64
}

// SortDirection untuk ListByFilter.
type SortDirection int

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

type FindOptions struct {
	SortBy  string
	SortDir SortDirection
}

type UpdateOptions struct {
	Upsert bool
}

type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the per-collection accessor. Every call stands alone:
// no transactions, no batching, no retries. UpdateOne and DeleteOne expect
// the filter to identify a single document (primary or unique key).
type Collection[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	ListByFilter(ctx context.Context, filter Filter, opts ...FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	InsertOne(ctx context.Context, doc *T) (InsertResult, error)
	UpdateOne(ctx context.Context, filter Filter, patch Patch, opts ...UpdateOptions) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (DeleteResult, error)
}

func mergeFindOptions(opts []FindOptions) FindOptions {
	var out FindOptions
	for _, o := range opts {
		if o.SortBy != "" {
			out.SortBy = o.SortBy
		}
		if o.SortDir != 0 {
			out.SortDir = o.SortDir
		}
	}
	if out.SortDir == 0 {
		out.SortDir = Ascending
	}
	return out
}

func mergeUpdateOptions(opts []UpdateOptions) UpdateOptions {
	var out UpdateOptions
	for _, o := range opts {
		out.Upsert = out.Upsert || o.Upsert
	}
	return out
}
