package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm/schema"
)

// memoryCollection keeps documents in process. Each call holds the lock for
// its own duration only, so concurrent calls interleave exactly like
// independent requests against a real database. Documents are deep-copied
// on the way in and out.
type memoryCollection[T any] struct {
	mu   sync.RWMutex
	sch  *schema.Schema
	docs []T
	now  func() time.Time
}

// NewMemoryCollection dipakai untuk STORE_DRIVER=memory dan untuk test.
func NewMemoryCollection[T any]() (Collection[T], error) {
	sch, err := documentSchema[T]()
	if err != nil {
		return nil, err
	}
	return &memoryCollection[T]{sch: sch, now: time.Now}, nil
}

func (m *memoryCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	return m.ListByFilter(ctx, nil)
}

func (m *memoryCollection[T]) ListByFilter(ctx context.Context, filter Filter, opts ...FindOptions) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	out := make([]T, 0, len(m.docs))
	for i := range m.docs {
		ok, err := m.matches(ctx, &m.docs[i], filter)
		if err != nil {
			m.mu.RUnlock()
			return nil, err
		}
		if ok {
			out = append(out, cloneDocument(&m.docs[i]))
		}
	}
	m.mu.RUnlock()

	o := mergeFindOptions(opts)
	if o.SortBy == "" {
		return out, nil
	}
	f, err := lookupField(m.sch, o.SortBy)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := f.ValueOf(ctx, reflect.ValueOf(&out[i]).Elem())
		b, _ := f.ValueOf(ctx, reflect.ValueOf(&out[j]).Elem())
		if o.SortDir == Descending {
			return less(b, a)
		}
		return less(a, b)
	})
	return out, nil
}

func (m *memoryCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, err := m.indexOf(ctx, filter)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	doc := cloneDocument(&m.docs[idx])
	return &doc, nil
}

func (m *memoryCollection[T]) InsertOne(ctx context.Context, doc *T) (InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return InsertResult{}, err
	}
	if doc == nil {
		return InsertResult{}, fmt.Errorf("store: nil document")
	}
	rv := reflect.ValueOf(doc).Elem()
	if err := prepareInsert(ctx, m.sch, rv, m.now()); err != nil {
		return InsertResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkUnique(ctx, rv); err != nil {
		return InsertResult{}, err
	}
	m.docs = append(m.docs, cloneDocument(doc))
	return InsertResult{InsertedID: documentID(ctx, m.sch, rv)}, nil
}

func (m *memoryCollection[T]) UpdateOne(ctx context.Context, filter Filter, patch Patch, opts ...UpdateOptions) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, err := m.indexOf(ctx, filter)
	if err != nil {
		return UpdateResult{}, err
	}
	now := m.now()
	if idx >= 0 {
		// kerjakan di salinan dulu supaya patch yang gagal tidak setengah jalan
		doc := m.docs[idx]
		rv := reflect.ValueOf(&doc).Elem()
		if err := applyPatch(ctx, m.sch, rv, patch); err != nil {
			return UpdateResult{}, err
		}
		m.touch(ctx, rv, now)
		m.docs[idx] = cloneDocument(&doc)
		return UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	if !mergeUpdateOptions(opts).Upsert {
		return UpdateResult{}, nil
	}
	doc, err := upsertDocument[T](ctx, m.sch, filter, patch)
	if err != nil {
		return UpdateResult{}, err
	}
	rv := reflect.ValueOf(doc).Elem()
	if err := prepareInsert(ctx, m.sch, rv, now); err != nil {
		return UpdateResult{}, err
	}
	m.docs = append(m.docs, cloneDocument(doc))
	return UpdateResult{UpsertedCount: 1, UpsertedID: documentID(ctx, m.sch, rv)}, nil
}

func (m *memoryCollection[T]) DeleteOne(ctx context.Context, filter Filter) (DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, err := m.indexOf(ctx, filter)
	if err != nil {
		return DeleteResult{}, err
	}
	if idx < 0 {
		return DeleteResult{}, nil
	}
	m.docs = append(m.docs[:idx], m.docs[idx+1:]...)
	return DeleteResult{DeletedCount: 1}, nil
}

func (m *memoryCollection[T]) indexOf(ctx context.Context, filter Filter) (int, error) {
	for i := range m.docs {
		ok, err := m.matches(ctx, &m.docs[i], filter)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

func (m *memoryCollection[T]) matches(ctx context.Context, doc *T, filter Filter) (bool, error) {
	rv := reflect.ValueOf(doc).Elem()
	for col, want := range filter {
		f, err := lookupField(m.sch, col)
		if err != nil {
			return false, err
		}
		got, _ := f.ValueOf(ctx, rv)
		if !equalValues(got, want) {
			return false, nil
		}
	}
	return true, nil
}

// checkUnique meniru unique index: primary key dan kolom bertag unique.
func (m *memoryCollection[T]) checkUnique(ctx context.Context, rv reflect.Value) error {
	for _, f := range m.sch.Fields {
		if !f.PrimaryKey && !f.Unique {
			continue
		}
		v, zero := f.ValueOf(ctx, rv)
		if zero {
			continue
		}
		for i := range m.docs {
			other, _ := f.ValueOf(ctx, reflect.ValueOf(&m.docs[i]).Elem())
			if equalValues(other, v) {
				return fmt.Errorf("store: duplicate key %s=%v in %s", f.DBName, v, m.sch.Table)
			}
		}
	}
	return nil
}

func (m *memoryCollection[T]) touch(ctx context.Context, rv reflect.Value, now time.Time) {
	for _, f := range m.sch.Fields {
		if f.AutoUpdateTime != 0 {
			_ = f.Set(ctx, rv, now)
		}
	}
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.TypeOf(a).Comparable() {
		return a == b
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func less(a, b any) bool {
	switch x := a.(type) {
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Before(y)
		}
	case string:
		if y, ok := b.(string); ok {
			return x < y
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x < y
		}
	}
	if x, err := toInt64(a); err == nil {
		if y, err := toInt64(b); err == nil {
			return x < y
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b)) < 0
}
