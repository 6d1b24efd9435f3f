package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type gormCollection[T any] struct {
	db  *gorm.DB
	sch *schema.Schema
}

// NewGormCollection membungkus satu tabel sebagai collection. db sebaiknya
// dibuka dengan SkipDefaultTransaction: setiap panggilan berdiri sendiri.
func NewGormCollection[T any](db *gorm.DB) (Collection[T], error) {
	sch, err := documentSchema[T]()
	if err != nil {
		return nil, err
	}
	return &gormCollection[T]{db: db, sch: sch}, nil
}

func (g *gormCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", g.sch.Table, err)
	}
	return out, nil
}

func (g *gormCollection[T]) ListByFilter(ctx context.Context, filter Filter, opts ...FindOptions) ([]T, error) {
	q := g.db.WithContext(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if o := mergeFindOptions(opts); o.SortBy != "" {
		if _, err := lookupField(g.sch, o.SortBy); err != nil {
			return nil, err
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.SortBy},
			Desc:   o.SortDir == Descending,
		})
	}
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", g.sch.Table, err)
	}
	return out, nil
}

func (g *gormCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var doc T
	err := g.db.WithContext(ctx).Where(map[string]any(filter)).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", g.sch.Table, err)
	}
	return &doc, nil
}

func (g *gormCollection[T]) InsertOne(ctx context.Context, doc *T) (InsertResult, error) {
	if doc == nil {
		return InsertResult{}, fmt.Errorf("store: nil document")
	}
	if err := g.db.WithContext(ctx).Create(doc).Error; err != nil {
		return InsertResult{}, fmt.Errorf("insert %s: %w", g.sch.Table, err)
	}
	return InsertResult{InsertedID: documentID(ctx, g.sch, reflect.ValueOf(doc).Elem())}, nil
}

func (g *gormCollection[T]) UpdateOne(ctx context.Context, filter Filter, patch Patch, opts ...UpdateOptions) (UpdateResult, error) {
	if len(filter) == 0 {
		return UpdateResult{}, fmt.Errorf("update %s: empty filter", g.sch.Table)
	}
	values := make(map[string]any, len(patch.Set)+len(patch.Inc))
	for col, v := range patch.Set {
		if _, err := lookupField(g.sch, col); err != nil {
			return UpdateResult{}, err
		}
		values[col] = v
	}
	for col, delta := range patch.Inc {
		f, err := lookupField(g.sch, col)
		if err != nil {
			return UpdateResult{}, err
		}
		values[col] = gorm.Expr(fmt.Sprintf("%s + ?", f.DBName), delta)
	}

	res := g.db.WithContext(ctx).Model(new(T)).Where(map[string]any(filter)).Updates(values)
	if res.Error != nil {
		return UpdateResult{}, fmt.Errorf("update %s: %w", g.sch.Table, res.Error)
	}
	if res.RowsAffected > 0 {
		return UpdateResult{MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
	}
	if !mergeUpdateOptions(opts).Upsert {
		return UpdateResult{}, nil
	}

	doc, err := upsertDocument[T](ctx, g.sch, filter, patch)
	if err != nil {
		return UpdateResult{}, err
	}
	if err := g.db.WithContext(ctx).Create(doc).Error; err != nil {
		return UpdateResult{}, fmt.Errorf("upsert %s: %w", g.sch.Table, err)
	}
	return UpdateResult{
		UpsertedCount: 1,
		UpsertedID:    documentID(ctx, g.sch, reflect.ValueOf(doc).Elem()),
	}, nil
}

func (g *gormCollection[T]) DeleteOne(ctx context.Context, filter Filter) (DeleteResult, error) {
	if len(filter) == 0 {
		return DeleteResult{}, fmt.Errorf("delete %s: empty filter", g.sch.Table)
	}
	res := g.db.WithContext(ctx).Where(map[string]any(filter)).Delete(new(T))
	if res.Error != nil {
		return DeleteResult{}, fmt.Errorf("delete %s: %w", g.sch.Table, res.Error)
	}
	return DeleteResult{DeletedCount: res.RowsAffected}, nil
}
