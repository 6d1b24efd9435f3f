package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/schema"
)

var schemaCache sync.Map

// documentSchema mem-parse tag gorm milik T, dipakai kedua driver supaya
// nama kolom di Filter/Patch berarti hal yang sama.
func documentSchema[T any]() (*schema.Schema, error) {
	sch, err := schema.Parse(new(T), &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse document schema: %w", err)
	}
	return sch, nil
}

func lookupField(sch *schema.Schema, column string) (*schema.Field, error) {
	f := sch.LookUpField(column)
	if f == nil {
		return nil, fmt.Errorf("store: unknown column %q on %s", column, sch.Table)
	}
	return f, nil
}

func documentID(ctx context.Context, sch *schema.Schema, rv reflect.Value) any {
	if sch.PrioritizedPrimaryField == nil {
		return nil
	}
	v, _ := sch.PrioritizedPrimaryField.ValueOf(ctx, rv)
	return v
}

// prepareInsert mengisi id dan timestamp kalau masih kosong.
func prepareInsert(ctx context.Context, sch *schema.Schema, rv reflect.Value, now time.Time) error {
	if pk := sch.PrioritizedPrimaryField; pk != nil {
		if _, zero := pk.ValueOf(ctx, rv); zero && pk.FieldType == reflect.TypeOf(uuid.UUID{}) {
			if err := pk.Set(ctx, rv, uuid.New()); err != nil {
				return err
			}
		}
	}
	for _, f := range sch.Fields {
		if f.AutoCreateTime == 0 && f.AutoUpdateTime == 0 {
			continue
		}
		if _, zero := f.ValueOf(ctx, rv); zero {
			if err := f.Set(ctx, rv, now); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyPatch menerapkan $set lalu $inc ke satu dokumen.
func applyPatch(ctx context.Context, sch *schema.Schema, rv reflect.Value, patch Patch) error {
	for col, v := range patch.Set {
		f, err := lookupField(sch, col)
		if err != nil {
			return err
		}
		if err := f.Set(ctx, rv, v); err != nil {
			return fmt.Errorf("set %s: %w", col, err)
		}
	}
	for col, delta := range patch.Inc {
		f, err := lookupField(sch, col)
		if err != nil {
			return err
		}
		cur, _ := f.ValueOf(ctx, rv)
		n, err := toInt64(cur)
		if err != nil {
			return fmt.Errorf("inc %s: %w", col, err)
		}
		if err := f.Set(ctx, rv, n+delta); err != nil {
			return fmt.Errorf("inc %s: %w", col, err)
		}
	}
	return nil
}

// upsertDocument membangun dokumen baru dari filter + patch, seperti upsert
// pada document store: field counter yang belum ada mulai dari nol.
func upsertDocument[T any](ctx context.Context, sch *schema.Schema, filter Filter, patch Patch) (*T, error) {
	doc := new(T)
	rv := reflect.ValueOf(doc).Elem()
	for col, v := range filter {
		f, err := lookupField(sch, col)
		if err != nil {
			return nil, err
		}
		if err := f.Set(ctx, rv, v); err != nil {
			return nil, fmt.Errorf("set %s: %w", col, err)
		}
	}
	if err := applyPatch(ctx, sch, rv, patch); err != nil {
		return nil, err
	}
	return doc, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// cloneDocument menyalin doc sampai ke map, slice dan pointer di dalamnya,
// jadi dokumen yang disimpan tidak pernah berbagi state dengan pemanggil.
func cloneDocument[T any](doc *T) T {
	var out T
	deepCopy(reflect.ValueOf(&out).Elem(), reflect.ValueOf(doc).Elem())
	return out
}

func deepCopy(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			dst.Set(reflect.Zero(src.Type()))
			return
		}
		p := reflect.New(src.Type().Elem())
		deepCopy(p.Elem(), src.Elem())
		dst.Set(p)
	case reflect.Map:
		if src.IsNil() {
			dst.Set(reflect.Zero(src.Type()))
			return
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			v := reflect.New(src.Type().Elem()).Elem()
			deepCopy(v, iter.Value())
			m.SetMapIndex(iter.Key(), v)
		}
		dst.Set(m)
	case reflect.Slice:
		if src.IsNil() {
			dst.Set(reflect.Zero(src.Type()))
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			deepCopy(s.Index(i), src.Index(i))
		}
		dst.Set(s)
	case reflect.Interface:
		if src.IsNil() {
			dst.Set(reflect.Zero(src.Type()))
			return
		}
		v := reflect.New(src.Elem().Type()).Elem()
		deepCopy(v, src.Elem())
		dst.Set(v)
	case reflect.Struct:
		// field unexported (mis. time.Time) ikut tersalin lewat Set
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if dst.Field(i).CanSet() {
				deepCopy(dst.Field(i), src.Field(i))
			}
		}
	case reflect.Array:
		dst.Set(src)
		for i := 0; i < src.Len(); i++ {
			deepCopy(dst.Index(i), src.Index(i))
		}
	default:
		dst.Set(src)
	}
}
