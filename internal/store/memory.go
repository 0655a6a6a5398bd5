package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store holding documents as bson maps, in insertion
// order. It honors the same unique-field constraints the Mongo indexes do, so
// handler tests exercise the exact error paths production sees.
type Memory struct {
	mu     sync.RWMutex
	docs   map[string][]bson.M
	unique map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string][]bson.M),
		unique: map[string][]string{
			"users":       {"email"},
			"students":    {"email"},
			"instructors": {"email"},
		},
	}
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func docID(doc bson.M) string {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func (m *Memory) violatesUnique(collection string, doc bson.M, skipID string) bool {
	for _, field := range m.unique[collection] {
		val, ok := doc[field]
		if !ok {
			continue
		}
		for _, other := range m.docs[collection] {
			if docID(other) == skipID {
				continue
			}
			if fmt.Sprint(other[field]) == fmt.Sprint(val) {
				return true
			}
		}
	}
	return false
}

func (m *Memory) Insert(_ context.Context, collection string, v any) (string, error) {
	doc, err := toDoc(v)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := doc["_id"].(primitive.ObjectID); !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	if m.violatesUnique(collection, doc, "") {
		return "", ErrDuplicate
	}
	m.docs[collection] = append(m.docs[collection], doc)
	return docID(doc), nil
}

func (m *Memory) FindByID(_ context.Context, collection, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs[collection] {
		if docID(doc) == id {
			return decodeDoc(doc, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) FindOne(_ context.Context, collection string, filter map[string]any, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs[collection] {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) FindAll(_ context.Context, collection string, opts ListOptions, out any) error {
	m.mu.RLock()
	docs := make([]bson.M, len(m.docs[collection]))
	copy(docs, m.docs[collection])
	m.mu.RUnlock()

	if opts.SortBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			less := lessValue(docs[i][opts.SortBy], docs[j][opts.SortBy])
			if opts.Desc {
				return !less && !equalValue(docs[i][opts.SortBy], docs[j][opts.SortBy])
			}
			return less
		})
	}
	if opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}

	return decodeAll(docs, out)
}

func (m *Memory) UpdateByID(_ context.Context, collection, id string, set map[string]any, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs[collection] {
		if docID(doc) != id {
			continue
		}
		updated, err := toDoc(doc)
		if err != nil {
			return err
		}
		setDoc, err := toDoc(set)
		if err != nil {
			return err
		}
		for k, v := range setDoc {
			updated[k] = v
		}
		updated["_id"] = doc["_id"]
		if m.violatesUnique(collection, updated, id) {
			return ErrDuplicate
		}
		m.docs[collection][i] = updated
		return decodeDoc(updated, out)
	}
	return ErrNotFound
}

func (m *Memory) DeleteByID(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs[collection] {
		if docID(doc) == id {
			m.docs[collection] = append(m.docs[collection][:i], m.docs[collection][i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Count(_ context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.docs[collection])), nil
}

func (m *Memory) CountFiltered(_ context.Context, collection string, filter map[string]any) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, doc := range m.docs[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func matches(doc bson.M, filter map[string]any) bool {
	for k, v := range filter {
		if fmt.Sprint(doc[k]) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	}
	return false
}

func equalValue(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func decodeAll(docs []bson.M, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice")
	}
	sliceVal := rv.Elem()
	elemType := sliceVal.Type().Elem()
	result := reflect.MakeSlice(sliceVal.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	sliceVal.Set(result)
	return nil
}
