// Package memstore is an in-memory stand-in for one collection of the
// document store, used by tests. It implements the subset of filter and
// update verbs the repositories actually issue: dotted-path and $or
// filters, $set, positional $addToSet with set equality, and $pull scoped
// by $[ident] array filters. Documents are held in canonical bson form so
// equality behaves like the real store's.
package memstore

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateCall records one UpdateOne invocation for assertions on filter and
// update shapes.
type UpdateCall struct {
	Filter       bson.M
	Update       bson.M
	ArrayFilters []bson.M
}

type Store struct {
	mu sync.Mutex

	// Docs holds the collection's documents in canonical bson form.
	Docs []bson.M

	// Err, when set, is returned by every operation.
	Err error

	// Updates records every UpdateOne call in order.
	Updates []UpdateCall
}

func New() *Store {
	return &Store{}
}

func (s *Store) Find(ctx context.Context, filter, projection bson.M) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []bson.M
	for _, doc := range s.Docs {
		if matches(doc, filter) {
			out = append(out, project(doc, projection, filter))
		}
	}
	return out, nil
}

func (s *Store) FindOne(ctx context.Context, filter, projection bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, doc := range s.Docs {
		if matches(doc, filter) {
			return project(doc, projection, filter), nil
		}
	}
	return nil, nil
}

func (s *Store) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return primitive.NilObjectID, s.Err
	}
	m := canonDoc(doc)
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	s.Docs = append(s.Docs, m)
	return id, nil
}

func (s *Store) UpdateOne(ctx context.Context, filter, update bson.M, arrayFilters ...bson.M) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Updates = append(s.Updates, UpdateCall{Filter: filter, Update: update, ArrayFilters: arrayFilters})
	for _, doc := range s.Docs {
		if !matches(doc, filter) {
			continue
		}
		modified := applyUpdate(doc, filter, update, arrayFilters)
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (s *Store) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i, doc := range s.Docs {
		if matches(doc, filter) {
			s.Docs = append(s.Docs[:i], s.Docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// canonDoc round-trips a document through bson so nested structs and
// slices take the same dynamic types the driver would decode.
func canonDoc(doc interface{}) bson.M {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	return m
}

func canonValue(v interface{}) interface{} {
	return canonDoc(bson.M{"v": v})["v"]
}

func equal(a, b interface{}) bool {
	return reflect.DeepEqual(canonValue(a), canonValue(b))
}

// lookup resolves a dotted path, descending into arrays the way the store
// does: an array segment yields the candidate values of every element.
func lookup(v interface{}, path []string) []interface{} {
	if len(path) == 0 {
		return []interface{}{v}
	}
	switch t := v.(type) {
	case bson.M:
		next, ok := t[path[0]]
		if !ok {
			return nil
		}
		return lookup(next, path[1:])
	case bson.A:
		var out []interface{}
		for _, el := range t {
			out = append(out, lookup(el, path)...)
		}
		return out
	}
	return nil
}

func pathMatches(doc bson.M, path string, want interface{}) bool {
	for _, got := range lookup(doc, strings.Split(path, ".")) {
		if equal(got, want) {
			return true
		}
	}
	return false
}

func matches(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		if k == "$or" {
			ors, ok := want.([]bson.M)
			if !ok {
				return false
			}
			any := false
			for _, or := range ors {
				if matches(doc, or) {
					any = true
					break
				}
			}
			if !any {
				return false
			}
			continue
		}
		if !pathMatches(doc, k, want) {
			return false
		}
	}
	return true
}

func applyUpdate(doc bson.M, filter, update bson.M, arrayFilters []bson.M) int64 {
	var modified int64
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			cv := canonValue(v)
			if !reflect.DeepEqual(doc[k], cv) {
				doc[k] = cv
				modified = 1
			}
		}
	}
	if add, ok := update["$addToSet"].(bson.M); ok {
		for k, v := range add {
			if applyAddToSet(doc, filter, k, v) {
				modified = 1
			}
		}
	}
	if pull, ok := update["$pull"].(bson.M); ok {
		for k, cond := range pull {
			if applyPull(doc, k, cond, arrayFilters) {
				modified = 1
			}
		}
	}
	return modified
}

// applyAddToSet handles keys of the form "field.$.sub". The positional
// placeholder resolves to the first field element matched by the filter's
// field-scoped clauses. Returns true if an element was appended.
func applyAddToSet(doc bson.M, filter bson.M, key string, value interface{}) bool {
	field, sub, ok := strings.Cut(key, ".$.")
	if !ok {
		return false
	}
	idx := positionalIndex(doc, field, filter)
	if idx < 0 {
		return false
	}
	arr, _ := doc[field].(bson.A)
	el, _ := arr[idx].(bson.M)
	if el == nil {
		return false
	}
	items, _ := el[sub].(bson.A)
	cv := canonValue(value)
	for _, it := range items {
		if reflect.DeepEqual(it, cv) {
			return false
		}
	}
	el[sub] = append(items, cv)
	return true
}

// applyPull handles keys of the form "field.$[ident].sub", removing the
// elements of sub matching cond from every field element that satisfies
// the ident-bound array filters. Returns true if anything was removed.
func applyPull(doc bson.M, key string, cond interface{}, arrayFilters []bson.M) bool {
	field, rest, ok := strings.Cut(key, ".$[")
	if !ok {
		return false
	}
	ident, sub, ok := strings.Cut(rest, "].")
	if !ok {
		return false
	}
	condM, _ := cond.(bson.M)
	arr, _ := doc[field].(bson.A)
	removed := false
	for _, elv := range arr {
		el, _ := elv.(bson.M)
		if el == nil || !identMatches(el, ident, arrayFilters) {
			continue
		}
		items, _ := el[sub].(bson.A)
		kept := items[:0:0]
		for _, it := range items {
			itM, _ := it.(bson.M)
			if itM != nil && subMatches(itM, condM) {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		el[sub] = kept
	}
	return removed
}

func positionalIndex(doc bson.M, field string, filter bson.M) int {
	arr, _ := doc[field].(bson.A)
	for i, elv := range arr {
		el, _ := elv.(bson.M)
		if el == nil {
			continue
		}
		ok := true
		for fk, fv := range filter {
			if !strings.HasPrefix(fk, field+".") {
				continue
			}
			if !pathMatches(el, strings.TrimPrefix(fk, field+"."), fv) {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

func identMatches(el bson.M, ident string, arrayFilters []bson.M) bool {
	for _, af := range arrayFilters {
		for k, want := range af {
			if !strings.HasPrefix(k, ident+".") {
				continue
			}
			if !pathMatches(el, strings.TrimPrefix(k, ident+"."), want) {
				return false
			}
		}
	}
	return true
}

func subMatches(doc bson.M, cond bson.M) bool {
	for k, want := range cond {
		got, ok := doc[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

// project supports the projections the repositories use: exclusions like
// {"_id": 0}, inclusions like {"_id": 1}, and the positional
// {"field.$": 1} which keeps only the first field element matched by the
// filter. The returned document is a deep copy.
func project(doc bson.M, projection, filter bson.M) bson.M {
	out := canonDoc(doc)
	if projection == nil {
		return out
	}

	for k, v := range projection {
		if strings.HasSuffix(k, ".$") && isOne(v) {
			field := strings.TrimSuffix(k, ".$")
			res := bson.M{}
			if idx := positionalIndex(out, field, filter); idx >= 0 {
				arr, _ := out[field].(bson.A)
				res[field] = bson.A{arr[idx]}
			}
			return res
		}
	}

	var includes []string
	for k, v := range projection {
		if isOne(v) {
			includes = append(includes, k)
		}
	}
	if len(includes) > 0 {
		res := bson.M{}
		for _, k := range includes {
			if v, ok := out[k]; ok {
				res[k] = v
			}
		}
		return res
	}

	for k, v := range projection {
		if !isOne(v) {
			delete(out, k)
		}
	}
	return out
}

func isOne(v interface{}) bool {
	n, ok := v.(int)
	return ok && n != 0
}
