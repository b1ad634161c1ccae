// Package state holds the client-side entity caches: in-memory mirrors
// of the remote collections, optimistically updated. Every cached item
// is tagged with its origin so callers can tell reconciled state from
// local fallback writes that never reached the service.
package state

import "sync"

type Origin int

const (
	// OriginAuthoritative marks a record confirmed by the remote store.
	OriginAuthoritative Origin = iota
	// OriginPendingLocal marks an optimistic record written after a
	// failed remote call. It diverges from server state until the next
	// full refresh.
	OriginPendingLocal
)

func (o Origin) String() string {
	if o == OriginPendingLocal {
		return "pending-local"
	}
	return "authoritative"
}

// Record pairs a cached entity with its origin tag.
type Record[T any] struct {
	Value  T
	Origin Origin
}

// Collection is a cache of one entity type keyed by a numeric id.
// Insertion order is preserved so list views stay stable across
// upserts.
type Collection[T any] struct {
	mu    sync.Mutex
	items []Record[T]
	id    func(T) int64
}

func NewCollection[T any](id func(T) int64) *Collection[T] {
	return &Collection[T]{id: id}
}

// ReplaceAll swaps the whole cache for a freshly fetched authoritative
// list, discarding any pending-local records.
func (c *Collection[T]) ReplaceAll(values []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]Record[T], 0, len(values))
	for _, v := range values {
		c.items = append(c.items, Record[T]{Value: v, Origin: OriginAuthoritative})
	}
}

// Upsert inserts or overwrites the record with v's id. Overwriting also
// replaces the origin tag, so an authoritative result clears a previous
// pending-local placeholder for the same id.
func (c *Collection[T]) Upsert(v T, origin Origin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(v)
	for i := range c.items {
		if c.id(c.items[i].Value) == id {
			c.items[i] = Record[T]{Value: v, Origin: origin}
			return
		}
	}
	c.items = append(c.items, Record[T]{Value: v, Origin: origin})
}

// All returns the cached values in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, r := range c.items {
		out = append(out, r.Value)
	}
	return out
}

// Records returns the cached values with their origin tags.
func (c *Collection[T]) Records() []Record[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record[T], len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.items {
		if c.id(r.Value) == id {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) FindRecord(id int64) (Record[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.items {
		if c.id(r.Value) == id {
			return r, true
		}
	}
	return Record[T]{}, false
}

// NextLocalID mints a placeholder id for an optimistic record: one past
// the highest id currently cached. Valid only until the authoritative
// id arrives or the mutation is abandoned.
func (c *Collection[T]) NextLocalID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var max int64
	for _, r := range c.items {
		if id := c.id(r.Value); id > max {
			max = id
		}
	}
	return max + 1
}

// Mutate applies fn to the cached value with the given id, in place.
// The origin tag is left untouched.
func (c *Collection[T]) Mutate(id int64, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i].Value) == id {
			fn(&c.items[i].Value)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
