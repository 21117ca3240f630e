package fixtures

// Collection maps normalized identifiers to records and remembers the order in which
// identifiers were first seen so listings stay deterministic.
type Collection[T any] struct {
	keys  []string
	items map[string]T
}

// BuildCollection indexes records by their normalized identifier, writing the normalized
// form back through setID. Records without an identifier are skipped. When two records
// normalize to the same identifier the later one wins and keeps the first one's position.
func BuildCollection[T any](records []T, idOf func(*T) any, setID func(*T, string)) *Collection[T] {
	c := &Collection[T]{
		keys:  make([]string, 0, len(records)),
		items: make(map[string]T, len(records)),
	}
	for i := range records {
		rec := records[i]
		id := NormalizeID(idOf(&rec))
		if id == "" {
			continue
		}
		setID(&rec, id)
		if _, exists := c.items[id]; !exists {
			c.keys = append(c.keys, id)
		}
		c.items[id] = rec
	}
	return c
}

// Get returns the record stored under an already-normalized id.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	rec, ok := c.items[id]
	return rec, ok
}

// Values returns the records in first-seen order.
func (c *Collection[T]) Values() []T {
	if c == nil {
		return nil
	}
	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Keys returns the normalized identifiers in first-seen order.
func (c *Collection[T]) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Resolve normalizes rawID and looks it up. The boolean is the not-found sentinel.
func Resolve[T any](c *Collection[T], rawID any) (T, bool) {
	return c.Get(NormalizeID(rawID))
}

// ResolvePtr is Resolve returning a pointer to a copy, or nil when absent.
func ResolvePtr[T any](c *Collection[T], rawID any) *T {
	rec, ok := Resolve(c, rawID)
	if !ok {
		return nil
	}
	return &rec
}

// ResolveAll resolves every id, dropping the ones that are missing.
func ResolveAll[T any](c *Collection[T], rawIDs []any) []T {
	out := make([]T, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if rec, ok := Resolve(c, raw); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Filter returns the records in order that satisfy keep.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
