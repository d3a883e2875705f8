package hashtable

import (
	"reflect"

	"github.com/katalvlaran/collections/list"
	"github.com/sirupsen/logrus"
)

// Table is a separate-chaining hash map. Each slot of the backing array heads
// a singly linked chain of entries; no two entries in one chain share a key.
//
// Capacity is always ≥ 1 and, after any resize, divisible by neither 2 nor 3.
type Table[K comparable, V any] struct {
	buckets []*list.Node[Entry[K, V]]
	size    int
	hash    func(K) int
	logger  logrus.FieldLogger
}

// New creates an empty table with the given options.
// Complexity: O(capacity)
func New[K comparable, V any](opts ...Option[K]) *Table[K, V] {
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, V]{
		buckets: make([]*list.Node[Entry[K, V]], o.capacity),
		hash:    o.hash,
		logger:  o.logger,
	}
}

// Get returns the value stored under key.
// Returns ErrNilKey for a nil key, ErrKeyNotFound when no entry matches.
// Complexity: O(1) expected, O(chain) worst case.
func (t *Table[K, V]) Get(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		t.report("Get", ErrNilKey)
		return zero, ErrNilKey
	}
	// walk the chain, always advancing on mismatch
	for node := t.buckets[t.index(key)]; node != nil; node = node.Next {
		if node.Data.Key == key {
			return node.Data.Value, nil
		}
	}

	return zero, ErrKeyNotFound
}

// Put stores value under key, replacing the value of an existing entry with
// an equal key. A resize check runs after every fresh insertion (never after
// a replacement). Returns ErrNilKey for a nil key; the table is untouched.
// Complexity: O(1) expected; O(n + capacity) when a resize triggers.
func (t *Table[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		t.report("Put", ErrNilKey)
		return ErrNilKey
	}
	if t.put(key, value) {
		t.maybeResize()
	}

	return nil
}

// put inserts or replaces without key validation, reporting whether a new
// entry was created. Resize reuses this path so keys rehash consistently.
func (t *Table[K, V]) put(key K, value V) bool {
	idx := t.index(key)
	head := t.buckets[idx]

	// 1. Empty slot: the new entry becomes the chain head.
	if head == nil {
		t.buckets[idx] = &list.Node[Entry[K, V]]{Data: Entry[K, V]{Key: key, Value: value}}
		t.size++

		return true
	}

	// 2. Scan the chain for an equal key, remembering the tail.
	node := head
	for {
		if node.Data.Key == key {
			node.Data.Value = value // replace in place
			return false
		}
		if node.Next == nil {
			break
		}
		node = node.Next
	}

	// 3. No match: append a fresh tail entry.
	node.Next = &list.Node[Entry[K, V]]{Data: Entry[K, V]{Key: key, Value: value}}
	t.size++

	return true
}

// ContainsKey reports whether an entry with an equal key exists.
// A nil key reports false (and logs when a logger is installed).
// Complexity: O(1) expected, O(chain) worst case.
func (t *Table[K, V]) ContainsKey(key K) bool {
	if isNilKey(key) {
		t.report("ContainsKey", ErrNilKey)
		return false
	}
	for node := t.buckets[t.index(key)]; node != nil; node = node.Next {
		if node.Data.Key == key {
			return true
		}
	}

	return false
}

// Remove unlinks the entry with an equal key, relinking its predecessor to
// its successor (or resetting the slot if it was the chain head). Reports
// whether an entry was removed; nil and absent keys report false.
// Complexity: O(1) expected, O(chain) worst case.
func (t *Table[K, V]) Remove(key K) bool {
	if isNilKey(key) {
		t.report("Remove", ErrNilKey)
		return false
	}
	idx := t.index(key)

	var prev *list.Node[Entry[K, V]]
	node := t.buckets[idx]
	for node != nil && node.Data.Key != key {
		prev = node
		node = node.Next
	}
	if node == nil {
		return false // no match in the chain
	}

	if prev != nil {
		prev.Next = node.Next
	} else {
		t.buckets[idx] = node.Next
	}
	node.Next = nil
	t.size--

	return true
}

// Size reports the number of live entries.
// Complexity: O(1)
func (t *Table[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the table holds no entries.
// Complexity: O(1)
func (t *Table[K, V]) IsEmpty() bool {
	return t.size <= 0
}

// Capacity reports the current slot count.
// Complexity: O(1)
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// index reduces the key's hash to a non-negative slot index.
func (t *Table[K, V]) index(key K) int {
	idx := t.hash(key) % len(t.buckets)
	if idx < 0 {
		idx = -idx
	}

	return idx
}

// maybeResize grows the table once the load factor is exceeded.
//
// The new capacity starts at capacity*ResizeFactor and is incremented until
// divisible by neither 2 nor 3. That accepts composites like 25 or 35 — the
// rule guarantees coprimality with 2 and 3, not primality, and is preserved
// exactly so resize thresholds stay reproducible.
//
// Live chain heads are staged in a list.Singly, the slot array is
// reallocated, and every entry re-enters through put so it rehashes to its
// new slot; the size counter is compensated per re-insertion so the rebuild
// leaves Size() unchanged.
func (t *Table[K, V]) maybeResize() {
	if float64(t.size)/float64(len(t.buckets)) <= LoadFactor {
		return
	}

	next := len(t.buckets) * ResizeFactor
	for next%2 == 0 || next%3 == 0 {
		next++
	}

	staged := list.NewSingly[*list.Node[Entry[K, V]]]()
	for _, head := range t.buckets {
		if head != nil {
			staged.InsertEnd(head)
		}
	}

	t.buckets = make([]*list.Node[Entry[K, V]], next)
	for chain := staged.Head(); chain != nil; chain = chain.Next {
		for node := chain.Data; node != nil; node = node.Next {
			t.put(node.Data.Key, node.Data.Value)
			t.size-- // re-insertion must not inflate the live count
		}
	}
}

// report logs a rejected operation when a logger is installed.
// Rejections always surface as sentinel results regardless.
func (t *Table[K, V]) report(op string, err error) {
	if t.logger != nil {
		t.logger.WithField("op", op).Warn(err)
	}
}

// isNilKey reports whether key is the absent marker. Only pointer-shaped
// kinds can be nil; comparable value kinds always pass.
func isNilKey[K comparable](key K) bool {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}
