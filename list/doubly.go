package list

// Doubly is a symmetric doubly linked list with O(1) insertion and removal
// at both ends. Tree traversals in bst use it as their result carrier.
type Doubly[T any] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
	size int
}

// NewDoubly creates an empty doubly linked list.
// Complexity: O(1)
func NewDoubly[T any]() *Doubly[T] {
	return &Doubly[T]{}
}

// InsertFront prepends value as the new head.
// Complexity: O(1)
func (l *Doubly[T]) InsertFront(value T) {
	node := &doublyNode[T]{data: value, next: l.head}
	if l.head == nil {
		l.tail = node
	} else {
		l.head.prev = node
	}
	l.head = node
	l.size++
}

// InsertEnd appends value as the new tail.
// Complexity: O(1)
func (l *Doubly[T]) InsertEnd(value T) {
	node := &doublyNode[T]{data: value, prev: l.tail}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

// RemoveFront unlinks and returns the head element.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *Doubly[T]) RemoveFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	node.next = nil
	l.size--

	return node.data, nil
}

// RemoveEnd unlinks and returns the tail element.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *Doubly[T]) RemoveEnd() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	node := l.tail
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	node.prev = nil
	l.size--

	return node.data, nil
}

// Front returns the head element without removing it.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *Doubly[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.data, nil
}

// Back returns the tail element without removing it.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *Doubly[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.data, nil
}

// Values returns a fresh slice of all elements in head-to-tail order.
// Complexity: O(n)
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for node := l.head; node != nil; node = node.next {
		out = append(out, node.data)
	}

	return out
}

// Size reports the number of elements.
// Complexity: O(1)
func (l *Doubly[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
// Complexity: O(1)
func (l *Doubly[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear drops every element, leaving an empty list.
// Complexity: O(1)
func (l *Doubly[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
