package list

// Singly is a head/tail singly linked list.
//
// The tail pointer makes InsertEnd O(1); removal is only supported at the
// front because links carry no back pointers.
type Singly[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// NewSingly creates an empty singly linked list.
// Complexity: O(1)
func NewSingly[T any]() *Singly[T] {
	return &Singly[T]{}
}

// InsertFront prepends value as the new head.
// Complexity: O(1)
func (l *Singly[T]) InsertFront(value T) {
	node := &Node[T]{Data: value, Next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.size++
}

// InsertEnd appends value as the new tail.
// Complexity: O(1)
func (l *Singly[T]) InsertEnd(value T) {
	node := &Node[T]{Data: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.Next = node
	}
	l.tail = node
	l.size++
}

// RemoveFront unlinks and returns the head element.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *Singly[T]) RemoveFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	node := l.head
	l.head = node.Next
	if l.head == nil {
		l.tail = nil
	}
	node.Next = nil // detach so the old head cannot reach the live list
	l.size--

	return node.Data, nil
}

// ElementAt returns the element at index i, counted from the head.
// Returns ErrIndexOutOfRange if i is negative or ≥ Size().
// Complexity: O(n)
func (l *Singly[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	node := l.head
	for ; i > 0; i-- {
		node = node.Next
	}

	return node.Data, nil
}

// Head exposes the first chain link, or nil when the list is empty.
// The caller must not relink nodes it does not own.
// Complexity: O(1)
func (l *Singly[T]) Head() *Node[T] {
	return l.head
}

// Values returns a fresh slice of all elements in head-to-tail order.
// Complexity: O(n)
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for node := l.head; node != nil; node = node.Next {
		out = append(out, node.Data)
	}

	return out
}

// Size reports the number of elements.
// Complexity: O(1)
func (l *Singly[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
// Complexity: O(1)
func (l *Singly[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear drops every element, leaving an empty list.
// Complexity: O(1)
func (l *Singly[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
