// Package hashtable: entry type, tuning constants, sentinel errors,
// and functional options.
package hashtable

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/sirupsen/logrus"
)

// Tuning constants for table growth.
const (
	// DefaultCapacity is the slot count of a freshly constructed table.
	DefaultCapacity = 5

	// LoadFactor is the occupancy ratio above which the table resizes.
	LoadFactor = 0.70

	// ResizeFactor multiplies the capacity before the coprime adjustment.
	ResizeFactor = 2
)

// Sentinel errors for table operations.
var (
	// ErrNilKey indicates a nil key was supplied to a public operation.
	ErrNilKey = errors.New("hashtable: key is nil")

	// ErrKeyNotFound indicates Get found no entry for the key.
	ErrKeyNotFound = errors.New("hashtable: key not found")
)

// Entry is a key/value pair carried by a bucket chain link.
// Identity is the key; the value slot is mutated in place on replacement.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Option configures a Table at construction time.
type Option[K comparable] func(*options[K])

// options holds construction parameters gathered from Option values.
type options[K comparable] struct {
	capacity int
	hash     func(K) int
	logger   logrus.FieldLogger
}

// defaultOptions returns the baseline configuration:
// DefaultCapacity slots, FNV-1a hashing, no logger.
func defaultOptions[K comparable]() options[K] {
	return options[K]{
		capacity: DefaultCapacity,
		hash:     defaultHash[K],
		logger:   nil,
	}
}

// WithCapacity sets the initial slot count. Values below 1 are ignored and
// the default is kept, so the table array is never null-length.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithHashFunc replaces the default hasher. The result may be negative;
// the table reduces it mod capacity and negates if needed.
func WithHashFunc[K comparable](fn func(K) int) Option[K] {
	return func(o *options[K]) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// WithLogger installs a logger that reports rejected operations (nil keys).
// Without one, rejections are still returned as errors but never logged.
func WithLogger[K comparable](logger logrus.FieldLogger) Option[K] {
	return func(o *options[K]) {
		o.logger = logger
	}
}

// defaultHash computes FNV-1a over the key's formatted representation.
// Adequate for correctness on any key type; callers with hot paths should
// supply a type-aware hasher via WithHashFunc.
func defaultHash[K comparable](key K) int {
	h := fnv.New64a()
	_, _ = h.Write(fmt.Appendf(nil, "%v", key))

	return int(h.Sum64())
}
