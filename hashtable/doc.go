// Package hashtable implements a separate-chaining hash map with dynamic,
// load-factor driven resizing.
//
// What
//
//   - Table[K, V]: Get, Put, ContainsKey, Remove, Size, IsEmpty, Capacity.
//   - Collisions are resolved by chaining: each table slot heads a singly
//     linked chain of entries (list.Node links), appended at the tail on
//     insert and relinked on unlink.
//   - Once Size()/Capacity() exceeds LoadFactor (0.70), capacity doubles and
//     is then incremented until it is divisible by neither 2 nor 3, and every
//     live entry is rehashed into the new slot array.
//
// Why
//
//   - A chained table degrades gracefully under collision bursts: worst case
//     is a longer chain walk, never a probe cascade.
//   - The coprime-with-2-and-3 capacity rule is a cheap stand-in for prime
//     sizing. It deliberately accepts composites such as 25 or 35 — the rule
//     is part of the contract, so resize thresholds stay reproducible, and it
//     is NOT a primality guarantee.
//
// Hashing
//
//	The slot index is hash(key) mod capacity, negated if negative. There is
//	no secondary mixing: distribution quality is entirely the hash function's
//	problem, and a poor one clusters chains. The default hasher is FNV-1a
//	over the key's formatted representation; supply WithHashFunc for
//	anything performance- or distribution-sensitive.
//
// Complexity (n = entries, c = capacity)
//
//   - Get/Put/ContainsKey/Remove: O(1) expected, O(n) worst case (one chain)
//   - Resize: O(n + c), synchronous, inside the triggering Put
//
// Usage
//
//	tbl := hashtable.New[string, int]()
//	_ = tbl.Put("answer", 42)
//	v, err := tbl.Get("answer") // 42, nil
//
// Errors
//
//   - ErrNilKey       if a nil key (pointer, interface or channel kind) is
//     supplied to any operation; the table state is never touched.
//   - ErrKeyNotFound  from Get when no entry matches the key.
//
// Failed operations degrade to safe defaults (zero value, false, no-op) and,
// when WithLogger is set, report the rejection through the logger.
// Single-threaded use only; wrap externally for concurrent access.
package hashtable
