/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package table implements the hash-table primitive the VM builds its
// globals table and its interned-string set on top of. It is treated as an
// external collaborator by the rest of Ember: callers only ever see Init (via
// New), Insert, Get, Delete ("drop"), FindString and Free.
//
// The table is generic over its stored value type so that the same
// implementation backs both the globals table (string name -> Value) and the
// interned-string set (string content -> the canonical *object.String),
// without pkg/table needing to import either pkg/bytecode or pkg/object.
package table

// Table is a hash table keyed by string content. The zero value is not
// ready to use; call New.
type Table[V any] struct {
	entries map[string]V
}

// New returns an initialized, empty Table. This is the primitive's "init"
// operation.
func New[V any]() *Table[V] {
	return &Table[V]{entries: make(map[string]V)}
}

// Insert adds or overwrites the entry for key. It returns true if key was not
// already present (a fresh insertion), false if it replaced an existing
// entry. OP_SET_GLOBAL relies on this exact convention: the VM calls Insert
// speculatively and, when it reports a fresh insertion, knows the variable
// did not already exist and rolls the insertion back.
func (t *Table[V]) Insert(key string, value V) bool {
	_, existed := t.entries[key]
	t.entries[key] = value
	return !existed
}

// Get looks up key and reports whether it was found.
func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Delete removes key's entry, if any. This is the primitive's "drop"
// operation.
func (t *Table[V]) Delete(key string) {
	delete(t.entries, key)
}

// FindString looks up an entry by raw string content, the operation the
// string interner uses to check for an existing object before allocating a
// new one. hash is accepted for parity with the source design (which hashes
// the candidate bytes before probing its own table); Go's map already hashes
// the key internally, so it is not consulted here.
func (t *Table[V]) FindString(chars string, hash uint32) (V, bool) {
	return t.Get(chars)
}

// Free releases every entry in the table. This is the primitive's "free"
// operation; the Table itself remains usable afterwards.
func (t *Table[V]) Free() {
	t.entries = make(map[string]V)
}

// Len returns the number of entries currently stored.
func (t *Table[V]) Len() int {
	return len(t.entries)
}
