/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package object

import "github.com/emberlang/ember/pkg/table"

// Heap is the intrusive singly-linked list of every heap Object allocated
// during a VM's lifetime, plus the interned-string set built on top of it.
// The VM owns exactly one Heap for its whole lifetime (spec: "the VM
// exclusively owns the object list"); a compile that fails mid-way still
// leaves whatever strings it already allocated for constants on the Heap —
// they are only released in bulk, by Release.
type Heap struct {
	head    Object
	strings *table.Table[*String]
}

// NewHeap returns an empty Heap, ready to intern strings into.
func NewHeap() *Heap {
	return &Heap{strings: table.New[*String]()}
}

// track links o into the intrusive object list. Every allocator in this
// package must call it exactly once per new Object.
func (h *Heap) track(o Object) {
	o.setNext(h.head)
	h.head = o
}

// InternString returns the canonical String object for chars: an existing one
// if the Heap already interned equal content, otherwise a freshly allocated
// one that is tracked and inserted into the intern set. This is allocate_str
// from the source design: find_str, and only allocate (+ insert) on a miss.
func (h *Heap) InternString(chars string) *String {
	hash := hashString(chars)
	if existing, ok := h.strings.FindString(chars, hash); ok {
		return existing
	}

	s := &String{Chars: chars, Hash: hash}
	h.track(s)
	h.strings.Insert(chars, s)
	return s
}

// Concat interns the concatenation of a and b as a single new String (or
// returns the existing canonical one for that content), without ever
// materializing an un-interned intermediate object kept alive past this call.
func (h *Heap) Concat(a, b *String) *String {
	return h.InternString(a.Chars + b.Chars)
}

// Release performs the VM's bulk release of every tracked Object: it drops
// the Heap's own references, letting the garbage collector reclaim anything
// nothing else still points to, and empties the interned-string set. This
// corresponds to free_vm's walk-and-free of vm.objects plus free_hash_table
// of vm.strings; Ember has no manual memory management, so bulk release is
// just "stop holding on".
func (h *Heap) Release() {
	h.head = nil
	h.strings.Free()
}

// Count returns the number of Objects currently tracked by the Heap: every
// interned string and concatenation result not yet dropped by Release.
func (h *Heap) Count() int {
	n := 0
	for o := h.head; o != nil; o = o.next() {
		n++
	}
	return n
}
