// This file is part of mu_ - https://github.com/BrickNumber5/mu_
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mu

import "github.com/pkg/errors"

// errHeapExhausted is panicked by grow when a MaxCells bound is in effect
// and would be exceeded. Eval recovers it at its top-level entry point and
// turns it into a wrapped error.
var errHeapExhausted = errors.New("mu: cons heap exhausted")

// cellStride is the byte size of one cons cell: a head Value at [-v, -v+4)
// and a tail Value at [-v+4, -v+8).
const cellStride = 8

// consTop returns the current top of the cons heap, a byte offset that is
// always a non-negative multiple of 8. The heap reserves offset 0 so that
// every live cell satisfies -v >= 8; the first cons allocated by an
// Instance therefore lands at offset 8.
func (i *Instance) consTop() int { return len(i.cells) * 4 }

// grow appends one cell's worth of storage and returns its byte offset.
// The [0, 8) slot is reserved at construction (see New), so the returned
// offset is always at least 8.
func (i *Instance) grow() int {
	off := i.consTop()
	if i.maxCellBytes != 0 && off+cellStride > i.maxCellBytes {
		panic(errHeapExhausted)
	}
	i.cells = append(i.cells, 0, 0)
	return off
}

func (i *Instance) cellIndex(v Value) int { return v.offset() / 4 }

// Cons allocates a new cell with the given head and tail and returns a
// reference to it. Cons never fails from the caller's perspective; running
// out of room panics with errHeapExhausted, caught by Eval.
func (i *Instance) Cons(h, t Value) Value {
	off := i.grow()
	idx := off / 4
	i.cells[idx] = h
	i.cells[idx+1] = t
	return cellRef(off)
}

// Head returns the head of the cell v references. Calling Head on a
// non-cons value is embedder misuse: the result is bounded but otherwise
// unspecified, here Nil.
func (i *Instance) Head(v Value) Value {
	if !v.IsCons() {
		return Nil
	}
	idx := i.cellIndex(v)
	if idx < 0 || idx+1 >= len(i.cells) {
		return Nil
	}
	return i.cells[idx]
}

// Tail returns the tail of the cell v references. See Head for the
// embedder-misuse case.
func (i *Instance) Tail(v Value) Value {
	if !v.IsCons() {
		return Nil
	}
	idx := i.cellIndex(v)
	if idx < 0 || idx+1 >= len(i.cells) {
		return Nil
	}
	return i.cells[idx+1]
}

// Anchor returns a snapshot of the current heap top suitable for a later
// Collect call.
func (i *Instance) Anchor() int { return i.consTop() }

// Collect compacts the cons heap, reclaiming every cell above anchor except
// those reachable from preserve, and returns the new reference to the
// preserved subgraph.
//
// Cells below anchor are never inspected or moved. Sharing among cells
// reachable from preserve is retained: a cell visited through two
// different paths is copied exactly once, via the forwarding-pair check.
//
// The copy phase rebuilds the preserved subgraph above the entry heap top
// (anchor2), pre-adjusting each new reference by the shift distance; the
// shift phase then moves the copied byte range [anchor2, cons_top) down to
// [anchor, anchor+(cons_top-anchor2)) and truncates the heap there.
func (i *Instance) Collect(preserve Value, anchor int) Value {
	anchor2 := i.consTop()

	var copyValue func(Value) Value
	copyValue = func(v Value) Value {
		// anchor is one-past-end of the pinned region, so a cell whose
		// offset equals anchor is the first collectible cell, not the last
		// pinned one.
		if v.IsAtom() || v.offset() < anchor {
			return v
		}
		idx := i.cellIndex(v)
		h0, t0 := i.cells[idx], i.cells[idx+1]
		if h0 == forwardSentinel {
			return t0 // already forwarded; t0 holds the cached new reference
		}
		newHead := copyValue(h0)
		newTail := copyValue(t0)
		newOff := i.grow()
		newIdx := newOff / 4
		i.cells[newIdx] = newHead
		i.cells[newIdx+1] = newTail
		delta := Value(anchor2 - anchor)
		adjusted := cellRef(newOff) + delta
		i.cells[idx] = forwardSentinel
		i.cells[idx+1] = adjusted
		return adjusted
	}

	newRoot := copyValue(preserve)

	top := i.consTop()
	shiftLen := (top - anchor2) / 4 // in Value-slice elements
	srcStart := anchor2 / 4
	dstStart := anchor / 4
	copy(i.cells[dstStart:dstStart+shiftLen], i.cells[srcStart:srcStart+shiftLen])
	i.cells = i.cells[:dstStart+shiftLen]

	return newRoot
}
