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

// Value is the uniform 32-bit word mu_ operates on: a signed integer in
// which the sign and magnitude jointly encode nil, an atom, or a cons cell
// reference.
type Value int32

// Nil is the empty list / terminator value.
const Nil Value = 0

// forwardSentinel marks a head slot that has already been copied by the
// collector: the bit pattern 0x80000000, which as a signed
// 32-bit word is the minimum representable value. Its production as an
// ordinary head word outside of a forwarding context signals imminent heap
// exhaustion; see Collect.
const forwardSentinel Value = -1 << 31

// internAtomBit is toggled into interned-string atom values to push them
// into a sparse range unlikely to collide with small numeric atoms produced
// by arithmetic.
const internAtomBit int32 = 0x20000000

// IsNil reports whether v is the empty list.
func (v Value) IsNil() bool { return v == Nil }

// IsAtom reports whether v is an atom (a non-negative value).
func (v Value) IsAtom() bool { return v >= 0 }

// IsCons reports whether v addresses a cons cell.
func (v Value) IsCons() bool { return v < 0 }

// offset returns the byte offset of the cons cell v addresses. Only valid
// when v.IsCons().
func (v Value) offset() int { return -int(v) }

// cellRef builds the Value referencing the cons cell at the given byte
// offset. offset must be a positive multiple of 8.
func cellRef(offset int) Value { return Value(-offset) }
