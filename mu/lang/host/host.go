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

// Package host provides utility functions and types that enable embedding a
// mu_ interpreter behind textual input and output: a readable-form printer
// built on the core's yard accessors, and a read-eval-print loop driver.
//
// Everything here is layered on the mu package's public interface; the
// printer in particular is exactly the "direct read access to the yard
// bytes" client the core's embedding contract anticipates.
package host

import (
	"io"
	"strconv"

	"github.com/BrickNumber5/mu/mu"
)

// AppendValue appends the readable form of v to b and returns the extended
// buffer, in the same append-and-reuse style as strconv.AppendInt.
//
// Atoms whose value resolves to an interned name print as that name; all
// other atoms print as their decimal numeric value, which for atoms
// produced by arithmetic is the reading a user expects. Cons cells print
// as parenthesized lists with a dotted tail when the final tail is a
// non-nil atom. Values are assumed acyclic, which holds for anything the
// evaluator or parser produces.
func AppendValue(i *mu.Instance, b []byte, v mu.Value) []byte {
	if v.IsAtom() {
		return appendAtom(i, b, v)
	}
	b = append(b, '(')
	for {
		b = AppendValue(i, b, i.Head(v))
		t := i.Tail(v)
		if t.IsNil() {
			break
		}
		if t.IsAtom() {
			b = append(b, ' ', '.', ' ')
			b = appendAtom(i, b, t)
			break
		}
		b = append(b, ' ')
		v = t
	}
	return append(b, ')')
}

func appendAtom(i *mu.Instance, b []byte, v mu.Value) []byte {
	if v.IsNil() {
		return append(b, '(', ')')
	}
	if name, ok := i.NameOf(v); ok {
		return append(b, name...)
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// String returns the readable form of v.
func String(i *mu.Instance, v mu.Value) string {
	return string(AppendValue(i, nil, v))
}

// Print writes the readable form of v to w.
func Print(i *mu.Instance, v mu.Value, w io.Writer) error {
	_, err := w.Write(AppendValue(i, nil, v))
	return err
}
