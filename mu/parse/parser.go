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

// Package parse implements the textual S-expression front-end for mu_
// programs: a hand-rolled byte scanner over a grammar simple enough that
// text/scanner's identifier/number classification would only get in the
// way (atoms are opaque byte runs, not Go-flavored tokens).
package parse

import (
	"bufio"
	"bytes"
	"io"

	"github.com/BrickNumber5/mu/mu"
)

// isAtomByte reports whether b may appear inside an atom: anything but
// whitespace and the three punctuation bytes the grammar reserves.
func isAtomByte(b byte) bool {
	switch {
	case b >= 0x01 && b <= 0x20:
		return false
	case b == '(' || b == ')' || b == '.':
		return false
	case b == 0:
		return false
	default:
		return true
	}
}

func isWS(b byte) bool { return b >= 0x01 && b <= 0x20 }

// parser holds the single byte of lookahead this grammar ever needs.
type parser struct {
	ins *mu.Instance
	r   *bufio.Reader
}

// next returns the next input byte, or (0, false) at end of input. A
// literal NUL byte is end-of-input, indistinguishable from a real EOF.
func (p *parser) next() (byte, bool) {
	b, err := p.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == 0 {
		p.unread() // leave the NUL in place so every later read stops at it too
		return 0, false
	}
	return b, true
}

func (p *parser) unread() { _ = p.r.UnreadByte() }

func (p *parser) skipWS() {
	for {
		b, ok := p.next()
		if !ok {
			return
		}
		if !isWS(b) {
			p.unread()
			return
		}
	}
}

// A Reader parses a stream of expressions incrementally: each Read call
// consumes exactly one expression plus the whitespace before it, leaving
// the remaining input buffered for the next call. This is what an
// interactive read loop wants, where wrapping the input in a fresh
// buffered reader per expression would drop lookahead bytes on the floor.
type Reader struct {
	p parser
}

// NewReader returns a Reader that interns atoms into ins and consumes
// expressions from r.
func NewReader(ins *mu.Instance, r io.Reader) *Reader {
	return &Reader{p: parser{ins: ins, r: bufio.NewReader(r)}}
}

// Read parses the next expression. It returns io.EOF if the input (after
// skipping leading whitespace) contains no further expression; callers
// driving a read loop should treat that as a clean stop, not a
// malformed-input error.
//
// The parser is not required to report errors for malformed input:
// unbalanced or truncated input is handled leniently, producing the best
// value the partial structure supports, rather than failing.
func (r *Reader) Read() (mu.Value, error) {
	p := &r.p
	p.skipWS()
	if _, ok := p.next(); !ok {
		return mu.Nil, io.EOF
	}
	p.unread()
	return p.expr(), nil
}

// Parse reads one top-level expression from r, interning any atoms into
// ins, and returns it. See Reader.Read for the io.EOF and malformed-input
// contracts.
func Parse(ins *mu.Instance, r io.Reader) (mu.Value, error) {
	return NewReader(ins, r).Read()
}

// ParseYard parses one expression directly out of the yard byte range
// [off, off+n), the parse entry point the core's embedding interface
// describes: the embedder stages source text in the yard, then hands the
// parser its offset and length.
func ParseYard(ins *mu.Instance, off uint32, n int) mu.Value {
	b := ins.YardBytes(off, n)
	v, err := Parse(ins, bytes.NewReader(b))
	if err != nil {
		return mu.Nil
	}
	return v
}

// expr parses a single atom or list (grammar's `expr` production).
func (p *parser) expr() mu.Value {
	p.skipWS()
	b, ok := p.next()
	if !ok {
		return mu.Nil
	}
	if b == '(' {
		return p.listTail()
	}
	p.unread()
	return p.atom()
}

// listTail parses everything after an opening '(': the grammar's
// `list_tail` production.
func (p *parser) listTail() mu.Value {
	p.skipWS()
	b, ok := p.next()
	if !ok {
		return mu.Nil // truncated input: treat as if ')' were seen
	}
	switch b {
	case ')':
		return mu.Nil
	case '.':
		v := p.expr()
		p.skipWS()
		if b, ok := p.next(); !ok || b != ')' {
			if ok {
				p.unread()
			}
		}
		return v
	default:
		p.unread()
		head := p.expr()
		tail := p.listTail()
		return p.ins.Cons(head, tail)
	}
}

// atom parses a maximal run of atom bytes. A token made entirely of
// decimal digits reads as the atom whose numeric value is that number
// modulo 2^31, so that literals round-trip through the arithmetic
// builtins the way a reader expects ((~~add 2 3) is 5, and prints as 5);
// every other token is interned byte-for-byte.
func (p *parser) atom() mu.Value {
	var buf []byte
	for {
		b, ok := p.next()
		if !ok || !isAtomByte(b) {
			if ok {
				p.unread()
			}
			break
		}
		buf = append(buf, b)
	}
	if v, ok := numericAtom(buf); ok {
		return v
	}
	return p.ins.InternString(string(buf))
}

func numericAtom(tok []byte) (mu.Value, bool) {
	if len(tok) == 0 {
		return mu.Nil, false
	}
	var n uint32
	for _, b := range tok {
		if b < '0' || b > '9' {
			return mu.Nil, false
		}
		n = (n*10 + uint32(b-'0')) & 0x7FFFFFFF
	}
	return mu.Value(n), true
}
