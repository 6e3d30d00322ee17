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

const (
	defaultCellCount = 4096 // initial cons-heap capacity, in cells
	defaultYardSize  = 4096 // initial string-yard capacity, in bytes
)

// Option configures an Instance at construction time.
type Option func(*Instance) error

// MaxCells bounds the cons heap to n cells (n*8 bytes). Exceeding it
// during Cons or Collect is heap exhaustion: Eval recovers the panic and
// returns a wrapped error rather than silently growing forever. Zero (the
// default) leaves the heap bounded only by host memory, in which case
// allocation never fails.
func MaxCells(n int) Option {
	return func(i *Instance) error {
		i.maxCellBytes = n * 8
		return nil
	}
}

// InitialCells reserves capacity for n cons cells up front, avoiding
// reallocation churn for programs with a known working-set size.
func InitialCells(n int) Option {
	return func(i *Instance) error {
		if n > 0 {
			i.cells = make([]Value, 0, n*2)
		}
		return nil
	}
}

// InitialYardSize reserves capacity for n bytes in the string yard.
func InitialYardSize(n int) Option {
	return func(i *Instance) error {
		if n > 0 {
			i.yard = make([]byte, 0, n)
		}
		return nil
	}
}

// Instance owns one interpreter's full state: the cons heap, the string
// yard, the internment table, and the system-operation table. It is not
// safe for concurrent use.
type Instance struct {
	cells        []Value // cons heap: 2 Values (head, tail) per cell
	maxCellBytes int     // 0 = unbounded

	yard []byte // append-only string buffer

	records  []internRecord   // internment table, index == record number
	byName   map[string]Value // byte-content -> atom, mirrors records for O(1) interning
	sysOps   map[uint16]SysOp // opcode -> handler
	sysNames []Value          // opcode -> name atom, index 0 unused
	nextOp   uint16

	builtinAtoms [builtinCount]Value // pre-interned builtin names
}

// New creates an interpreter instance with the builtin names pre-interned
// and opcode 0 of the system-operation table pre-registered.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		byName: make(map[string]Value),
		sysOps: make(map[uint16]SysOp),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.cells == nil {
		i.cells = make([]Value, 0, defaultCellCount*2)
	}
	// reserve the [0, 8) slot: offset 0 must never be a valid cell so that
	// Value(0) is unambiguously Nil, and so that Anchor is never 0 (the
	// collector's shift would otherwise land cells on the reserved slot).
	i.cells = append(i.cells, 0, 0)
	if i.yard == nil {
		i.yard = make([]byte, 0, defaultYardSize)
	}
	i.internBuiltins()
	i.sysNames = make([]Value, 1, 8)
	i.registerOpcodeZero()
	return i, nil
}
