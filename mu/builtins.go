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

// mu_ evaluator builtins, indexed 0..16 in definition order. Record 0
// ("()") is the quote literal; records 1..16 are the sixteen pre-interned
// names, in the order the dispatch arithmetic depends on.
const (
	BQuote = iota // ()      quote: return first argument unevaluated
	BTrue         // ~~true  evaluate and return first argument
	BFalse        // ~~false evaluate and return second argument
	BHead         // ~~head
	BTail         // ~~tail
	BCons         // ~~cons
	BLte          // ~~lte
	BEq           // ~~eq
	BAdd          // ~~add
	BSub          // ~~sub
	BAnd          // ~~and
	BOr           // ~~or
	BNot          // ~~not
	BSl           // ~~sl
	BSr           // ~~sr
	BEnv          // ~~env
	BSys          // ~~sys

	builtinCount
)

// builtinNames holds the textual spelling of each builtin in definition
// order. Index 0 is "()", the quote literal.
var builtinNames = [builtinCount]string{
	"()",
	"~~true", "~~false",
	"~~head", "~~tail", "~~cons",
	"~~lte", "~~eq",
	"~~add", "~~sub", "~~and", "~~or", "~~not", "~~sl", "~~sr",
	"~~env", "~~sys",
}

// internBuiltins pre-populates the internment table with the 17 builtin
// names so that each name's record index equals its builtin index: record
// byte offset k*8 XOR the bit-29 atom tag, masked and shifted back by the
// dispatch in builtinIndex, recovers k.
func (i *Instance) internBuiltins() {
	i.builtinAtoms = [builtinCount]Value{}
	for k, name := range builtinNames {
		i.builtinAtoms[k] = i.InternString(name)
	}
}

// builtinIndex extracts the builtin dispatch index from an atom used as an
// application's receiver: the low bits (atom & 0x1FFFFFFF) >> 3. Atoms are
// untagged integers, so small numeric atoms alias builtin indices by
// construction; this is a property of the encoding, not an error.
func builtinIndex(atom Value) int {
	return int((int32(atom) & 0x1FFFFFFF) >> 3)
}

// TrueAtom and FalseAtom return the interned ~~true/~~false atoms, the
// language's only two boolean values. The boolean atoms are themselves the
// conditional combinators.
func (i *Instance) TrueAtom() Value  { return i.builtinAtoms[BTrue] }
func (i *Instance) FalseAtom() Value { return i.builtinAtoms[BFalse] }

// boolAtom converts a Go bool to the corresponding mu_ boolean atom.
func (i *Instance) boolAtom(b bool) Value {
	if b {
		return i.TrueAtom()
	}
	return i.FalseAtom()
}
