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

// Package mu implements the core of mu_, a minimal homoiconic language in
// which every value is a signed 32-bit integer: positive values are atoms,
// zero is the empty list, and negative values address cons cells on an
// append-only heap.
//
// The package exposes the cons heap and its anchored copying collector, the
// string yard and interning table shared between atoms and registered
// system operations, and an evaluator with seventeen builtins plus a
// registerable system-call mechanism. Parsing of the textual surface syntax
// lives in the sibling mu/parse package; host-facing helpers such as a
// readable-form printer live in mu/lang/host. None of this package's
// functionality performs I/O: the embedder owns the string yard's bytes and
// decides what, if anything, mu_ programs can observe of the outside world
// via registered system operations.
//
// mu_ has no error values at the language level: evaluation is total modulo
// resource exhaustion (see Option MaxCells) and malformed input. The parser
// in mu/parse makes a best effort on malformed input rather than failing.
package mu
