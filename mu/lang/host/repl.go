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

package host

import (
	"io"

	"github.com/BrickNumber5/mu/mu"
	"github.com/BrickNumber5/mu/mu/parse"
)

// REPL reads expressions from in one at a time, evaluates each under env,
// and writes its readable form to out followed by a newline. It returns
// nil when the input is exhausted.
//
// env must already be allocated when REPL is called: the anchor taken at
// entry pins it, so per-expression garbage (the parse tree, intermediate
// conses, the printed result) is collected between expressions without
// disturbing the environment. Interned atoms and yard bytes accumulate
// across expressions; those tables are append-only by design.
func REPL(i *mu.Instance, env mu.Value, in io.Reader, out io.Writer) error {
	base := i.Anchor()
	r := parse.NewReader(i, in)
	for {
		expr, err := r.Read()
		if err == io.EOF {
			return nil
		}
		v, err := i.Eval(expr, env, i.Anchor())
		if err != nil {
			return err
		}
		if err = Print(i, v, out); err != nil {
			return err
		}
		if _, err = out.Write([]byte{'\n'}); err != nil {
			return err
		}
		i.Collect(mu.Nil, base)
	}
}

// EvalString is a one-shot convenience: it stages src in the yard, parses
// it, and evaluates the result under env, collecting everything but the
// returned value back down to the anchor taken at entry.
func EvalString(i *mu.Instance, src string, env mu.Value) (mu.Value, error) {
	anchor := i.Anchor()
	off := i.YardWrite(src)
	expr := parse.ParseYard(i, off, len(src))
	return i.Eval(expr, env, anchor)
}
