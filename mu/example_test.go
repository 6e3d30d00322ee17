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

package mu_test

import (
	"fmt"
	"strings"

	"github.com/BrickNumber5/mu/mu"
	"github.com/BrickNumber5/mu/mu/lang/host"
	"github.com/BrickNumber5/mu/mu/parse"
)

// Shows the embedding round trip: stage source text, parse it, evaluate,
// and print the readable form of the result.
func ExampleInstance_Eval() {
	i, err := mu.New()
	if err != nil {
		panic(err)
	}

	for _, src := range []string{
		"(~~add 2 3)",
		"(() (~~add 2 3))",
		"(~~cons 1 (~~cons 2 ()))",
		"((~~lte 1 2) smaller bigger)",
	} {
		expr, err := parse.Parse(i, strings.NewReader(src))
		if err != nil {
			panic(err)
		}
		v, err := i.Eval(expr, mu.Nil, i.Anchor())
		if err != nil {
			panic(err)
		}
		fmt.Println(host.String(i, v))
	}

	// Output:
	// 5
	// (~~add 2 3)
	// (1 2)
	// smaller
}

// Shows how to extend the language with a system operation. The handler
// receives its argument unevaluated and decides itself whether to re-enter
// the evaluator.
func ExampleInstance_Register() {
	i, err := mu.New()
	if err != nil {
		panic(err)
	}

	i.Register(i.InternString("twice"), func(i *mu.Instance, arg, env mu.Value) mu.Value {
		v, err := i.Eval(arg, env, i.Anchor())
		if err != nil {
			return mu.Nil
		}
		v, err = i.Eval(i.Cons(i.InternString("~~add"), i.Cons(v, i.Cons(v, mu.Nil))), env, i.Anchor())
		if err != nil {
			return mu.Nil
		}
		return v
	})

	expr, err := parse.Parse(i, strings.NewReader("(~~sys twice (~~add 1 2))"))
	if err != nil {
		panic(err)
	}
	v, err := i.Eval(expr, mu.Nil, i.Anchor())
	if err != nil {
		panic(err)
	}
	fmt.Println(host.String(i, v))

	// Output:
	// 6
}
