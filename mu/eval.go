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

// Eval evaluates expr under env, reclaiming any cons cells it allocates
// that are not reachable from the result back down to anchor. anchor is
// typically the value most recently returned by Anchor.
//
// Eval never returns an error for malformed mu_ input: evaluation is total
// over well-formed Values. The only failure mode is host resource
// exhaustion (a bounded heap filling up), which panics inside the cons
// allocator and is recovered here.
func (i *Instance) Eval(expr, env Value, anchor int) (result Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "mu: eval failed, cons_top=%d anchor=%d", i.consTop(), anchor)
			default:
				panic(e)
			}
		}
	}()
	return i.eval(expr, env, anchor), nil
}

// Lookup walks env from head to tail looking for a binding of sym,
// returning sym itself if no binding is found. Bindings are conses of
// (symbol . value); env is a list of such bindings terminated by Nil.
func (i *Instance) Lookup(sym, env Value) Value {
	for v := env; v.IsCons(); v = i.Tail(v) {
		binding := i.Head(v)
		if i.Head(binding) == sym {
			return i.Tail(binding)
		}
	}
	return sym
}

// Match extends env with bindings produced by destructuring value against
// pattern. Matching never rejects: a pattern that does not
// structurally fit value simply drives head/tail's own embedder-misuse
// leniency (see Head, Tail) rather than signaling failure.
func (i *Instance) Match(value, pattern, env Value) Value {
	switch {
	case pattern.IsNil():
		return env
	case pattern.IsAtom():
		return i.Cons(i.Cons(pattern, value), env)
	default:
		env = i.Match(i.Head(value), i.Head(pattern), env)
		return i.Match(i.Tail(value), i.Tail(pattern), env)
	}
}

// eval is the trampolined core of Eval: expr/env/anchor form the loop state
// threaded through tail reductions (cond branches, user-receiver bodies) so
// that mu_ tail recursion does not grow the Go call stack. Non-tail
// recursive evaluation (the receiver position, and any builtin argument
// that isn't itself a tail position) recurses into eval directly with a
// fresh anchor, so intermediate garbage is reclaimed on return.
func (i *Instance) eval(expr, env Value, anchor int) Value {
	for {
		switch {
		case expr.IsNil():
			return i.Collect(Nil, anchor)

		case expr.IsAtom():
			return i.Collect(i.Lookup(expr, env), anchor)

		default: // application
			receiver := i.eval(i.Head(expr), env, i.Anchor())
			args := i.Tail(expr)

			if receiver.IsAtom() {
				next, tail, v, isTail := i.applyBuiltin(builtinIndex(receiver), receiver, args, env)
				if !isTail {
					return i.Collect(v, anchor)
				}
				expr, env = next, tail
				continue
			}

			// User-defined receiver: (pattern . (body . rest)).
			pattern := i.Head(receiver)
			bodyRest := i.Tail(receiver)
			body := i.Head(bodyRest)
			rest := i.Tail(bodyRest)

			callArgs := args
			callEnv := env
			if !rest.IsNil() {
				callArgs = i.evalList(args, env)
				callEnv = i.Head(rest)
			}

			extEnv := i.Match(callArgs, pattern, callEnv)

			bundle := i.Collect(i.Cons(extEnv, body), anchor)
			expr, env = i.Tail(bundle), i.Head(bundle)
		}
	}
}

// evalList evaluates each element of a (possibly dotted) argument list
// under env, preserving its cons structure, for the lexical-closure call
// path.
func (i *Instance) evalList(list, env Value) Value {
	if !list.IsCons() {
		if list.IsNil() {
			return Nil
		}
		return i.eval(list, env, i.Anchor())
	}
	h := i.eval(i.Head(list), env, i.Anchor())
	t := i.evalList(i.Tail(list), env)
	return i.Cons(h, t)
}

// applyBuiltin dispatches a builtin invocation. It returns either a final
// value (isTail == false) or the next (expr, env) pair for the calling
// loop to continue evaluating in tail position (isTail == true), so that
// ~~true/~~false keep cond-driven recursion from growing the Go stack.
//
// An index outside [0, 16] arises only from an atom not produced by
// internBuiltins (e.g. a large numeric atom used directly as a receiver,
// which the index arithmetic does not exclude). For such an index the
// application evaluates to the receiver atom itself, the same self-quoting
// fallback unbound symbols get, keeping evaluation total.
func (i *Instance) applyBuiltin(idx int, receiver, args, env Value) (nextExpr, nextEnv, value Value, isTail bool) {
	a := func() Value { return i.eval(i.Head(args), env, i.Anchor()) }
	b := func() Value { return i.eval(i.Head(i.Tail(args)), env, i.Anchor()) }

	switch idx {
	case BQuote:
		return 0, 0, i.Head(args), false
	case BTrue:
		return i.Head(args), env, 0, true
	case BFalse:
		return i.Head(i.Tail(args)), env, 0, true
	case BHead:
		return 0, 0, i.Head(a()), false
	case BTail:
		return 0, 0, i.Tail(a()), false
	case BCons:
		av, bv := a(), b()
		return 0, 0, i.Cons(av, bv), false
	case BLte:
		return 0, 0, i.boolAtom(a() <= b()), false
	case BEq:
		return 0, 0, i.boolAtom(a() == b()), false
	case BAdd:
		av, bv := uint32(a()), uint32(b())
		return 0, 0, Value((av + bv) & 0x7FFFFFFF), false
	case BSub:
		av, bv := uint32(a()), uint32(b())
		return 0, 0, Value((av - bv) & 0x7FFFFFFF), false
	case BAnd:
		return 0, 0, a() & b(), false
	case BOr:
		return 0, 0, a() | b(), false
	case BNot:
		return 0, 0, a() ^ 0x7FFFFFFF, false
	case BSl:
		av, bv := uint32(a()), uint32(b())
		return 0, 0, Value((av << (bv & 31)) & 0x7FFFFFFF), false
	case BSr:
		av, bv := uint32(a()), uint32(b())
		return 0, 0, Value(av >> (bv & 31)), false
	case BEnv:
		return 0, 0, env, false
	case BSys:
		name := i.Head(args)
		arg := i.Head(i.Tail(args))
		op := i.sysOpcode(name)
		handler, ok := i.sysOps[op]
		if !ok {
			return 0, 0, Nil, false
		}
		return 0, 0, handler(i, arg, env), false
	default:
		return 0, 0, receiver, false
	}
}
