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
	"math/rand"
	"testing"

	"github.com/BrickNumber5/mu/mu"
)

func newInstance(t *testing.T, opts ...mu.Option) *mu.Instance {
	t.Helper()
	i, err := mu.New(opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

// node is a host-side snapshot of a value graph, taken before a collection
// clobbers the original cells with forwarding pairs.
type node struct {
	atom mu.Value
	h, t *node
}

func snapshot(i *mu.Instance, v mu.Value) *node {
	if v.IsAtom() {
		return &node{atom: v}
	}
	return &node{atom: -1, h: snapshot(i, i.Head(v)), t: snapshot(i, i.Tail(v))}
}

func sameShape(i *mu.Instance, v mu.Value, n *node) bool {
	if n.h == nil {
		return v == n.atom
	}
	return v.IsCons() && sameShape(i, i.Head(v), n.h) && sameShape(i, i.Tail(v), n.t)
}

func countCells(i *mu.Instance, v mu.Value, seen map[mu.Value]bool) int {
	if v.IsAtom() || seen[v] {
		return 0
	}
	seen[v] = true
	return 1 + countCells(i, i.Head(v), seen) + countCells(i, i.Tail(v), seen)
}

func TestConsHeadTail(t *testing.T) {
	i := newInstance(t)
	v := i.Cons(1, 2)
	if !v.IsCons() {
		t.Fatalf("Cons returned non-cons value %d", v)
	}
	if h := i.Head(v); h != 1 {
		t.Errorf("head(cons(1, 2)) = %d, expected 1", h)
	}
	if tl := i.Tail(v); tl != 2 {
		t.Errorf("tail(cons(1, 2)) = %d, expected 2", tl)
	}
	// the zero offset is reserved, so the first cell lands at offset 8 and
	// every subsequent reference stays 8-aligned below the heap top.
	for n := 0; n < 64; n++ {
		w := i.Cons(mu.Value(n), v)
		off := -int(w)
		if off < 8 || off%8 != 0 || off > i.Anchor() {
			t.Fatalf("cell %d: reference %d out of range (top %d)", n, w, i.Anchor())
		}
		v = w
	}
	if i.Anchor()%8 != 0 {
		t.Errorf("cons_top %d not a multiple of 8", i.Anchor())
	}
}

func TestHeadTailMisuse(t *testing.T) {
	i := newInstance(t)
	// embedder misuse is unchecked but bounded: the result is a value, not
	// a crash, and the instance stays usable.
	if v := i.Head(42); v != mu.Nil {
		t.Errorf("head(atom) = %d", v)
	}
	if v := i.Tail(mu.Nil); v != mu.Nil {
		t.Errorf("tail(nil) = %d", v)
	}
	if v := i.Cons(1, 2); i.Head(v) != 1 {
		t.Error("instance unusable after misuse")
	}
}

func TestCollectPreservesGraph(t *testing.T) {
	i := newInstance(t)
	base := i.Cons(10, 20)
	anchor := i.Anchor()

	i.Cons(3, 4) // garbage
	keep := i.Cons(i.Cons(5, 6), i.Cons(base, mu.Nil))
	i.Cons(7, 8) // garbage

	snap := snapshot(i, keep)
	topBefore := i.Anchor()

	keep2 := i.Collect(keep, anchor)
	if !sameShape(i, keep2, snap) {
		t.Fatal("collected graph differs from original")
	}
	if i.Anchor() > topBefore {
		t.Errorf("cons_top grew across collection: %d > %d", i.Anchor(), topBefore)
	}
	// the pre-anchor cell was neither moved nor rewritten, and the
	// preserved graph still points at it directly.
	if i.Head(base) != 10 || i.Tail(base) != 20 {
		t.Error("cell below anchor was disturbed")
	}
	if got := i.Head(i.Tail(keep2)); got != base {
		t.Errorf("reference below anchor was rewritten: %d != %d", got, base)
	}
}

func TestCollectPreservesSharing(t *testing.T) {
	i := newInstance(t)
	anchor := i.Anchor()
	shared := i.Cons(1, 2)
	diamond := i.Cons(shared, shared)

	d2 := i.Collect(diamond, anchor)
	if i.Head(d2) != i.Tail(d2) {
		t.Error("shared cell was copied twice")
	}
	if n := countCells(i, d2, map[mu.Value]bool{}); n != 2 {
		t.Errorf("expected 2 reachable cells, got %d", n)
	}
	if i.Anchor() != anchor+16 {
		t.Errorf("cons_top = %d, expected %d", i.Anchor(), anchor+16)
	}
}

func TestCollectIdempotent(t *testing.T) {
	i := newInstance(t)
	anchor := i.Anchor()
	v := i.Cons(1, i.Cons(2, i.Cons(3, mu.Nil)))
	i.Cons(9, 9)

	v2 := i.Collect(v, anchor)
	top := i.Anchor()
	snap := snapshot(i, v2)

	// with no garbage to drop, a second collection must not move cons_top.
	v3 := i.Collect(v2, anchor)
	if i.Anchor() != top {
		t.Errorf("no-op collection moved cons_top: %d != %d", i.Anchor(), top)
	}
	if !sameShape(i, v3, snap) {
		t.Error("no-op collection changed the graph")
	}
}

func TestCollectNilDropsEverything(t *testing.T) {
	i := newInstance(t)
	anchor := i.Anchor()
	i.Cons(1, i.Cons(2, mu.Nil))
	if v := i.Collect(mu.Nil, anchor); v != mu.Nil {
		t.Errorf("collect(nil) = %d", v)
	}
	if i.Anchor() != anchor {
		t.Errorf("cons_top = %d, expected %d", i.Anchor(), anchor)
	}
}

// TestCollectRandomDAG exercises the collector over arbitrary DAGs: an
// anchored collection must preserve structure and reachable-cell count,
// and re-collecting the result with no new allocations is a no-op.
func TestCollectRandomDAG(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		i := newInstance(t)
		pinned := i.Cons(mu.Value(rng.Int31n(100)), mu.Nil)
		anchor := i.Anchor()

		nodes := []mu.Value{pinned, mu.Nil, 1, 2, 3}
		for n := 0; n < 100; n++ {
			h := nodes[rng.Intn(len(nodes))]
			tl := nodes[rng.Intn(len(nodes))]
			nodes = append(nodes, i.Cons(h, tl))
		}
		root := nodes[len(nodes)-1]

		snap := snapshot(i, root)
		before := countCells(i, root, map[mu.Value]bool{})

		root2 := i.Collect(root, anchor)
		if !sameShape(i, root2, snap) {
			t.Fatalf("round %d: graph changed across collection", round)
		}
		if after := countCells(i, root2, map[mu.Value]bool{}); after != before {
			t.Fatalf("round %d: reachable cells %d != %d", round, after, before)
		}

		top := i.Anchor()
		i.Collect(root2, anchor)
		if i.Anchor() != top {
			t.Fatalf("round %d: repeat collection moved cons_top %d != %d", round, i.Anchor(), top)
		}
	}
}

func TestMaxCellsExhaustion(t *testing.T) {
	i := newInstance(t, mu.MaxCells(400))

	// build a deeply nested (~~cons 1 (~~cons 1 ...)) expression; building
	// it fits the bound, evaluating it does not.
	consAtom := i.InternString("~~cons")
	expr := mu.Value(0)
	for n := 0; n < 100; n++ {
		expr = i.Cons(consAtom, i.Cons(1, i.Cons(expr, mu.Nil)))
	}

	_, err := i.Eval(expr, mu.Nil, i.Anchor())
	if err == nil {
		t.Fatal("expected heap-exhaustion error")
	}
}
