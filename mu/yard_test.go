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
	"testing"

	"github.com/BrickNumber5/mu/mu"
)

func TestInternIdentity(t *testing.T) {
	i := newInstance(t)

	// byte-equal strings intern to the same atom, regardless of which yard
	// bytes they were staged in.
	a1 := i.InternString("widget")
	off := i.YardWrite("widget")
	a2 := i.Intern(off, 6)
	if a1 != a2 {
		t.Errorf("equal strings interned differently: %d != %d", a1, a2)
	}
	if b := i.InternString("gadget"); b == a1 {
		t.Error("distinct strings interned identically")
	}
}

func TestInternRoundTrip(t *testing.T) {
	i := newInstance(t)
	for _, s := range []string{"x", "~~frob", "a longer name with spaces staged by the embedder"} {
		a := i.InternString(s)
		off, length := i.LookupInterned(a)
		if off < 0 {
			t.Fatalf("interned atom %d did not resolve", a)
		}
		if got := string(i.YardBytes(uint32(off), int(length))); got != s {
			t.Errorf("round trip: %q != %q", got, s)
		}
		if name, ok := i.NameOf(a); !ok || name != s {
			t.Errorf("NameOf = %q, %v", name, ok)
		}
	}
}

func TestLookupInternedRejects(t *testing.T) {
	i := newInstance(t)
	for _, v := range []mu.Value{-8, 5, 0x20000004, 0x20000000 ^ 0x7FFFFFF8} {
		if off, length := i.LookupInterned(v); off != -1 || length != -1 {
			t.Errorf("LookupInterned(%d) = (%d, %d), expected (-1, -1)", v, off, length)
		}
	}
}

func TestYardAlloc(t *testing.T) {
	i := newInstance(t)
	base := i.YardLen()
	off1 := i.YardAlloc(4)
	off2 := i.YardAlloc(2)
	if int(off1) != base || int(off2) != base+4 {
		t.Errorf("bump allocation out of order: %d, %d (base %d)", off1, off2, base)
	}
	copy(i.YardBytes(off1, 4), "abcd")
	if got := string(i.YardBytes(off1, 4)); got != "abcd" {
		t.Errorf("yard bytes = %q", got)
	}
	if b := i.YardBytes(uint32(i.YardLen()), 1); b != nil {
		t.Error("out-of-range YardBytes did not return nil")
	}
}

// the sixteen builtin names must occupy internment records 1..16 in
// definition order, with the empty-list literal at record 0, so that the
// evaluator's index arithmetic recovers the right handler.
func TestPreinternedBuiltins(t *testing.T) {
	names := []string{
		"()",
		"~~true", "~~false",
		"~~head", "~~tail", "~~cons",
		"~~lte", "~~eq",
		"~~add", "~~sub", "~~and", "~~or", "~~not", "~~sl", "~~sr",
		"~~env", "~~sys",
	}
	i := newInstance(t)
	for k, name := range names {
		a := i.InternString(name)
		want := mu.Value(int32(k*8) ^ 0x20000000)
		if a != want {
			t.Errorf("%s: atom %d, expected %d", name, a, want)
		}
	}
	if name, _ := i.NameOf(i.TrueAtom()); name != "~~true" {
		t.Errorf("TrueAtom resolves to %q", name)
	}
	if name, _ := i.NameOf(i.FalseAtom()); name != "~~false" {
		t.Errorf("FalseAtom resolves to %q", name)
	}
}
