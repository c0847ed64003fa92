// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/trav"
)

// TestPropertyIterativeMatchesRecursive proves that for any arbitrarily
// generated finite acyclic tree, every iterative engine — flat stack,
// linked chain, Cont-world closures, Expr-world frames — produces the
// unbounded-recursion in-order sequence, value-for-value.
func TestPropertyIterativeMatchesRecursive(t *testing.T) {
	property := func(values []int) bool {
		root := bst(values)
		want := recCollect(root)

		if got := trav.Collect(root); !reflect.DeepEqual(got, want) {
			return false
		}

		var chain []int
		for v := range trav.InOrderKont(root) {
			chain = append(chain, v)
		}
		if !reflect.DeepEqual(chain, want) {
			return false
		}

		cCount, cVals := trav.Gather[int](trav.VisitAll(root))
		if cCount != len(want) || !reflect.DeepEqual(cVals, want) {
			return false
		}

		eCount, eVals := trav.GatherExpr[int](trav.ExprVisitAll(root))
		return eCount == len(want) && reflect.DeepEqual(eVals, want)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyStackBoundedByHeight proves the auxiliary-memory bound:
// the continuation stack's high-water mark never exceeds tree height,
// and the traversal emits exactly one value per node.
func TestPropertyStackBoundedByHeight(t *testing.T) {
	property := func(values []int) bool {
		root := bst(values)
		tr := trav.Begin(root)
		for _, ok := tr.Next(); ok; _, ok = tr.Next() {
		}
		if tr.MaxDepth() > root.Height() {
			return false
		}
		return tr.Emitted() == len(values)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyIdempotent proves that traversing the same immutable
// structure twice yields identical sequences.
func TestPropertyIdempotent(t *testing.T) {
	property := func(values []int) bool {
		root := bst(values)
		return reflect.DeepEqual(trav.Collect(root), trav.Collect(root))
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
