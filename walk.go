// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import "iter"

// InOrder returns a lazy pull sequence of root's values in left-subtree,
// node, right-subtree order. The sequence is finite and not restartable;
// range a fresh call to revisit. Breaking out of the range abandons the
// traversal: no further node is visited and the stack is dropped.
func InOrder[V any](root *Node[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		t := Begin(root)
		for v, ok := t.Next(); ok; v, ok = t.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// InOrderKont traverses root by interpreting the linked Kont chain
// directly. Semantically identical to InOrder; the flat stack inside
// Traversal is the LIFO-array optimization of this chain.
func InOrderKont[V any](root *Node[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		k := Descend[V](root, Done[V]{})
		for {
			v, right, next, ok := Resume[V](k)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
			k = Descend(right, next)
		}
	}
}

// Collect runs a full in-order traversal of root into a slice.
// Returns nil for a nil root.
func Collect[V any](root *Node[V]) []V {
	if root == nil {
		return nil
	}
	out := make([]V, 0, 8)
	t := Begin(root)
	for v, ok := t.Next(); ok; v, ok = t.Next() {
		out = append(out, v)
	}
	return out
}

// CollectChecked is Collect with cycle checking enabled. Returns a
// CyclicStructureError and no partial result if a node already on the
// active stack is pushed again.
func CollectChecked[V any](root *Node[V], opts ...Option) ([]V, error) {
	t := Begin(root, append(opts, WithCycleCheck())...)
	var out []V
	for v, ok := t.Next(); ok; v, ok = t.Next() {
		out = append(out, v)
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
