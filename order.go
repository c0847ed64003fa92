// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import "iter"

// Pre-order and post-order walks carry their own frame variant sets,
// derived from the suspension shapes of their recursive forms — they do
// not reuse the in-order Pending frame.

// PreOrder returns a lazy sequence of root's values in node,
// left-subtree, right-subtree order.
//
// The pre-order visit suspends in a single shape, "walk this subtree
// later", so a frame is just the subtree root: popping emits the node
// and schedules its children, right below left.
func PreOrder[V any](root *Node[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if root == nil {
			return
		}
		stack := []*Node[V]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Value) {
				return
			}
			if n.Right != nil {
				stack = append(stack, n.Right)
			}
			if n.Left != nil {
				stack = append(stack, n.Left)
			}
		}
	}
}

// postFrame is one suspended step of the post-order walk. Two shapes:
// expand (children not yet scheduled) and emit (both subtrees done).
type postFrame[V any] struct {
	node *Node[V]
	emit bool
}

// PostOrder returns a lazy sequence of root's values in left-subtree,
// right-subtree, node order.
func PostOrder[V any](root *Node[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if root == nil {
			return
		}
		stack := []postFrame[V]{{node: root}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.emit {
				if !yield(f.node.Value) {
					return
				}
				continue
			}
			stack = append(stack, postFrame[V]{node: f.node, emit: true})
			if f.node.Right != nil {
				stack = append(stack, postFrame[V]{node: f.node.Right})
			}
			if f.node.Left != nil {
				stack = append(stack, postFrame[V]{node: f.node.Left})
			}
		}
	}
}
