// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

// Node is an immutable binary tree node carrying a value of type V.
// A nil child is an absent child. Node graphs must be acyclic; a cycle
// is a precondition violation, detected only under WithCycleCheck.
//
// Nodes are pure data: read-only sharing across concurrent traversals
// is safe without coordination.
type Node[V any] struct {
	Value V
	Left  *Node[V]
	Right *Node[V]
}

// NewNode returns a node with the given value and children.
func NewNode[V any](v V, left, right *Node[V]) *Node[V] {
	return &Node[V]{Value: v, Left: left, Right: right}
}

// Leaf returns a node with no children.
func Leaf[V any](v V) *Node[V] {
	return &Node[V]{Value: v}
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil node has height 0. Computed iteratively with an explicit stack:
// the library never recurses on caller-supplied structure.
func (n *Node[V]) Height() int {
	if n == nil {
		return 0
	}
	type entry struct {
		node  *Node[V]
		depth int
	}
	stack := []entry{{n, 1}}
	h := 0
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h = max(h, e.depth)
		if e.node.Left != nil {
			stack = append(stack, entry{e.node.Left, e.depth + 1})
		}
		if e.node.Right != nil {
			stack = append(stack, entry{e.node.Right, e.depth + 1})
		}
	}
	return h
}
