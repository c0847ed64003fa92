// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav_test

import (
	"code.hybscloud.com/trav"
)

// balanced returns the tree 4(2(1,3),5); in-order is 1 2 3 4 5.
func balanced() *trav.Node[int] {
	return trav.NewNode(4,
		trav.NewNode(2, trav.Leaf(1), trav.Leaf(3)),
		trav.Leaf(5),
	)
}

// leftChain returns a chain of n nodes linked through Left children.
// The root holds n and the leftmost leaf holds 1; in-order is 1..n.
func leftChain(n int) *trav.Node[int] {
	var child *trav.Node[int]
	for i := 1; i <= n; i++ {
		node := trav.Leaf(i)
		node.Left = child
		child = node
	}
	return child
}

// rightChain returns a chain of n nodes linked through Right children.
// The root holds 1; in-order is 1..n.
func rightChain(n int) *trav.Node[int] {
	var root, tail *trav.Node[int]
	for i := 1; i <= n; i++ {
		node := trav.Leaf(i)
		if root == nil {
			root = node
		} else {
			tail.Right = node
		}
		tail = node
	}
	return root
}

// bst builds a binary search tree by iterative insertion, duplicates to
// the right. Arbitrary value sequences produce arbitrary shapes, which
// is what the equivalence properties need.
func bst(values []int) *trav.Node[int] {
	var root *trav.Node[int]
	for _, v := range values {
		n := trav.Leaf(v)
		if root == nil {
			root = n
			continue
		}
		cur := root
		for {
			if v < cur.Value {
				if cur.Left == nil {
					cur.Left = n
					break
				}
				cur = cur.Left
			} else {
				if cur.Right == nil {
					cur.Right = n
					break
				}
				cur = cur.Right
			}
		}
	}
	return root
}

// perfect builds a perfect tree of the given depth with in-order values
// 1..2^depth-1. Test-harness recursion; depth stays small.
func perfect(depth int) *trav.Node[int] {
	next := 1
	var build func(d int) *trav.Node[int]
	build = func(d int) *trav.Node[int] {
		if d == 0 {
			return nil
		}
		left := build(d - 1)
		n := trav.Leaf(next)
		next++
		n.Left = left
		n.Right = build(d - 1)
		return n
	}
	return build(depth)
}

// recInOrder is the unbounded-recursion reference the iterative engines
// must reproduce value-for-value.
func recInOrder(n *trav.Node[int], visit func(int)) {
	if n == nil {
		return
	}
	recInOrder(n.Left, visit)
	visit(n.Value)
	recInOrder(n.Right, visit)
}

func recPreOrder(n *trav.Node[int], visit func(int)) {
	if n == nil {
		return
	}
	visit(n.Value)
	recPreOrder(n.Left, visit)
	recPreOrder(n.Right, visit)
}

func recPostOrder(n *trav.Node[int], visit func(int)) {
	if n == nil {
		return
	}
	recPostOrder(n.Left, visit)
	recPostOrder(n.Right, visit)
	visit(n.Value)
}

// recCollect runs recInOrder into a slice.
func recCollect(n *trav.Node[int]) []int {
	var out []int
	recInOrder(n, func(v int) { out = append(out, v) })
	return out
}
