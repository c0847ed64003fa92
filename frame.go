// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

// Kont is the defunctionalized continuation of an in-order traversal:
// a data encoding of "the rest of the walk" in place of a closure.
//
// The variant set is derived from the single suspension shape of the
// recursive visit — the closure
//
//	func() { emit(n.Value); walk(n.Right, next) }
//
// becomes Pending{Node: n, Next: next}, and the empty continuation
// becomes Done. Extending to other traversal orders means adding one
// variant per distinct suspension shape and extending the interpreter
// dispatch symmetrically.
type Kont[V any] interface {
	kontFrame()
}

// Done is the empty continuation: no work remains.
type Done[V any] struct{}

// Pending is one suspended resume point. Resuming it emits Node's value
// and continues the traversal into Node.Right with continuation Next.
//
// Frames form a strict LIFO chain with no tail sharing: each live frame
// is referenced by exactly one successor or by the interpreter itself.
type Pending[V any] struct {
	Node *Node[V]
	Next Kont[V]
}

func (Done[V]) kontFrame()     {}
func (*Pending[V]) kontFrame() {}

// Depth returns the number of Pending frames in the chain: the count of
// ancestors whose right subtree has not yet been visited.
func Depth[V any](k Kont[V]) int {
	d := 0
	for {
		p, ok := k.(*Pending[V])
		if !ok {
			return d
		}
		d++
		k = p.Next
	}
}

// Descend pushes one Pending frame per node on the left spine of n,
// reproducing the recursive call chain that precedes the first emission.
func Descend[V any](n *Node[V], k Kont[V]) Kont[V] {
	for n != nil {
		k = &Pending[V]{Node: n, Next: k}
		n = n.Left
	}
	return k
}

// Resume interprets the top frame of k. For Pending it returns the value
// to emit, the right child to descend into next, and the remaining chain;
// for Done it reports ok=false: the traversal is complete.
func Resume[V any](k Kont[V]) (v V, right *Node[V], next Kont[V], ok bool) {
	switch f := k.(type) {
	case *Pending[V]:
		return f.Node.Value, f.Node.Right, f.Next, true
	default:
		return v, nil, Done[V]{}, false
	}
}
