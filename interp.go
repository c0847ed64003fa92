// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

// Traversal is the iterative interpreter state for one in-order walk:
// the current node reference plus the explicit continuation stack.
//
// The stack holds the flat-array form of the Pending chain — the chain
// is consumed strictly LIFO with no tail sharing, so each frame reduces
// to its node pointer. Stack depth is bounded by the height of the
// subtree descended into, never by total node count.
//
// A Traversal is single-use and not safe for concurrent use. Abandoning
// it before exhaustion needs no cleanup; the stack is simply dropped.
type Traversal[V any] struct {
	cur      *Node[V]
	stack    []*Node[V]
	onStack  map[*Node[V]]struct{}
	err      error
	serial   Serial
	emitted  int
	maxDepth int
}

// Begin starts a fresh in-order traversal of root.
// A nil root yields an immediately exhausted traversal.
func Begin[V any](root *Node[V], opts ...Option) *Traversal[V] {
	var cfg options
	cfg.apply(opts)
	t := &Traversal[V]{cur: root, serial: nextSerial()}
	if cfg.heightHint > 0 {
		t.stack = make([]*Node[V], 0, cfg.heightHint)
	}
	if cfg.cycleCheck {
		t.onStack = make(map[*Node[V]]struct{})
	}
	return t
}

// Next advances the trampoline to the next emission.
//
// Descend phase: while a current node is present, push a frame for it
// and move to its left child. Resume phase: pop the top frame, emit its
// node's value, and continue from that node's right child. Both the
// current reference and the stack empty means the walk is complete.
//
// Returns (zero, false) on exhaustion or after a cycle check failure;
// Err distinguishes the two.
func (t *Traversal[V]) Next() (V, bool) {
	var zero V
	if t.err != nil {
		return zero, false
	}
	for t.cur != nil {
		if t.onStack != nil {
			if _, dup := t.onStack[t.cur]; dup {
				t.err = &CyclicStructureError{Serial: t.serial, Depth: len(t.stack)}
				t.cur = nil
				t.stack = t.stack[:0]
				clear(t.onStack)
				return zero, false
			}
			t.onStack[t.cur] = struct{}{}
		}
		t.stack = append(t.stack, t.cur)
		if len(t.stack) > t.maxDepth {
			t.maxDepth = len(t.stack)
		}
		t.cur = t.cur.Left
	}
	if len(t.stack) == 0 {
		return zero, false
	}
	n := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	if t.onStack != nil {
		delete(t.onStack, n)
	}
	t.cur = n.Right
	t.emitted++
	return n.Value, true
}

// Err returns the CyclicStructureError that aborted the traversal, or
// nil. Only set when cycle checking is enabled via WithCycleCheck.
func (t *Traversal[V]) Err() error {
	return t.err
}

// Emitted returns the number of values emitted so far.
func (t *Traversal[V]) Emitted() int {
	return t.emitted
}

// MaxDepth returns the high-water mark of the continuation stack.
// Never exceeds the height of the traversed tree.
func (t *Traversal[V]) MaxDepth() int {
	return t.maxDepth
}

// Serial returns the serial number assigned to this traversal.
func (t *Traversal[V]) Serial() Serial {
	return t.serial
}
