// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/kont"
)

// VisitAll is the Cont-world in-order traversal of root: the direct
// recursive schema whose continuations are closures. The result is the
// number of values emitted.
//
// This is the pre-defunctionalization form — the closure after each
// Visit captures "emit the node, then walk the right subtree".
// Construction depth tracks tree height; for degenerate chains use
// ExprVisitAll, whose evaluation is iterative.
func VisitAll[V any](root *Node[V]) kont.Eff[int] {
	if root == nil {
		return kont.Pure(0)
	}
	return kont.Bind(VisitAll(root.Left), func(l int) kont.Eff[int] {
		return VisitThen(root.Value,
			kont.Bind(VisitAll(root.Right), func(r int) kont.Eff[int] {
				return kont.Pure(l + 1 + r)
			}),
		)
	})
}

// walkState is the trampoline state threaded through ExprVisitAll:
// current node, flat continuation stack, emitted count.
type walkState[V any] struct {
	cur     *Node[V]
	stack   []*Node[V]
	emitted int
}

// ExprVisitAll is the Expr-world in-order traversal of root: the
// defunctionalized engine lifted into kont frames. One Visit effect per
// node, auxiliary memory bounded by tree height, and evaluation stays
// iterative regardless of depth.
func ExprVisitAll[V any](root *Node[V]) kont.Expr[int] {
	return exprWalk(walkState[V]{cur: root})
}

// exprWalk performs one descend+resume step and suspends on the Visit
// effect, chaining the remaining walk behind a BindFrame. The bind
// closure re-enters exprWalk only after the effect resumes, so the
// evaluator's frame loop, not the Go stack, carries the iteration.
func exprWalk[V any](s walkState[V]) kont.Expr[int] {
	for s.cur != nil {
		s.stack = append(s.stack, s.cur)
		s.cur = s.cur.Left
	}
	if len(s.stack) == 0 {
		return kont.ExprReturn(s.emitted)
	}
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.cur = n.Right
	s.emitted++

	bf := kont.AcquireBindFrame()
	bf.F = func(_ kont.Erased) kont.Expr[kont.Erased] {
		result := exprWalk(s)
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = kont.ReturnFrame{}
	ef := kont.AcquireEffectFrame()
	ef.Operation = Visit[V]{Value: n.Value}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[int](ef)
}
