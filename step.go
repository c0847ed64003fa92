// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a traversal protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended traversal operation on the sink.
// DispatchVisit is non-blocking: returns iox.ErrWouldBlock when the
// bounded SPSC queue cannot make progress (the delivery boundary).
//
// On success (nil error), the suspension is consumed and the traversal
// advances to the next emission or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the consumer drains the queue.
func Advance[V, R any](sink *Sink[V], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	vop, ok := susp.Op().(visitDispatcher[V])
	if !ok {
		panic("trav: unhandled effect in Advance")
	}
	v, err := vop.DispatchVisit(&sink.ctx)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
