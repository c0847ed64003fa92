// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/kont"
)

// gatherHandler implements kont.Handler by appending Visit values to a
// slice. End resumes without effect. Emission never blocks.
type gatherHandler[V, R any] struct {
	out *[]V
}

// Dispatch implements kont.Handler via type switch on the operation set.
func (h gatherHandler[V, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	switch o := op.(type) {
	case Visit[V]:
		*h.out = append(*h.out, o.Value)
		return struct{}{}, true
	case End[V]:
		return struct{}{}, true
	}
	panic("trav: unhandled effect in gatherHandler")
}

// Gather runs a Cont-world traversal protocol, collecting every emitted
// value in order. No sink, no queue: the collecting handler appends
// synchronously on the calling goroutine.
func Gather[V, R any](protocol kont.Eff[R]) (R, []V) {
	var out []V
	h := gatherHandler[V, R]{out: &out}
	r := kont.Handle(protocol, h)
	return r, out
}

// GatherExpr runs an Expr-world traversal protocol, collecting every
// emitted value in order.
func GatherExpr[V, R any](protocol kont.Expr[R]) (R, []V) {
	var out []V
	h := gatherHandler[V, R]{out: &out}
	r := kont.HandleExpr(protocol, h)
	return r, out
}

// Exec runs a Cont-world traversal protocol delivering into sink.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[V, R any](sink *Sink[V], protocol kont.Eff[R]) R {
	h := sinkHandler[V, R]{ctx: &sink.ctx}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world traversal protocol delivering into sink.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[V, R any](sink *Sink[V], protocol kont.Expr[R]) R {
	h := sinkHandler[V, R]{ctx: &sink.ctx}
	return kont.HandleExpr(protocol, h)
}
