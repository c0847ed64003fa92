// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/kont"
)

// Visit is the effect operation for emitting one traversal value.
// Perform(Visit[V]{Value: v}) signals "value ready" to the handler;
// what emission means — collecting, queue delivery — is the handler's
// concern, never the interpreter's.
type Visit[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// DispatchVisit delivers the value on the sink queue.
// Non-blocking: returns iox.ErrWouldBlock if the bounded SPSC queue is full.
func (op Visit[V]) DispatchVisit(ctx *sinkContext[V]) (kont.Resumed, error) {
	ctx.slot = op.Value
	if err := ctx.outQ.Enqueue(&ctx.slot); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// End is the effect operation marking traversal completion.
// Perform(End[V]{}) signals exhaustion to the sink's consumer.
type End[V any] struct {
	kont.Phantom[struct{}]
}

// DispatchVisit handles End on the sink.
// Atomically increments the end counter. Never blocks.
func (End[V]) DispatchVisit(ctx *sinkContext[V]) (kont.Resumed, error) {
	ctx.ended.Add(1)
	return struct{}{}, nil
}
