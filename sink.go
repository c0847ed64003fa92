// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// sinkCapacity is the bounded capacity for traversal delivery queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const sinkCapacity = 4

// sinkContext holds the lock-free delivery queue for a single sink.
// One direction only: the traversal produces, the consumer drains.
type sinkContext[V any] struct {
	outQ  *lfq.SPSC[V]
	ended *atomix.Uint32
	slot  V
}

// visitDispatcher is the structural interface for traversal emissions.
// DispatchVisit is non-blocking: it returns iox.ErrWouldBlock at the
// delivery boundary when the bounded queue cannot make progress.
type visitDispatcher[V any] interface {
	DispatchVisit(ctx *sinkContext[V]) (kont.Resumed, error)
}

// sinkHandler implements kont.Handler for visit effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch
// into blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type sinkHandler[V, R any] struct {
	ctx *sinkContext[V]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h sinkHandler[V, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	vop, ok := op.(visitDispatcher[V])
	if !ok {
		panic("trav: unhandled effect in sinkHandler")
	}
	return dispatchWait(h.ctx, vop), true
}

// dispatchWait blocks until DispatchVisit succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (consumer readiness waiting).
func dispatchWait[V any](ctx *sinkContext[V], vop visitDispatcher[V]) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := vop.DispatchVisit(ctx)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Sink is the consumer side of a traversal's bounded delivery queue.
// Transport is a single lock-free SPSC ring from lfq: the traversal is
// the producer, the sink's owner the consumer.
type Sink[V any] struct {
	ctx    sinkContext[V]
	serial Serial
}

// sinkAlloc holds the sink, queue, and end counter in a single
// allocation. The SPSC queue is embedded as a value; only its ring
// buffer is a separate heap object.
type sinkAlloc[V any] struct {
	s     Sink[V]
	ended atomix.Uint32
	out   lfq.SPSC[V]
}

// NewSink creates a delivery sink for one traversal.
//
// Visit operations are non-blocking: DispatchVisit returns
// iox.ErrWouldBlock when the consumer has not yet drained the queue.
func NewSink[V any]() *Sink[V] {
	a := &sinkAlloc[V]{}
	a.out.Init(sinkCapacity)
	a.s = Sink[V]{
		ctx: sinkContext[V]{
			outQ:  &a.out,
			ended: &a.ended,
		},
		serial: nextSerial(),
	}
	return &a.s
}

// Serial returns the serial number assigned to this sink.
func (s *Sink[V]) Serial() Serial {
	return s.serial
}

// TryRecv dequeues the next delivered value without blocking.
// Returns iox.ErrWouldBlock when the queue is empty.
func (s *Sink[V]) TryRecv() (V, error) {
	return s.ctx.outQ.Dequeue()
}

// Ended reports whether an End operation was dispatched on this sink.
func (s *Sink[V]) Ended() bool {
	return s.ctx.ended.Load() > 0
}
