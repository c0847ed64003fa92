// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/iox"
)

// Stream drives an in-order traversal of root, delivering each value to
// emit through a bounded lock-free queue, producer and consumer
// interleaved on the calling goroutine using adaptive backoff
// (iox.Backoff) when neither side can make progress. Does not spawn
// goroutines or create channels. Returns the number of values delivered.
//
// emit returning false abandons the traversal: the pending suspension
// is discarded, no further node is visited, and the stack is dropped.
func Stream[V any](root *Node[V], emit func(V) bool) int {
	sink := NewSink[V]()
	_, susp := Step[int](ExprVisitAll(root))
	delivered := 0
	var bo iox.Backoff

	for susp != nil {
		progress := false
		var err error
		_, susp, err = Advance(sink, susp)
		if err == nil {
			progress = true
		}
		for {
			v, derr := sink.TryRecv()
			if derr != nil {
				break
			}
			delivered++
			progress = true
			if !emit(v) {
				if susp != nil {
					susp.Discard()
				}
				return delivered
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}

	for {
		v, err := sink.TryRecv()
		if err != nil {
			break
		}
		delivered++
		if !emit(v) {
			return delivered
		}
	}
	return delivered
}
