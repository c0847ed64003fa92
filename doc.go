// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trav provides stack-safe binary tree traversal via defunctionalized
// continuations on [code.hybscloud.com/kont].
//
// The recursive in-order visit is rewritten as data: each suspended call
// becomes a frame, the implicit call stack becomes an explicit stack whose
// depth is bounded by tree height, and a trampoline loop interprets the
// frames in exactly the recursive visitation order.
//
// # Architecture
//
//   - Core: [Node] is immutable pure data. [Kont] is the two-variant
//     continuation encoding ([Done], [Pending]); [Traversal] interprets its
//     flat-stack form with a descend/resume loop.
//   - Drivers: [InOrder] yields a lazy pull sequence supporting early
//     abandonment. [Collect] and [CollectChecked] run to completion.
//     [PreOrder] and [PostOrder] carry their own frame variant sets.
//   - Delivery: [Sink] is a bounded lock-free SPSC queue via
//     [code.hybscloud.com/lfq]. Emission is non-blocking and returns
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and
//     defunctionalized (Expr-world) evaluation of traversal protocols.
//
// # API Topologies
//
//   - Operations: [Visit], [End].
//   - Cont-world: [VisitThen], [EndDone], [VisitAll]. Run with [Gather] or [Exec].
//   - Expr-world: [ExprVisitThen], [ExprEndDone], [ExprVisitAll]. Run with
//     [GatherExpr] or [ExecExpr]. Bridge via [Reify] and [Reflect].
//   - Stepping: [Step] and [Advance] evaluate a traversal one emission at a
//     time. [Stream] interleaves producer and consumer on one goroutine.
//
// # Example
//
//	root := trav.NewNode(4,
//		trav.NewNode(2, trav.Leaf(1), trav.Leaf(3)),
//		trav.Leaf(5),
//	)
//	for v := range trav.InOrder(root) {
//		fmt.Println(v) // 1 2 3 4 5
//	}
package trav
