// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

// Option configures a Traversal.
type Option func(o *options)

type options struct {
	cycleCheck bool
	heightHint int
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithCycleCheck enables detection of cyclic node graphs. The traversal
// fails with CyclicStructureError the first time a node already present
// on the active stack is pushed again. Costs one map entry per live frame.
func WithCycleCheck() Option {
	return func(o *options) {
		o.cycleCheck = true
	}
}

// WithHeightHint pre-sizes the continuation stack for trees of known
// height, avoiding growth reallocations during the descend phase.
// Non-positive hints are ignored.
func WithHeightHint(h int) Option {
	return func(o *options) {
		if h > 0 {
			o.heightHint = h
		}
	}
}
