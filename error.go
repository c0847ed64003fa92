// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import "fmt"

// CyclicStructureError reports a violated acyclicity precondition: a node
// already present on the active continuation stack was pushed again.
// Fatal — the traversal aborts immediately with no partial-result
// guarantee and must not be retried.
//
// Only produced when cycle checking is enabled (WithCycleCheck); without
// it a cyclic graph is undefined behavior, as for any precondition
// violation.
type CyclicStructureError struct {
	// Serial identifies the traversal that detected the cycle.
	Serial Serial
	// Depth is the stack depth at which the repeated push occurred.
	Depth int
}

func (e *CyclicStructureError) Error() string {
	return fmt.Sprintf("trav: cyclic structure in traversal %d at depth %d", e.Serial, e.Depth)
}
