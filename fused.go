// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import (
	"code.hybscloud.com/kont"
)

// VisitThen emits a value and then continues with next.
// Fuses Perform(Visit[V]{Value: v}) + Then.
func VisitThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Visit[V]{Value: v}), next)
}

// EndDone marks traversal completion and returns a.
// Fuses Perform(End[V]{}) + Then + Pure.
func EndDone[V, A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(End[V]{}), kont.Pure(a))
}
