// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav

import "code.hybscloud.com/kont"

// Reify converts a Cont-world traversal protocol to Expr-world: closure
// continuations become frame data. The resulting Expr can be evaluated
// with ExecExpr or GatherExpr, or stepped with Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world traversal protocol to Cont-world:
// frame data becomes closure continuations. The resulting Eff can be
// evaluated with Exec or Gather.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
