// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world ivar computation on a pre-opened endpoint.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](ep *Endpoint, computation kont.Eff[R]) R {
	h := ivarHandler[R]{ctx: &ep.ctx}
	return kont.Handle(computation, h)
}

// ExecExpr runs an Expr-world ivar computation on a pre-opened endpoint.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](ep *Endpoint, computation kont.Expr[R]) R {
	h := ivarHandler[R]{ctx: &ep.ctx}
	return kont.HandleExpr(computation, h)
}
