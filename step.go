// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/kont"
)

// Step evaluates an ivar computation until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](computation kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(computation)
}

// Advance dispatches the suspended ivar operation on the endpoint.
// DispatchIVar is non-blocking: it returns iox.ErrWouldBlock while
// the cell has not been filled (the readiness boundary).
//
// On success (nil error), the suspension is consumed and the
// computation advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be
// retried after the fill happens.
func Advance[R any](ep *Endpoint, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	iop, ok := susp.Op().(ivarDispatcher)
	if !ok {
		panic("ivar: unhandled effect in Advance")
	}
	v, err := iop.DispatchIVar(&ep.ctx)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
