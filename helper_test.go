// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar_test

import (
	"code.hybscloud.com/ivar"
	"code.hybscloud.com/kont"
)

// execExpr drives a computation to completion on ep via Step+Advance
// loop. Retries on iox.ErrWouldBlock (cell not filled yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](ep *ivar.Endpoint, computation kont.Expr[R]) R {
	result, susp := ivar.Step[R](computation)
	for susp != nil {
		var err error
		result, susp, err = ivar.Advance(ep, susp)
		if err != nil {
			continue
		}
	}
	return result
}
