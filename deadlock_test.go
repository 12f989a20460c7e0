// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar_test

import (
	"testing"
	"time"

	"code.hybscloud.com/ivar"
	"code.hybscloud.com/kont"
)

func TestRunExprDeadlockCoverage(t *testing.T) {
	// Both sides take and nobody fills: Run backs off forever.
	a := ivar.ExprTakeBind(func(n int) kont.Expr[struct{}] { return kont.ExprReturn(struct{}{}) })
	b := ivar.ExprTakeBind(func(n int) kont.Expr[struct{}] { return kont.ExprReturn(struct{}{}) })

	go func() {
		ivar.RunExpr[struct{}, struct{}](a, b)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to hit bo.Wait()
}

func TestRunErrorExprDeadlockCoverage(t *testing.T) {
	a := ivar.ExprTakeBind(func(n int) kont.Expr[struct{}] { return kont.ExprReturn(struct{}{}) })
	b := ivar.ExprTakeBind(func(n int) kont.Expr[struct{}] { return kont.ExprReturn(struct{}{}) })

	go func() {
		ivar.RunErrorExpr[string, struct{}, struct{}](a, b)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to hit bo.Wait()
}
