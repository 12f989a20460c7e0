// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar_test

import (
	"testing"

	"code.hybscloud.com/ivar"
	"code.hybscloud.com/kont"
)

func TestLoopProbePolling(t *testing.T) {
	// Consumer polls with Probe (never blocks) until the producer
	// fills, counting the polls, then takes the value.
	consumer := ivar.Loop(0, func(polls int) kont.Eff[kont.Either[int, int]] {
		return ivar.ProbeBind(func(filled bool) kont.Eff[kont.Either[int, int]] {
			if !filled {
				return kont.Pure(kont.Left[int, int](polls + 1))
			}
			return ivar.TakeBind(func(n int) kont.Eff[kont.Either[int, int]] {
				return kont.Pure(kont.Right[int, int](n))
			})
		})
	})
	producer := ivar.FillThen(64, kont.Pure(struct{}{}))

	consumerResult, _ := ivar.Run[int, struct{}](consumer, producer)
	if consumerResult != 64 {
		t.Fatalf("consumer got %d, want 64", consumerResult)
	}
}

func TestExprLoopProbePolling(t *testing.T) {
	consumer := ivar.ExprLoop(struct{}{}, func(_ struct{}) kont.Expr[kont.Either[struct{}, int]] {
		return ivar.ExprProbeBind(func(filled bool) kont.Expr[kont.Either[struct{}, int]] {
			if !filled {
				return kont.ExprReturn(kont.Left[struct{}, int](struct{}{}))
			}
			return ivar.ExprTakeBind(func(n int) kont.Expr[kont.Either[struct{}, int]] {
				return kont.ExprReturn(kont.Right[struct{}, int](n))
			})
		})
	})
	producer := ivar.ExprFillThen(128, kont.ExprReturn(struct{}{}))

	consumerResult, _ := ivar.RunExpr[int, struct{}](consumer, producer)
	if consumerResult != 128 {
		t.Fatalf("consumer got %d, want 128", consumerResult)
	}
}

func TestLoopPureCountdown(t *testing.T) {
	// Loop without effects still trampolines to completion.
	ep := ivar.Open()
	defer ep.Close()
	result := ivar.Exec(ep, ivar.Loop(5, func(n int) kont.Eff[kont.Either[int, int]] {
		if n == 0 {
			return kont.Pure(kont.Right[int, int](0))
		}
		return kont.Pure(kont.Left[int, int](n - 1))
	}))
	if result != 0 {
		t.Fatalf("got %d, want 0", result)
	}
}
