// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run opens an endpoint, runs both Cont-world computations against it,
// and returns both results. Interleaves execution of both sides on the
// calling goroutine using adaptive backoff (iox.Backoff) when neither
// side can make progress — the single-threaded producer/consumer
// hookup the primitive is designed for. Does not spawn goroutines or
// create channels. The endpoint is closed before returning, so a
// filled-but-never-taken payload is disposed deterministically.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr opens an endpoint, runs both Expr-world computations against
// it, and returns both results. Interleaves execution of both sides on
// the calling goroutine using adaptive backoff (iox.Backoff) when
// neither side can make progress. Does not spawn goroutines or create
// channels. The endpoint is closed before returning.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	ep := Open()
	defer ep.Close()
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var iopA ivarDispatcher
	if suspA != nil {
		iopA = suspA.Op().(ivarDispatcher)
	}
	var iopB ivarDispatcher
	if suspB != nil {
		iopB = suspB.Op().(ivarDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := iopA.DispatchIVar(&ep.ctx)
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					iopA = suspA.Op().(ivarDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := iopB.DispatchIVar(&ep.ctx)
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					iopB = suspB.Op().(ivarDispatcher)
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
