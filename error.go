// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// ivarErrorHandler handles both ivar and error effects.
// Ivar ops wait on ErrWouldBlock via iox.Backoff. Error ops
// short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type ivarErrorHandler[E, A any] struct {
	ctx    *ivarContext
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed IVar+Error handler.
// Dispatch order: IVar → Error.
func (h ivarErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if iop, ok := op.(ivarDispatcher); ok {
		return dispatchWait(h.ctx, iop), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("ivar: unhandled effect in ivarErrorHandler")
}

// ExecError runs an ivar computation with error handling on a
// pre-opened endpoint. Returns Either[E, R] — Right on success, Left
// on Throw. Blocks on iox.ErrWouldBlock via adaptive backoff, without
// spawning goroutines or creating channels.
func ExecError[E, R any](ep *Endpoint, computation kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](computation, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := ivarErrorHandler[E, R]{ctx: &ep.ctx, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr-world ivar computation with error
// handling on a pre-opened endpoint. Returns Either[E, R] — Right on
// success, Left on Throw. Blocks on iox.ErrWouldBlock via adaptive
// backoff, without spawning goroutines or creating channels.
func ExecErrorExpr[E, R any](ep *Endpoint, computation kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(computation, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := ivarErrorHandler[E, R]{ctx: &ep.ctx, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// RunError opens an endpoint, runs both Cont-world computations with
// error handling, and returns both results as Either values.
// Interleaves execution on the calling goroutine using adaptive
// backoff (iox.Backoff). Does not spawn goroutines or create channels.
func RunError[E, A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	return RunErrorExpr[E](Reify(a), Reify(b))
}

// RunErrorExpr opens an endpoint, runs both Expr-world computations
// with error handling, and returns both results as Either values.
// Interleaves execution on the calling goroutine using adaptive
// backoff (iox.Backoff). Does not spawn goroutines or create channels.
func RunErrorExpr[E, A, B any](a kont.Expr[A], b kont.Expr[B]) (kont.Either[E, A], kont.Either[E, B]) {
	ep := Open()
	defer ep.Close()
	resultA, suspA := StepError[E, A](a)
	resultB, suspB := StepError[E, B](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = AdvanceError[E](ep, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = AdvanceError[E](ep, suspB)
			if err == nil {
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

// StepError evaluates an ivar computation with error support until the
// first effect suspension. Returns (Either[E, R], nil) on completion
// or error, or (zero, suspension) if pending.
func StepError[E, R any](computation kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(computation, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation on the endpoint.
// Ivar ops are non-blocking (ErrWouldBlock). Error ops are eager:
// Throw discards the suspension and returns Left.
func AdvanceError[E, R any](ep *Endpoint, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	// Ivar ops: non-blocking dispatch
	if iop, ok := susp.Op().(ivarDispatcher); ok {
		v, err := iop.DispatchIVar(&ep.ctx)
		if err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("ivar: unhandled effect in AdvanceError")
}
