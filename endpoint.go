// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// ivarContext holds the type-erased handle pair for effect dispatch.
// Typed operations assert payloads back at the dispatch boundary.
type ivarContext struct {
	rd *Rd[any]
	wr *Wr[any]
}

// ivarDispatcher is the structural interface for ivar operations.
// DispatchIVar is non-blocking: it returns iox.ErrWouldBlock at the
// readiness boundary, when the cell has not been filled yet.
type ivarDispatcher interface {
	DispatchIVar(ctx *ivarContext) (kont.Resumed, error)
}

// ivarHandler implements kont.Handler for ivar effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch
// into blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type ivarHandler[R any] struct {
	ctx *ivarContext
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h ivarHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	iop, ok := op.(ivarDispatcher)
	if !ok {
		panic("ivar: unhandled effect in ivarHandler")
	}
	return dispatchWait(h.ctx, iop), true
}

// dispatchWait blocks until DispatchIVar succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (readiness waiting).
func dispatchWait(ctx *ivarContext, iop ivarDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := iop.DispatchIVar(ctx)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Endpoint is a dispatch site for ivar effects: one single-assignment
// cell behind a read and a write capability. Producer and consumer
// computations dispatch on the same endpoint and communicate only
// through the shared cell.
type Endpoint struct {
	ctx    ivarContext
	serial Serial
}

// Serial returns the serial number assigned to this endpoint.
func (ep *Endpoint) Serial() Serial {
	return ep.serial
}

// Close releases both capabilities of the endpoint's pair, disposing
// a filled-but-never-taken payload. Idempotent. Dispatching on a
// closed endpoint panics.
func (ep *Endpoint) Close() {
	ep.ctx.rd.Drop()
	ep.ctx.wr.Drop()
}

// Open creates an endpoint around a fresh ivar pair.
//
// Ivar operations are non-blocking: DispatchIVar returns
// iox.ErrWouldBlock while the cell has not been filled, so drivers
// can interleave producer and consumer computations on one goroutine.
func Open() *Endpoint {
	rd, wr := New[any]()
	return &Endpoint{
		ctx:    ivarContext{rd: rd, wr: wr},
		serial: nextSerial(),
	}
}
