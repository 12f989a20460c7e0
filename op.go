// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Fill is the effect operation for filling the cell with a value of
// type T. Perform(Fill[T]{Value: v}) spends the endpoint's write
// capability; it never blocks, and performing it twice on one
// endpoint is a programming error that panics.
type Fill[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchIVar handles Fill on the endpoint's write capability.
func (f Fill[T]) DispatchIVar(ctx *ivarContext) (kont.Resumed, error) {
	ctx.wr.Fill(any(f.Value))
	return struct{}{}, nil
}

// Take is the effect operation for moving the value out of the cell.
// Perform(Take[T]{}) empties the cell for every later Take or Peek.
type Take[T any] struct {
	kont.Phantom[T]
}

// DispatchIVar handles Take on the endpoint's read capability.
// Non-blocking: returns iox.ErrWouldBlock while the cell is unfilled.
// A take after the value was already consumed is terminal, not
// retryable, and panics.
func (Take[T]) DispatchIVar(ctx *ivarContext) (kont.Resumed, error) {
	v, ok := ctx.rd.Take()
	if !ok {
		if ctx.rd.WasEverFilled() {
			panic("ivar: take after value already taken")
		}
		return nil, iox.ErrWouldBlock
	}
	return v.(T), nil
}

// Peek is the effect operation for reading the value without
// consuming it. Perform(Peek[T]{}) leaves the cell filled.
type Peek[T any] struct {
	kont.Phantom[T]
}

// DispatchIVar handles Peek on the endpoint's read capability.
// Non-blocking: returns iox.ErrWouldBlock while the cell is unfilled.
// A peek after the value was consumed is terminal and panics.
func (Peek[T]) DispatchIVar(ctx *ivarContext) (kont.Resumed, error) {
	v, ok := ctx.rd.Peek()
	if !ok {
		if ctx.rd.WasEverFilled() {
			panic("ivar: peek after value already taken")
		}
		return nil, iox.ErrWouldBlock
	}
	return v.(T), nil
}

// probeTrue and probeFalse are pre-boxed Resumed values for Probe
// dispatch, avoiding per-dispatch heap escape when boxing bool.
var (
	probeTrue  kont.Resumed = true
	probeFalse kont.Resumed = false
)

// Probe is the effect operation for testing whether the cell is
// currently filled. Perform(Probe{}) resumes with a bool and never
// blocks, making it usable in polling loops.
type Probe struct {
	kont.Phantom[bool]
}

// DispatchIVar handles Probe on the endpoint's read capability.
// Never blocks.
func (Probe) DispatchIVar(ctx *ivarContext) (kont.Resumed, error) {
	if ctx.rd.IsFilled() {
		return probeTrue, nil
	}
	return probeFalse, nil
}
