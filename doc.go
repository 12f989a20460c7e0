// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ivar provides a reference-counted single-assignment cell
// with split read and write capabilities, plus an algebraic-effect
// surface on [code.hybscloud.com/kont].
//
// An ivar is a hole that can be filled once and taken once. [New]
// returns the two handles: a cloneable [Rd] for probing and taking
// the value, and a single-use [Wr] whose [Wr.Fill] spends the handle,
// making a second fill inexpressible through the public surface.
//
// # Architecture
//
//   - Storage: one heap cell per ivar, shared by all handles. Filled
//     flags and the strong-ref count pack into a single 32-bit state
//     word; the cell is released exactly when the count reaches zero,
//     disposing a filled-but-never-taken payload (see [Disposer]).
//   - Probes: [Rd.Peek] and [Rd.Take] are non-blocking; absence is a
//     result, not an error. At most one take ever succeeds, across
//     every clone of the read handle.
//   - Single goroutine: state-word updates are plain loads and stores.
//     Handles must not be shared across goroutines without external
//     synchronization; a concurrent variant would be a different
//     primitive.
//
// # API Topologies
//
//   - Handles: [New], [Rd.Peek], [Rd.Take], [Rd.IsFilled],
//     [Rd.WasEverFilled], [Rd.Clone], [Rd.Drop], [Wr.Fill], [Wr.Drop].
//   - Operations: [Fill], [Take], [Peek], [Probe], dispatched on an
//     [Endpoint] created by [Open].
//   - Cont-world: [FillThen], [TakeBind], [PeekBind], [ProbeBind].
//   - Expr-world: Zero-allocation variants [ExprFillThen],
//     [ExprTakeBind], [ExprPeekBind], [ExprProbeBind]. Bridge via
//     [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop], e.g. Probe polling.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError])
//     evaluate computations one effect at a time; [Advance] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] while the cell is
//     unfilled, leaving the suspension retryable.
//   - Blocking: [Exec], [Run] (and Error/Expr variants) wait past the
//     readiness boundary using adaptive backoff; [Run] interleaves a
//     producer and a consumer on the calling goroutine.
//
// # Example
//
//	rd, wr := ivar.New[int]()
//	if _, ok := rd.Take(); ok {
//		panic("unreachable: not filled yet")
//	}
//	wr.Fill(1)
//	v, _ := rd.Peek() // 1, cell still filled
//	v, _ = rd.Take()  // 1, cell now empty forever
//	_ = v
//	rd.Drop()
package ivar
