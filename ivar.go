// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

// Disposer is implemented by payloads that own external resources.
// When the last handle of an ivar drops while a filled value was never
// taken, the value's Dispose method runs exactly once before the cell
// is abandoned. A taken value is never disposed by the ivar; ownership
// moved to the taker.
type Disposer interface {
	Dispose()
}

// Rd is the reading handle of an ivar.
//
// Rd may be cloned so that multiple places can peek at the result.
// All clones alias one cell: once any of them takes the value, every
// other observes the empty post-take state. Callers that need the
// value in several places should share it behind a pointer and use
// Peek instead of Take.
type Rd[T any] struct {
	inner handle[T]
}

// Peek returns the filled value without consuming it. Reports false
// if the value has either not been filled or already been taken.
// For reference-typed payloads the returned value aliases the stored
// one.
func (r *Rd[T]) Peek() (T, bool) {
	return r.cell().peek()
}

// Take moves the value out of the ivar, emptying it. The first call
// after a fill — across this handle and all of its clones — wins;
// every subsequent Take or Peek reports false.
func (r *Rd[T]) Take() (T, bool) {
	return r.cell().take()
}

// IsFilled reports whether the ivar currently holds a payload.
// True strictly between fill and take.
func (r *Rd[T]) IsFilled() bool {
	return r.cell().isCurrentlyFilled()
}

// WasEverFilled reports whether the ivar was filled at any point in
// time. Once an ivar stops being filled it will never be filled
// again, so this stays true after a take.
func (r *Rd[T]) WasEverFilled() bool {
	return r.cell().wasEverFilled()
}

// Clone returns an independent read handle aliasing the same cell,
// adding a strong ref. A take through any clone is visible to all.
func (r *Rd[T]) Clone() *Rd[T] {
	if r.inner.cell == nil {
		panic("ivar: use of released read handle")
	}
	return &Rd[T]{inner: r.inner.makeRef()}
}

// Drop releases this read handle's reference. Idempotent; using the
// handle after Drop panics.
func (r *Rd[T]) Drop() {
	r.inner.drop()
}

func (r *Rd[T]) cell() *cell[T] {
	if r.inner.cell == nil {
		panic("ivar: use of released read handle")
	}
	return r.inner.cell
}

// Wr is the writing handle of an ivar.
//
// Wr is single-use: Fill spends the handle, and there is no way to
// obtain a second usable write handle for the same cell. A second
// Fill is a programming error and panics rather than returning a
// recoverable result.
type Wr[T any] struct {
	inner handle[T]
}

// Fill places the payload into the ivar and spends the write handle,
// releasing its reference. Panics if the handle was already spent by
// an earlier Fill or Drop.
func (w *Wr[T]) Fill(v T) {
	if w.inner.cell == nil {
		panic("ivar: fill on spent write handle")
	}
	w.inner.cell.fill(v)
	w.inner.drop()
}

// Drop releases a write handle that will never fill. Idempotent;
// dropping after Fill is a no-op. The read side then observes a
// permanently unfilled ivar.
func (w *Wr[T]) Drop() {
	w.inner.drop()
}

// New creates an ivar and returns its reading and writing handles.
// The write side holds the initial reference and the read side derives
// a second one, so the cell lives until both families of handles have
// dropped. This is the only way to obtain handles.
func New[T any]() (*Rd[T], *Wr[T]) {
	wr := newHandle[T]()
	rd := wr.makeRef()
	return &Rd[T]{inner: rd}, &Wr[T]{inner: wr}
}
