// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

// State word layout. The two high bits are flags; the low 30 bits
// count strong references.
const (
	everFilledBit      uint32 = 1 << 31
	currentlyFilledBit uint32 = 1 << 30
	strongRefsMask     uint32 = currentlyFilledBit - 1
)

// cell is the heap-resident storage shared by every handle of one ivar.
// The filled flags and the reference count live in a single packed
// state word, keeping per-instance overhead at 32 bits beside the
// payload.
//
// All state-word updates are plain loads and stores: cells belong to
// exactly one goroutine at a time and must not be mutated concurrently
// without external synchronization.
type cell[T any] struct {
	data T
	// bit 31 — was this ivar ever filled?
	// bit 30 — is this ivar currently filled?
	// bits 0–29 — count of strong refs to this cell.
	meta uint32
}

// newCell allocates a cell with a single strong ref for the creator,
// both filled flags clear, and the payload at its zero value.
func newCell[T any]() *cell[T] {
	return &cell[T]{meta: 1}
}

// wasEverFilled reports whether fill ever ran on this cell.
// Monotonic: once set it never clears.
func (c *cell[T]) wasEverFilled() bool {
	return c.meta&everFilledBit != 0
}

// isCurrentlyFilled reports whether a payload is present and not yet
// taken. The payload is valid exactly while this holds.
func (c *cell[T]) isCurrentlyFilled() bool {
	return c.meta&currentlyFilledBit != 0
}

func (c *cell[T]) strongRefs() uint32 {
	return c.meta & strongRefsMask
}

func (c *cell[T]) incRef() {
	c.meta++
}

// decRef removes one strong ref and reports whether the count reached
// zero, signalling the caller to run release.
func (c *cell[T]) decRef() bool {
	if c.strongRefs() == 0 {
		panic("ivar: refcount underflow")
	}
	c.meta--
	return c.strongRefs() == 0
}

// fill stores the payload and sets both filled flags in one state-word
// update. The one-shot guarantee is enforced at the handle layer;
// fill itself does not check.
func (c *cell[T]) fill(v T) {
	c.data = v
	c.meta |= everFilledBit | currentlyFilledBit
}

// take moves the payload out, clearing the currently-filled flag but
// leaving ever-filled set. Storage is zeroed so the cell stops
// retaining whatever the payload referenced. At most one take ever
// succeeds; later calls report no value.
func (c *cell[T]) take() (T, bool) {
	if !c.isCurrentlyFilled() {
		var zero T
		return zero, false
	}
	v := c.data
	var zero T
	c.data = zero
	c.meta &^= currentlyFilledBit
	return v, true
}

// peek returns the payload without consuming it. Callable any number
// of times; reports no value before fill and after take.
func (c *cell[T]) peek() (T, bool) {
	if !c.isCurrentlyFilled() {
		var zero T
		return zero, false
	}
	return c.data, true
}

// release runs exactly once, when the last strong ref drops. A payload
// that was filled but never taken is disposed here so that it is never
// leaked; a taken payload already belongs to whoever took it.
func (c *cell[T]) release() {
	if !c.isCurrentlyFilled() {
		return
	}
	if d, ok := any(c.data).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	c.data = zero
	c.meta &^= currentlyFilledBit
}
