// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

// handle is an owning reference to a cell. It is not exported: a bare
// handle permits both reading and writing, and the public surface
// splits those capabilities between Rd and Wr.
//
// Handles are never copied implicitly; sharing happens only through
// makeRef, which accounts for the new reference.
type handle[T any] struct {
	cell *cell[T]
}

// newHandle allocates a fresh cell and wraps the initial reference.
func newHandle[T any]() handle[T] {
	return handle[T]{cell: newCell[T]()}
}

// makeRef adds a strong ref and returns a second handle aliasing the
// same cell. The cell lives as long as its longest-held handle.
func (h *handle[T]) makeRef() handle[T] {
	h.cell.incRef()
	return handle[T]{cell: h.cell}
}

// drop removes this handle's reference. When the count reaches zero
// the cell is released, disposing any still-present payload. Dropping
// an already-detached handle is a no-op, so drop is idempotent.
func (h *handle[T]) drop() {
	if h.cell == nil {
		return
	}
	if h.cell.decRef() {
		h.cell.release()
	}
	h.cell = nil
}
