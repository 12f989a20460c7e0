// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar

import (
	"code.hybscloud.com/kont"
)

// FillThen fills the cell with v and then continues with next.
// Fuses Perform(Fill[T]{Value: v}) + Then.
func FillThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Fill[T]{Value: v}), next)
}

// TakeBind takes the value out of the cell and passes it to f.
// Fuses Perform(Take[T]{}) + Bind.
func TakeBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Take[T]{}), f)
}

// PeekBind reads the value without consuming it and passes it to f.
// Fuses Perform(Peek[T]{}) + Bind.
func PeekBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Peek[T]{}), f)
}

// ProbeBind passes the currently-filled flag to f. Never blocks,
// so it composes with Loop into polling without suspension retries.
// Fuses Perform(Probe{}) + Bind.
func ProbeBind[B any](f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Probe{}), f)
}
