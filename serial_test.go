// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar_test

import (
	"testing"

	"code.hybscloud.com/ivar"
)

func TestSerialMonotonic(t *testing.T) {
	ep1 := ivar.Open()
	ep2 := ivar.Open()
	ep3 := ivar.Open()
	defer ep1.Close()
	defer ep2.Close()
	defer ep3.Close()

	s1 := ep1.Serial()
	s2 := ep2.Serial()
	s3 := ep3.Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}
