// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ivar_test

import (
	"testing"

	"code.hybscloud.com/ivar"
)

// leakProbe counts Dispose calls, standing in for a payload that owns
// an external resource.
type leakProbe struct {
	disposed int
}

func (p *leakProbe) Dispose() {
	p.disposed++
}

func TestDisposeFilledNeverTaken(t *testing.T) {
	probe := &leakProbe{}
	rd, wr := ivar.New[*leakProbe]()

	wr.Fill(probe)
	if probe.disposed != 0 {
		t.Fatalf("disposed %d times before last drop, want 0", probe.disposed)
	}
	rd.Drop()
	if probe.disposed != 1 {
		t.Fatalf("disposed %d times after last drop, want 1", probe.disposed)
	}
}

func TestNoDisposeWhenTaken(t *testing.T) {
	probe := &leakProbe{}
	rd, wr := ivar.New[*leakProbe]()

	wr.Fill(probe)
	if _, ok := rd.Take(); !ok {
		t.Fatal("take reported no value")
	}
	rd.Drop()
	// ownership moved to the taker; the ivar must not dispose
	if probe.disposed != 0 {
		t.Fatalf("disposed %d times after take, want 0", probe.disposed)
	}
}

func TestNoDisposeWhenNeverFilled(t *testing.T) {
	rd, wr := ivar.New[*leakProbe]()
	// dropping all handles without fill or take is a valid,
	// leak-free terminal state
	wr.Drop()
	rd.Drop()
}

func TestDisposeAtLastCloneDrop(t *testing.T) {
	probe := &leakProbe{}
	rd, wr := ivar.New[*leakProbe]()
	cloneA := rd.Clone()
	cloneB := rd.Clone()

	wr.Fill(probe)
	rd.Drop()
	cloneA.Drop()
	if probe.disposed != 0 {
		t.Fatalf("disposed %d times while clone B still live, want 0", probe.disposed)
	}
	cloneB.Drop()
	if probe.disposed != 1 {
		t.Fatalf("disposed %d times after last clone dropped, want 1", probe.disposed)
	}
}

func TestDisposeWhenFillOutlivesReaders(t *testing.T) {
	probe := &leakProbe{}
	rd, wr := ivar.New[*leakProbe]()

	rd.Drop()
	// fill spends the last reference, so disposal happens right here
	wr.Fill(probe)
	if probe.disposed != 1 {
		t.Fatalf("disposed %d times, want 1", probe.disposed)
	}
}

func TestDoubleDropDoesNotDoubleDispose(t *testing.T) {
	probe := &leakProbe{}
	rd, wr := ivar.New[*leakProbe]()

	wr.Fill(probe)
	rd.Drop()
	rd.Drop()
	wr.Drop()
	if probe.disposed != 1 {
		t.Fatalf("disposed %d times, want exactly 1", probe.disposed)
	}
}
