package compiler

import (
	"testing"

	"github.com/tsforge/tsc/internal/symbols"
)

func TestNewProgramDefaultsOptimizeOn(t *testing.T) {
	p := NewProgram()
	if !p.optimize {
		t.Fatalf("NewProgram() defaulted optimize to false")
	}
}

func TestPushUint16MainBodyLittleEndian(t *testing.T) {
	p := NewProgram()
	p.PushUint16(0x0102)
	if p.Ops[0] != 0x02 || p.Ops[1] != 0x01 {
		t.Fatalf("Ops = %v, want little-endian [0x02, 0x01]", p.Ops)
	}
}

func TestPushAddressLittleEndian(t *testing.T) {
	p := NewProgram()
	p.PushAddress(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i, w := range want {
		if p.Ops[i] != w {
			t.Fatalf("Ops = %v, want %v", p.Ops, want)
		}
	}
}

func TestPushErrorEncodesCodeLittleEndian(t *testing.T) {
	p := NewProgram()
	p.PushError(0x0102, 0, 1)
	// Ops[0] is OpError, Ops[1:3] is the little-endian code.
	if p.Ops[1] != 0x02 || p.Ops[2] != 0x01 {
		t.Fatalf("Ops[1:3] = %v, want little-endian [0x02, 0x01]", p.Ops[1:3])
	}
}

// TestPushErrorSourceMapPositionIsAlwaysZero covers `true; X;` where X is
// unresolved: the error's sourcemap entry must carry bytecode position 0,
// not the write offset where True already left bytes, since an error is
// located by its source span, not by where OpError happens to land.
func TestPushErrorSourceMapPositionIsAlwaysZero(t *testing.T) {
	p := NewProgram()
	p.PushOp(OpTrue)
	p.PushError(0x0102, 5, 6)

	entry := p.SourceMap[len(p.SourceMap)-1]
	if entry.bytecodePos != 0 {
		t.Fatalf("bytecodePos = %d, want 0", entry.bytecodePos)
	}
}

func TestPopSubroutineAppendsReturn(t *testing.T) {
	p := NewProgram()
	sym := p.PushSymbolForRoutine("X", symbols.TypeAlias, 0, 1)
	if _, err := p.PushSubroutine("X"); err != nil {
		t.Fatalf("PushSubroutine: %v", err)
	}
	p.PushOp(OpString)
	sr, err := p.PopSubroutine()
	if err != nil {
		t.Fatalf("PopSubroutine: %v", err)
	}
	if last := sr.Ops[len(sr.Ops)-1]; Op(last) != OpReturn {
		t.Fatalf("last op = %s, want Return", Op(last))
	}
	if sym.RoutineIndex == nil || *sym.RoutineIndex != sr.Index {
		t.Fatalf("symbol's routine index does not match popped subroutine")
	}
}

func TestPopSubroutineRejectsEmptyBody(t *testing.T) {
	p := NewProgram()
	p.PushSymbolForRoutine("X", symbols.TypeAlias, 0, 1)
	if _, err := p.PushSubroutine("X"); err != nil {
		t.Fatalf("PushSubroutine: %v", err)
	}
	if _, err := p.PopSubroutine(); err == nil {
		t.Fatalf("PopSubroutine on an empty body did not error")
	}
	if len(p.activeSubroutines) != 0 {
		t.Fatalf("PopSubroutine left %d subroutines active after an empty-body error, want 0", len(p.activeSubroutines))
	}
}

func TestPopSubroutineWithoutActiveErrors(t *testing.T) {
	p := NewProgram()
	if _, err := p.PopSubroutine(); err == nil {
		t.Fatalf("PopSubroutine with no active subroutine did not error")
	}
}

func TestFindSymbolAddressRoundTrip(t *testing.T) {
	p := NewProgram()
	sym := p.PushSymbol("T", symbols.TypeArgument, 0, 1)
	p.PushSymbolAddress(sym)
	// frame offset 0 (same frame), symbol index 0: four zero bytes.
	for i, b := range p.Ops {
		if b != 0 {
			t.Fatalf("Ops[%d] = %d, want 0", i, b)
		}
	}
}
