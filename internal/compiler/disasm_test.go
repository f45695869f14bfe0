package compiler

import "testing"

func TestDisassembleRendersTrivialAlias(t *testing.T) {
	sr := NewSubroutine("X")
	sr.PushOp(OpString)
	sr.End()
	sr.Ops = append(sr.Ops, byte(OpReturn))

	out := Disassemble(sr, "X")
	if !contains(out, "String") || !contains(out, "Return") {
		t.Fatalf("Disassemble output missing expected opcodes: %q", out)
	}
}

func TestDisassembleAdvancesByParamWidth(t *testing.T) {
	sr := NewSubroutine("F")
	sr.PushOp(OpCall)
	sr.PushUint32(7)
	sr.PushUint16(2)
	sr.End()

	out := Disassemble(sr, "F")
	if !contains(out, "#7") || !contains(out, "2 args") {
		t.Fatalf("Disassemble output missing Call operands: %q", out)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
