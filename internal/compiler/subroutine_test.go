package compiler

import "testing"

// pushCall writes a Call opcode with a 4-byte routine index and a 2-byte
// arg count, the shape Optimise() looks for at a tail section's end.
func pushCall(sr *Subroutine, routine uint32, argCount uint16) {
	sr.PushOp(OpCall)
	sr.PushUint32(routine)
	sr.PushUint16(argCount)
}

func TestOptimiseRewritesTailCallToTailCall(t *testing.T) {
	sr := NewSubroutine("F")
	pushCall(sr, 3, 1)
	sr.End()
	sr.Optimise()

	if Op(sr.Ops[0]) != OpTailCall {
		t.Fatalf("Ops[0] = %s, want TailCall", Op(sr.Ops[0]))
	}
}

func TestOptimiseSkipsBlockedSection(t *testing.T) {
	sr := NewSubroutine("F")
	pushCall(sr, 3, 1)
	sr.BlockTailCall()
	sr.End()
	sr.Optimise()

	if Op(sr.Ops[0]) != OpCall {
		t.Fatalf("Ops[0] = %s, want Call (blocked)", Op(sr.Ops[0]))
	}
}

func TestOptimiseSkipsSectionWithChild(t *testing.T) {
	sr := NewSubroutine("F")
	pushCall(sr, 3, 1)
	sr.PushSection()
	sr.PushOp(OpString)
	sr.PopSection()
	sr.End()
	sr.Optimise()

	if Op(sr.Ops[0]) != OpCall {
		t.Fatalf("Ops[0] = %s, want Call (root has a child section)", Op(sr.Ops[0]))
	}
}

func TestOptimisePromotesRestToRestReuseInTailSection(t *testing.T) {
	sr := NewSubroutine("F")
	// As in the emitter, the usage is registered before the Rest that
	// spreads the type argument is pushed.
	sr.RegisterTypeArgumentUsage(0)
	sr.PushOp(OpRest)
	sr.End()
	sr.Optimise()

	if Op(sr.Ops[0]) != OpRestReuse {
		t.Fatalf("Ops[0] = %s, want RestReuse", Op(sr.Ops[0]))
	}
}

func TestIgnoreNextSectionOpSuppressesBookkeepingOnce(t *testing.T) {
	sr := NewSubroutine("F")
	sr.IgnoreNextSectionOp()
	sr.PushOp(OpFrame) // suppressed: should not set lastOp/ops
	pushCall(sr, 0, 0)
	sr.End()
	sr.Optimise()

	if Op(sr.Ops[0]) != OpFrame {
		t.Fatalf("Ops[0] = %s, want Frame", Op(sr.Ops[0]))
	}
	// The Call at Ops[1] should still be rewritten since the suppressed
	// Frame op never became the section's lastOp.
	if Op(sr.Ops[1]) != OpTailCall {
		t.Fatalf("Ops[1] = %s, want TailCall", Op(sr.Ops[1]))
	}
}

func TestPushUint16LittleEndian(t *testing.T) {
	sr := NewSubroutine("F")
	sr.PushUint16(0x0102)
	if sr.Ops[0] != 0x02 || sr.Ops[1] != 0x01 {
		t.Fatalf("Ops = %v, want little-endian [0x02, 0x01]", sr.Ops)
	}
}

func TestPatchUint16RoundTrips(t *testing.T) {
	sr := NewSubroutine("F")
	sr.PushUint16(0)
	sr.PatchUint16(0, 0xABCD)
	if sr.Ops[0] != 0xCD || sr.Ops[1] != 0xAB {
		t.Fatalf("Ops = %v, want little-endian [0xCD, 0xAB]", sr.Ops)
	}
}
