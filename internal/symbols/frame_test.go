package symbols

import "testing"

func TestPushSymbolRedeclarationBumpsCount(t *testing.T) {
	s := NewStack()

	first := s.PushSymbol("x", Variable, 0, 1, nil)
	if first.DeclarationCount != 1 {
		t.Fatalf("first DeclarationCount = %d, want 1", first.DeclarationCount)
	}

	second := s.PushSymbol("x", Variable, 5, 6, nil)

	if first != second {
		t.Fatalf("redeclaration returned a different symbol")
	}
	if second.DeclarationCount != 2 {
		t.Fatalf("DeclarationCount = %d, want 2", second.DeclarationCount)
	}
	if len(s.Current.Symbols) != 1 {
		t.Fatalf("frame grew on redeclaration: len = %d", len(s.Current.Symbols))
	}
}

func TestPushSymbolTypeVariableAlwaysFresh(t *testing.T) {
	s := NewStack()

	first := s.PushSymbol("T", TypeVariable, 0, 1, nil)
	second := s.PushSymbol("T", TypeVariable, 5, 6, nil)

	if first == second {
		t.Fatalf("two TypeVariable declarations collapsed into one symbol")
	}
	if len(s.Current.Symbols) != 2 {
		t.Fatalf("len(Symbols) = %d, want 2", len(s.Current.Symbols))
	}
}

func TestFindSymbolShadowsInnermostLatest(t *testing.T) {
	s := NewStack()
	s.PushSymbol("x", Variable, 0, 1, nil)

	s.Push()
	inner := s.PushSymbol("x", Variable, 2, 3, nil)

	got := s.FindSymbol("x")
	if got != inner {
		t.Fatalf("FindSymbol returned the outer declaration, not the inner shadow")
	}
}

func TestFindSymbolWithinFrameReturnsLatestDeclaration(t *testing.T) {
	s := NewStack()
	s.PushSymbol("y", Variable, 0, 1, nil)
	latest := s.PushSymbol("y", TypeVariable, 2, 3, nil)

	if got := s.FindSymbol("y"); got != latest {
		t.Fatalf("FindSymbol did not return the most recent declaration within the frame")
	}
}

func TestFrameOffsetCountsHops(t *testing.T) {
	s := NewStack()
	root := s.Current

	s.Push()
	s.Push()

	if off := s.FrameOffset(root); off != 2 {
		t.Fatalf("FrameOffset = %d, want 2", off)
	}
	if off := s.FrameOffset(s.Current); off != 0 {
		t.Fatalf("FrameOffset(current) = %d, want 0", off)
	}
}

func TestPopStopsAtRoot(t *testing.T) {
	s := NewStack()
	root := s.Current

	s.Pop()
	if s.Current != root {
		t.Fatalf("Pop() on the root frame moved the stack")
	}
}
