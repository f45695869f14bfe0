package storage

import "testing"

func TestRegisterAssignsDenseAddressesAfterHeader(t *testing.T) {
	p := New()

	a := p.Register("foo")
	if a != headerSize {
		t.Fatalf("first address = %d, want %d", a, headerSize)
	}

	b := p.Register("barbaz")
	wantB := headerSize + entrySize("foo")
	if b != wantB {
		t.Fatalf("second address = %d, want %d", b, wantB)
	}
}

func TestRegisterDedupsIdenticalText(t *testing.T) {
	p := New()

	a := p.Register("same")
	p.Register("other")
	b := p.Register("same")

	if a != b {
		t.Fatalf("repeated registration returned %d, want %d", b, a)
	}
	if len(p.Entries()) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(p.Entries()))
	}
}

func TestSizeMatchesEntryLayout(t *testing.T) {
	p := New()
	p.Register("a")
	p.Register("bb")

	want := entrySize("a") + entrySize("bb")
	if p.Size() != want {
		t.Fatalf("Size() = %d, want %d", p.Size(), want)
	}
}

func TestEntriesPreservesRegistrationOrder(t *testing.T) {
	p := New()
	p.Register("first")
	p.Register("second")
	p.Register("third")

	got := p.Entries()
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Entries()[%d] = %q, want %q", i, got[i], w)
		}
	}
}
