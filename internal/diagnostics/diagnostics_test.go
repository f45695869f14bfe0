package diagnostics

import "testing"

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(CannotFind, "x.ts", 10, 12)
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestErrorMessageIncludesCodeName(t *testing.T) {
	err := New(UnsupportedSyntax, "x.ts", 0, 1)
	msg := err.Error()
	if want := "UnsupportedSyntax"; !contains(msg, want) {
		t.Fatalf("Error() = %q, want it to contain %q", msg, want)
	}
}

func TestCodeStringUnknownDefault(t *testing.T) {
	if got := Code(999).String(); got != "Unknown" {
		t.Fatalf("Code(999).String() = %q, want Unknown", got)
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
