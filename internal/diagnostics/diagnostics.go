// Package diagnostics defines the error codes the emitter can embed into
// a compiled program, and the Go-side error type wrapping one occurrence
// for tooling that wants a Go error rather than an in-image OpError.
package diagnostics

import "fmt"

// Code identifies a class of compile error. Values are stable across
// releases since they're serialized into bytecode images as the OpError
// operand — the VM, not this package, decides how to render them.
type Code uint16

const (
	// CannotFind reports a type or value reference to an undeclared name.
	CannotFind Code = iota
	// DuplicateDeclaration reports a second declaration of a name already
	// bound in the same frame; every redeclaration is reported, overloads
	// included. Raised by emitTypeAlias, emitFunctionDeclaration, and
	// emitVariableDeclaration when a symbol's DeclarationCount exceeds 1.
	DuplicateDeclaration
	// UnsupportedSyntax reports an AST node kind the emitter has no
	// lowering rule for.
	UnsupportedSyntax
)

func (c Code) String() string {
	switch c {
	case CannotFind:
		return "CannotFind"
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case UnsupportedSyntax:
		return "UnsupportedSyntax"
	default:
		return "Unknown"
	}
}

// Error is a single diagnostic raised while lowering a source span. The
// emitter collects these even as it keeps emitting OpError into the
// program, so a caller can report every problem in one pass rather than
// stopping at the first.
type Error struct {
	Code     Code
	File     string
	Pos, End uint32
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Pos, e.Code)
}

// New builds a diagnostic for code occurring at [pos,end) in file.
func New(code Code, file string, pos, end uint32) *Error {
	return &Error{Code: code, File: file, Pos: pos, End: end}
}
