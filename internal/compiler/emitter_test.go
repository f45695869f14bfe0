package compiler

import (
	"testing"

	"github.com/tsforge/tsc/internal/ast"
	"github.com/tsforge/tsc/internal/diagnostics"
)

func sourceFile(stmts ...ast.Statement) *ast.SourceFile {
	return &ast.SourceFile{FileName: "x.ts", Statements: stmts}
}

func typeAlias(name string, typeParams []*ast.TypeParameter, t ast.Type) *ast.TypeAliasDeclaration {
	return &ast.TypeAliasDeclaration{
		Name:           &ast.Identifier{Text: name},
		TypeParameters: typeParams,
		TypeNode:       t,
	}
}

func keyword(k ast.Kind) *ast.Keyword { return &ast.Keyword{Kind_: k} }

// TestScenarioA mirrors `type X = string;`: a subroutine with no type
// parameters is tail-call-blocked and its body is just String, Return.
func TestScenarioATrivialAlias(t *testing.T) {
	file := sourceFile(typeAlias("X", nil, keyword(ast.KindStringKeyword)))

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	if len(e.Program.Subroutines) != 1 {
		t.Fatalf("len(Subroutines) = %d, want 1", len(e.Program.Subroutines))
	}
	sr := e.Program.Subroutines[0]
	want := []Op{OpString, OpReturn}
	if len(sr.Ops) != len(want) {
		t.Fatalf("Ops = %v, want %v", opsToString(sr.Ops), want)
	}
	for i, op := range want {
		if Op(sr.Ops[i]) != op {
			t.Fatalf("Ops[%d] = %s, want %s", i, Op(sr.Ops[i]), op)
		}
	}
}

// TestScenarioB mirrors `type Id<T> = T;`: T is a TypeArgument, and since
// the alias has type parameters, BlockTailCall is never applied.
func TestScenarioBGenericIdentity(t *testing.T) {
	file := sourceFile(typeAlias("Id",
		[]*ast.TypeParameter{{Name: &ast.Identifier{Text: "T"}}},
		&ast.TypeReference{Name: &ast.Identifier{Text: "T"}},
	))

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	if len(e.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", e.Errors)
	}
	sr := e.Program.Subroutines[0]
	if len(sr.Ops) < 2 || Op(sr.Ops[0]) != OpTypeArgument {
		t.Fatalf("Ops = %v, want to start with TypeArgument", opsToString(sr.Ops))
	}
	if Op(sr.Ops[1]) != OpLoads {
		t.Fatalf("Ops[1] = %s, want Loads", Op(sr.Ops[1]))
	}
	if last := Op(sr.Ops[len(sr.Ops)-1]); last != OpReturn {
		t.Fatalf("last op = %s, want Return", last)
	}
}

// TestScenarioC mirrors `type U = 'a' | 'b';`.
func TestScenarioCUnion(t *testing.T) {
	lit := func(s string) ast.Type {
		return &ast.LiteralType{Literal: &ast.StringLiteral{Text: s}}
	}
	file := sourceFile(typeAlias("U", nil, &ast.UnionType{
		Members: []ast.Type{lit("a"), lit("b")},
	}))

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	sr := e.Program.Subroutines[0]
	want := []Op{OpFrame, OpStringLiteral, OpStringLiteral, OpUnion, OpReturn}
	got := opsOnly(sr.Ops)
	if len(got) != len(want) {
		t.Fatalf("op sequence = %v, want %v", got, want)
	}
	for i, op := range want {
		if got[i] != op {
			t.Fatalf("op[%d] = %s, want %s", i, got[i], op)
		}
	}
}

// TestScenarioFTailCall mirrors `type F<T> = G<T>;`: in a tail position
// the Call into G gets rewritten to TailCall.
func TestScenarioFTailCallOptimized(t *testing.T) {
	file := sourceFile(
		typeAlias("G", []*ast.TypeParameter{{Name: &ast.Identifier{Text: "T"}}},
			&ast.TypeReference{Name: &ast.Identifier{Text: "T"}}),
		typeAlias("F", []*ast.TypeParameter{{Name: &ast.Identifier{Text: "T"}}},
			&ast.TypeReference{
				Name: &ast.Identifier{Text: "G"},
				Args: []ast.Type{&ast.TypeReference{Name: &ast.Identifier{Text: "T"}}},
			}),
	)

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)
	if len(e.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", e.Errors)
	}

	f := e.Program.Subroutines[1]
	found := false
	for _, op := range opsOnly(f.Ops) {
		if op == OpTailCall {
			found = true
		}
		if op == OpCall {
			t.Fatalf("F's tail call to G was not rewritten to TailCall")
		}
	}
	if !found {
		t.Fatalf("expected a TailCall op in F's body, got %v", opsOnly(f.Ops))
	}
}

func TestScenarioFTailCallDisabledByOptions(t *testing.T) {
	file := sourceFile(
		typeAlias("G", []*ast.TypeParameter{{Name: &ast.Identifier{Text: "T"}}},
			&ast.TypeReference{Name: &ast.Identifier{Text: "T"}}),
		typeAlias("F", []*ast.TypeParameter{{Name: &ast.Identifier{Text: "T"}}},
			&ast.TypeReference{
				Name: &ast.Identifier{Text: "G"},
				Args: []ast.Type{&ast.TypeReference{Name: &ast.Identifier{Text: "T"}}},
			}),
	)

	off := false
	result := CompileWithOptions(file, Options{Optimize: &off})

	f := result.Program.Subroutines[1]
	for _, op := range opsOnly(f.Ops) {
		if op == OpTailCall {
			t.Fatalf("TailCall present despite Optimize=false")
		}
	}
}

func TestUnresolvedIdentifierEmitsNeverAndError(t *testing.T) {
	file := sourceFile(typeAlias("X", nil, &ast.TypeReference{Name: &ast.Identifier{Text: "Missing"}}))

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	if len(e.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(e.Errors))
	}
	sr := e.Program.Subroutines[0]
	if Op(sr.Ops[0]) != OpNever {
		t.Fatalf("Ops[0] = %s, want Never", Op(sr.Ops[0]))
	}
}

// TestScenarioXRedeclaredAlias mirrors `type X = string; type X = number;`:
// the second declaration must be reported as a duplicate, not silently
// re-enter and corrupt the already-finalized subroutine for X.
func TestScenarioXRedeclaredAlias(t *testing.T) {
	file := sourceFile(
		typeAlias("X", nil, keyword(ast.KindStringKeyword)),
		typeAlias("X", nil, keyword(ast.KindNumberKeyword)),
	)

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	if len(e.Program.Subroutines) != 1 {
		t.Fatalf("len(Subroutines) = %d, want 1 (second declaration must not create its own)", len(e.Program.Subroutines))
	}

	sr := e.Program.Subroutines[0]
	want := []Op{OpString, OpReturn}
	got := opsOnly(sr.Ops)
	if len(got) != len(want) {
		t.Fatalf("X's body = %v, want %v (must not be appended to after Return)", got, want)
	}

	if len(e.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(e.Errors))
	}
	if e.Errors[0].Code != diagnostics.DuplicateDeclaration {
		t.Fatalf("Errors[0].Code = %s, want DuplicateDeclaration", e.Errors[0].Code)
	}

	mainOps := opsOnly(e.Program.Ops)
	if len(mainOps) != 2 || mainOps[0] != OpNever || mainOps[1] != OpError {
		t.Fatalf("main body = %v, want [Never, Error]", mainOps)
	}
}

// TestNonIdentifierAssignmentLHSIsFatal mirrors `1 + 1 = 2;`: an
// emitter invariant violation, not a recoverable source error, so it
// panics rather than collecting a diagnostic and continuing.
func TestNonIdentifierAssignmentLHSIsFatal(t *testing.T) {
	n := &ast.BinaryExpression{
		Left:  &ast.NumericLiteral{Text: "1"},
		Right: &ast.NumericLiteral{Text: "2"},
	}

	e := NewEmitter("x.ts")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("emitAssignment with a non-identifier LHS did not panic")
		}
	}()
	e.emitAssignment(n)
}

// TestUnknownNodeKindLogsAndSkips mirrors a source file containing a
// construct the AST producer emits but this emitter has no lowering rule
// for: the unknown node is skipped (no ops for it) while the rest of the
// file still lowers normally, per the "log and skip" AST-shape-gap path.
func TestUnknownNodeKindLogsAndSkips(t *testing.T) {
	file := sourceFile(
		&ast.UnknownNode{RawKind: "JSDocComment"},
		typeAlias("X", nil, keyword(ast.KindStringKeyword)),
	)

	e := NewEmitter("x.ts")
	e.EmitSourceFile(file)

	if len(e.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(e.Errors))
	}
	if e.Errors[0].Code != diagnostics.UnsupportedSyntax {
		t.Fatalf("Errors[0].Code = %s, want UnsupportedSyntax", e.Errors[0].Code)
	}

	if len(e.Program.Subroutines) != 1 {
		t.Fatalf("len(Subroutines) = %d, want 1 (X must still lower)", len(e.Program.Subroutines))
	}
	sr := e.Program.Subroutines[0]
	want := []Op{OpString, OpReturn}
	if got := opsOnly(sr.Ops); len(got) != len(want) {
		t.Fatalf("X's body = %v, want %v", got, want)
	}
}

func opsOnly(ops []byte) []Op {
	var out []Op
	i := 0
	for i < len(ops) {
		op := Op(ops[i])
		out = append(out, op)
		i += 1 + ParamWidth(op)
	}
	return out
}

func opsToString(ops []byte) []Op { return opsOnly(ops) }
