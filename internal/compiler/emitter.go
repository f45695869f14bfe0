package compiler

import (
	"fmt"

	"github.com/tsforge/tsc/internal/ast"
	"github.com/tsforge/tsc/internal/diagnostics"
	"github.com/tsforge/tsc/internal/symbols"
)

// Emitter lowers an AST into a Program by walking it once, depth-first,
// in the same traversal order the original checker used: declarations
// get their symbols and subroutines created as they're encountered, so a
// forward reference inside the same source file resolves only if its
// declaration appears earlier in the walk (functions hoist on the first
// call, not before).
type Emitter struct {
	File    string
	Program *Program
	Errors  []*diagnostics.Error
}

// NewEmitter creates an emitter writing into a fresh Program.
func NewEmitter(file string) *Emitter {
	return &Emitter{File: file, Program: NewProgram()}
}

// EmitSourceFile lowers every top-level statement of file into the
// emitter's Program.
func (e *Emitter) EmitSourceFile(file *ast.SourceFile) {
	for _, stmt := range file.Statements {
		e.emit(stmt)
	}
}

func (e *Emitter) fail(code diagnostics.Code, pos, end uint32) {
	e.Errors = append(e.Errors, diagnostics.New(code, e.File, pos, end))
	e.Program.PushError(uint16(code), pos, end)
}

// fatal aborts compilation on an emitter invariant violation: popping an
// empty subroutine stack, finishing an empty routine body, or assigning
// to a non-identifier LHS. These are not recoverable source errors —
// they indicate an AST producer bug or an unimplemented construct — so
// unlike fail, there is nothing to recover into; cmd/tsc's top-level
// recover() turns this panic into a reported internal error.
func (e *Emitter) fatal(format string, args ...any) {
	panic(fmt.Sprintf("tsc: %s", fmt.Sprintf(format, args...)))
}

// emit dispatches on node's concrete type, mirroring the reference
// checker's single big switch on syntax kind.
func (e *Emitter) emit(node ast.Node) {
	p := e.Program

	switch n := node.(type) {
	case *ast.SourceFile:
		for _, stmt := range n.Statements {
			e.emit(stmt)
		}

	case *ast.Keyword:
		p.PushOpAt(keywordOp(n.Kind_), n.Pos(), n.End())

	case *ast.BigIntLiteral:
		p.PushOpAt(OpBigIntLiteral, n.Pos(), n.End())
		p.PushStorage(n.Text)
	case *ast.NumericLiteral:
		p.PushOpAt(OpNumericLiteral, n.Pos(), n.End())
		p.PushStorage(n.Text)
	case *ast.StringLiteral:
		p.PushOpAt(OpStringLiteral, n.Pos(), n.End())
		p.PushStorage(n.Text)

	case *ast.LiteralType:
		e.emit(n.Literal)

	case *ast.IndexedAccessType:
		if lit, ok := n.IndexType.(*ast.LiteralType); ok {
			if s, ok := lit.Literal.(*ast.StringLiteral); ok && s.Text == "length" {
				e.emit(n.ObjectType)
				p.PushOpAt(OpLength, n.Pos(), n.End())
				return
			}
		}
		e.emit(n.ObjectType)
		e.emit(n.IndexType)
		p.PushOpAt(OpIndexAccess, n.Pos(), n.End())

	case *ast.TemplateLiteralType:
		p.PushFrame(false)
		if n.HeadText != "" {
			p.PushOpAt(OpStringLiteral, n.Pos(), n.End())
			p.PushStorage(n.HeadText)
		}
		for _, span := range n.Spans {
			e.emit(span.ExprType)
			if span.TrailingText != "" {
				p.PushOpAt(OpStringLiteral, span.Pos(), span.End())
				p.PushStorage(span.TrailingText)
			}
		}
		p.PushOpAt(OpTemplateLiteral, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.UnionType:
		p.PushFrame(false)
		for _, m := range n.Members {
			e.emit(m)
		}
		p.PushOpAt(OpUnion, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.TypeReference:
		e.emitReference(n.Name.Text, n.Args, n.Pos(), n.End())

	case *ast.Identifier:
		e.emitReference(n.Text, nil, n.Pos(), n.End())

	case *ast.TypeAliasDeclaration:
		e.emitTypeAlias(n)

	case *ast.Parameter:
		if n.ParamType != nil {
			e.emit(n.ParamType)
		} else {
			p.PushOpAt(OpUnknown, n.Pos(), n.End())
		}
		p.PushOpAt(OpParameter, n.Pos(), n.End())
		if n.Name != nil {
			p.PushStorage(n.Name.Text)
		} else {
			p.PushStorage("")
		}
		if n.Optional {
			p.PushOp(OpOptional)
		}
		if n.Initializer != nil {
			e.emit(n.Initializer)
			p.PushOp(OpInitializer)
		}

	case *ast.TypeParameter:
		sym := p.PushSymbol(n.Name.Text, symbols.TypeArgument, n.Pos(), n.End())
		if n.Default != nil {
			idx := p.PushSubroutineNameless()
			e.emit(n.Default)
			if _, err := p.PopSubroutine(); err != nil {
				e.fatal("type parameter %q default: %v", n.Name.Text, err)
			}
			p.PushOp(OpTypeArgumentDefault)
			p.PushAddress(idx)
		} else {
			p.PushOp(OpTypeArgument)
		}
		_ = sym

	case *ast.FunctionDeclaration:
		e.emitFunctionDeclaration(n)

	case *ast.PropertyAssignment:
		if n.Value != nil {
			e.emit(n.Value)
		} else {
			p.PushOpAt(OpAny, n.Pos(), n.End())
		}
		e.emitPropertyName(n.Name)
		p.PushOpAt(OpPropertySignature, n.Pos(), n.End())

	case *ast.PropertySignature:
		if n.MemberType != nil {
			e.emit(n.MemberType)
		} else {
			p.PushOp(OpAny)
		}
		e.emitPropertyName(n.Name)
		p.PushOpAt(OpPropertySignature, n.Pos(), n.End())
		if n.Optional {
			p.PushOp(OpOptional)
		}
		if n.Readonly {
			p.PushOp(OpReadonly)
		}

	case *ast.InterfaceDeclaration:
		p.PushFrame(false)
		for _, ext := range n.Extends {
			e.emit(ext)
		}
		for _, m := range n.Members {
			e.emit(m)
		}
		p.PushOpAt(OpObjectLiteral, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.TypeLiteral:
		p.PushFrame(false)
		for _, m := range n.Members {
			e.emit(m)
		}
		p.PushOpAt(OpObjectLiteral, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.ParenthesizedType:
		e.emit(n.Inner)

	case *ast.ExpressionWithTypeArguments:
		for _, arg := range n.TypeArguments {
			e.emit(arg)
		}
		e.emit(n.Callee)
		if len(n.TypeArguments) > 0 {
			p.PushOpAt(OpInstantiate, n.Pos(), n.End())
			p.PushUint16(uint16(len(n.TypeArguments)))
		}

	case *ast.ObjectLiteralExpression:
		p.PushFrame(false)
		for _, prop := range n.Properties {
			e.emit(prop)
		}
		p.PushOpAt(OpObjectLiteral, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.CallExpression:
		for _, arg := range n.TypeArguments {
			e.emit(arg)
		}
		e.emit(n.Callee)
		if len(n.TypeArguments) > 0 {
			p.PushOpAt(OpInstantiate, n.Pos(), n.End())
			p.PushUint16(uint16(len(n.TypeArguments)))
		}
		for _, arg := range n.Arguments {
			e.emit(arg)
		}
		p.PushOpAt(OpCallExpression, n.Pos(), n.End())
		p.PushUint16(uint16(len(n.Arguments)))

	case *ast.ExpressionStatement:
		e.emit(n.Expr)

	case *ast.ConditionalExpression:
		p.PushFrame(false)
		e.emit(n.WhenFalse)
		e.emit(n.WhenTrue)
		p.PushOpAt(OpUnion, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.ConditionalType:
		e.emitConditionalType(n)

	case *ast.RestType:
		e.emit(n.ElementType)
		p.PushOpAt(OpRest, n.Pos(), n.End())

	case *ast.ArrayLiteralExpression:
		p.PushFrame(false)
		for _, el := range n.Elements {
			e.emit(el)
			p.PushOp(OpTupleMember)
		}
		p.PushOpAt(OpTuple, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.ArrayType:
		e.emit(n.ElementType)
		p.PushOpAt(OpArray, n.Pos(), n.End())

	case *ast.TupleType:
		p.PushFrame(false)
		for _, el := range n.Elements {
			switch m := el.(type) {
			case *ast.NamedTupleMember:
				e.emit(m.MemberType)
				if m.Rest {
					p.PushOp(OpRest)
				}
				p.PushOpAt(OpTupleMember, m.Pos(), m.End())
				if m.Optional {
					p.PushOp(OpOptional)
				}
			case *ast.OptionalType:
				e.emit(m.ElementType)
				p.PushOpAt(OpTupleMember, m.Pos(), m.End())
				p.PushOp(OpOptional)
			default:
				e.emit(el)
				p.PushOp(OpTupleMember)
			}
		}
		p.PushOpAt(OpTuple, n.Pos(), n.End())
		p.PopFrameImplicit()

	case *ast.BinaryExpression:
		e.emitAssignment(n)

	case *ast.VariableStatement:
		for _, decl := range n.Declarations {
			e.emit(decl)
		}

	case *ast.VariableDeclaration:
		e.emitVariableDeclaration(n)

	default:
		e.fail(diagnostics.UnsupportedSyntax, node.Pos(), node.End())
	}
}

func (e *Emitter) emitPropertyName(name ast.Node) {
	if id, ok := name.(*ast.Identifier); ok {
		e.Program.PushStringLiteral(id.Text, id.Pos(), id.End())
		return
	}
	e.emit(name)
}

// emitReference looks up name and either loads it directly (type
// parameters and distributive type variables) or calls the subroutine
// backing it, instantiated with args if any.
func (e *Emitter) emitReference(name string, args []ast.Type, pos, end uint32) {
	p := e.Program
	sym := p.FindSymbol(name)
	if sym == nil {
		p.PushOpAt(OpNever, pos, end)
		e.fail(diagnostics.CannotFind, pos, end)
		return
	}

	if sym.Kind == symbols.TypeArgument || sym.Kind == symbols.TypeVariable {
		p.PushOpAt(OpLoads, pos, end)
		p.PushSymbolAddress(sym)
		if sym.Kind == symbols.TypeArgument {
			p.RegisterTypeArgumentUsage(sym.Index)
		}
		return
	}

	for _, a := range args {
		e.emit(a)
	}
	p.PushOpAt(OpCall, pos, end)
	if sym.RoutineIndex == nil {
		e.fail(diagnostics.UnsupportedSyntax, pos, end)
		return
	}
	p.PushAddress(*sym.RoutineIndex)
	p.PushUint16(uint16(len(args)))
}

func (e *Emitter) emitTypeAlias(n *ast.TypeAliasDeclaration) {
	p := e.Program
	sym := p.PushSymbolForRoutine(n.Name.Text, symbols.TypeAlias, n.Pos(), n.End())
	if sym.DeclarationCount > 1 {
		p.PushOpAt(OpNever, n.Name.Pos(), n.Name.End())
		e.fail(diagnostics.DuplicateDeclaration, n.Name.Pos(), n.Name.End())
		return
	}

	if _, err := p.PushSubroutine(n.Name.Text); err != nil {
		e.fatal("type alias %q: %v", n.Name.Text, err)
	}
	if len(n.TypeParameters) == 0 {
		p.BlockTailCall()
	}
	for _, tp := range n.TypeParameters {
		e.emit(tp)
	}
	e.emit(n.TypeNode)
	if _, err := p.PopSubroutine(); err != nil {
		e.fatal("type alias %q: %v", n.Name.Text, err)
	}
}

func (e *Emitter) emitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p := e.Program
	if n.Name == nil {
		return
	}
	sym := p.PushSymbolForRoutine(n.Name.Text, symbols.Function, n.Pos(), n.End())
	if sym.DeclarationCount > 1 {
		p.PushOpAt(OpNever, n.Name.Pos(), n.Name.End())
		e.fail(diagnostics.DuplicateDeclaration, n.Name.Pos(), n.Name.End())
		return
	}

	emitSignature := func() {
		for _, param := range n.Parameters {
			e.emit(param)
		}
		if n.ReturnType != nil {
			e.emit(n.ReturnType)
		} else {
			p.PushOp(OpUnknown)
		}
		p.PushOpAt(OpFunction, n.Pos(), n.End())
	}

	if len(n.TypeParameters) > 0 {
		if _, err := p.PushSubroutine(n.Name.Text); err != nil {
			e.fatal("function %q: %v", n.Name.Text, err)
		}
		inner := p.PushSubroutineNameless()
		for _, tp := range n.TypeParameters {
			e.emit(tp)
		}
		emitSignature()
		if _, err := p.PopSubroutine(); err != nil {
			e.fatal("function %q: %v", n.Name.Text, err)
		}
		p.PushOp(OpFunctionRef)
		p.PushAddress(inner)
		if _, err := p.PopSubroutine(); err != nil {
			e.fatal("function %q: %v", n.Name.Text, err)
		}
		return
	}

	if _, err := p.PushSubroutine(n.Name.Text); err != nil {
		e.fatal("function %q: %v", n.Name.Text, err)
	}
	emitSignature()
	if _, err := p.PopSubroutine(); err != nil {
		e.fatal("function %q: %v", n.Name.Text, err)
	}
}

func (e *Emitter) emitAssignment(n *ast.BinaryExpression) {
	p := e.Program
	id, ok := n.Left.(*ast.Identifier)
	if !ok {
		e.fatal("assignment LHS is not an identifier at %d:%d", n.Pos(), n.End())
	}
	sym := p.FindSymbol(id.Text)
	if sym == nil {
		p.PushOpAt(OpNever, id.Pos(), id.End())
		e.fail(diagnostics.CannotFind, id.Pos(), id.End())
		return
	}
	if sym.RoutineIndex == nil {
		e.fail(diagnostics.UnsupportedSyntax, n.Pos(), n.End())
		return
	}
	e.emit(n.Right)
	p.PushOpAt(OpSet, n.Pos(), n.End())
	p.PushAddress(*sym.RoutineIndex)
}

func (e *Emitter) emitVariableDeclaration(n *ast.VariableDeclaration) {
	p := e.Program
	if n.Name == nil {
		return
	}
	sym := p.PushSymbolForRoutine(n.Name.Text, symbols.Variable, n.Pos(), n.End())
	if sym.DeclarationCount > 1 {
		p.PushOpAt(OpNever, n.Name.Pos(), n.Name.End())
		e.fail(diagnostics.DuplicateDeclaration, n.Name.Pos(), n.Name.End())
		return
	}

	if n.TypeAnnotation != nil {
		idx, err := p.PushSubroutine(n.Name.Text)
		if err != nil {
			e.fatal("variable %q: %v", n.Name.Text, err)
		}
		p.BlockTailCall()
		e.emit(n.TypeAnnotation)
		if _, err := p.PopSubroutine(); err != nil {
			e.fatal("variable %q: %v", n.Name.Text, err)
		}
		if n.Initializer != nil {
			e.emit(n.Initializer)
			p.PushOp(OpCall)
			p.PushAddress(idx)
			p.PushUint16(0)
			p.PushOpAt(OpAssign, n.Name.Pos(), n.Name.End())
		}
		return
	}

	idx, err := p.PushSubroutine(n.Name.Text)
	if err != nil {
		e.fatal("variable %q: %v", n.Name.Text, err)
	}
	if n.Initializer != nil {
		e.emit(n.Initializer)
		if !n.IsConst {
			p.PushOp(OpWiden)
		}
		if _, err := p.PopSubroutine(); err != nil {
			e.fatal("variable %q: %v", n.Name.Text, err)
		}
		if !n.IsConst {
			e.emit(n.Initializer)
			p.PushOp(OpSet)
			p.PushAddress(idx)
		}
	} else {
		p.PushOp(OpAny)
		if _, err := p.PopSubroutine(); err != nil {
			e.fatal("variable %q: %v", n.Name.Text, err)
		}
	}
}

// emitConditionalType lowers `checkType extends extendsType ? trueType :
// falseType`. When checkType is a bare identifier (no type arguments)
// referring to a type parameter or a distributed type variable, the whole
// conditional is distributive: it's wrapped in a
// Distribute loop that runs the check/true/false program once per member
// of the input union, rather than once against the union as a whole.
func (e *Emitter) emitConditionalType(n *ast.ConditionalType) {
	p := e.Program

	var distributeOver *ast.Identifier
	if ref, ok := n.CheckType.(*ast.TypeReference); ok && len(ref.Args) == 0 {
		if sym := p.FindSymbol(ref.Name.Text); sym != nil &&
			(sym.Kind == symbols.TypeArgument || sym.Kind == symbols.TypeVariable) {
			distributeOver = ref.Name
		}
	}

	p.PushSection()

	var distributeJumpIp uint32
	if distributeOver != nil {
		e.emit(n.CheckType)

		p.BlockTailCall()
		p.PushFrame(true)
		p.PushSymbol(distributeOver.Text, symbols.TypeVariable, distributeOver.Pos(), distributeOver.End())

		p.PushOp(OpDistribute)
		distributeJumpIp = p.Ip()
		p.PushAddress(0)
	}

	p.PushFrame(false)
	p.Frames.Current.Conditional = true

	e.emit(n.CheckType)
	e.emit(n.ExtendsType)
	p.PushOpAt(OpExtends, n.Pos(), n.End())

	p.PushOp(OpJumpCondition)
	relativeTo := p.Ip()
	falseJumpAddressIp := p.Ip()
	p.PushAddress(0)

	p.PushSection()
	e.emit(n.TrueType)
	p.PopSection()

	p.IgnoreNextSectionOp()
	p.PushOp(OpJump)
	trueJumpAddressIp := p.Ip()
	p.PushAddress(0)

	falseProgram := p.Ip() + 1
	p.PushSection()
	e.emit(n.FalseType)
	p.PopSection()
	falseEndIp := p.Ip()

	p.PatchInt32At(falseJumpAddressIp, int32(falseProgram-relativeTo))
	p.PatchInt32At(trueJumpAddressIp, int32(falseEndIp-trueJumpAddressIp+1))

	if distributeOver != nil {
		p.PatchInt32At(distributeJumpIp, int32(falseEndIp-distributeJumpIp+6))
		p.IgnoreNextSectionOp()
		p.PushOp(OpFrameReturnJump)
		p.PushInt32Address(-int32(p.Ip() - distributeJumpIp))
		p.PopFrameImplicit() // the conditional's own frame
		p.PopFrameImplicit() // the Distribute frame holding the TypeVariable
	} else {
		p.IgnoreNextSectionOp()
		p.PopFrame()
	}

	p.PopSection()
}

// keywordOp maps a primitive keyword's AST kind to its opcode.
func keywordOp(k ast.Kind) Op {
	switch k {
	case ast.KindAnyKeyword:
		return OpAny
	case ast.KindNullKeyword:
		return OpNull
	case ast.KindUndefinedKeyword:
		return OpUndefined
	case ast.KindNeverKeyword:
		return OpNever
	case ast.KindUnknownKeyword:
		return OpUnknown
	case ast.KindBooleanKeyword:
		return OpBoolean
	case ast.KindStringKeyword:
		return OpString
	case ast.KindNumberKeyword:
		return OpNumber
	case ast.KindTrueKeyword:
		return OpTrue
	case ast.KindFalseKeyword:
		return OpFalse
	default:
		panic(fmt.Sprintf("keywordOp: unexpected kind %v", k))
	}
}
