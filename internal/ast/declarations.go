package ast

// Parameter is a function value parameter. Type may be nil (lowers to
// Unknown); Initializer is the default value expression, if any.
type Parameter struct {
	span
	Name        *Identifier
	ParamType   Type
	Optional    bool
	Initializer Expression
}

func (n *Parameter) NodeKind() Kind { return KindParameter }

// TypeParameter is a generic type parameter, e.g. `T` or `T = string`.
type TypeParameter struct {
	span
	Name    *Identifier
	Default Type
}

func (n *TypeParameter) NodeKind() Kind { return KindTypeParameter }

// TypeAliasDeclaration: `type Name<Params> = Type`.
type TypeAliasDeclaration struct {
	span
	Name           *Identifier
	TypeParameters []*TypeParameter
	TypeNode       Type
}

func (n *TypeAliasDeclaration) NodeKind() Kind { return KindTypeAliasDeclaration }
func (n *TypeAliasDeclaration) statementNode() {}

// FunctionDeclaration: `function name<TypeParams>(params): ReturnType`.
// Generic declarations compile their body into a nested, nameless
// subroutine reached through FunctionRef; non-generic ones compile
// directly into the symbol's own subroutine.
type FunctionDeclaration struct {
	span
	Name           *Identifier
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     Type // nil lowers to Unknown
}

func (n *FunctionDeclaration) NodeKind() Kind { return KindFunctionDeclaration }
func (n *FunctionDeclaration) statementNode() {}

// PropertyAssignment is an ObjectLiteralExpression member: `name: value`.
type PropertyAssignment struct {
	span
	Name  Node // *Identifier or a computed-name Expression
	Value Expression
}

func (n *PropertyAssignment) NodeKind() Kind { return KindPropertyAssignment }

// VariableDeclaration: `const x: T = v`, `let x = v`, or `let x;`.
type VariableDeclaration struct {
	span
	Name           *Identifier
	TypeAnnotation Type // explicit `: T`, may be nil
	Initializer    Expression
	IsConst        bool
}

func (n *VariableDeclaration) NodeKind() Kind { return KindVariableDeclaration }
