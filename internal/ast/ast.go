// Package ast defines the node contract the emitter lowers from.
//
// The tree itself is produced by a lexer/parser that lives outside this
// module (see spec §6.2 in the design notes carried over from the original
// checker). Every node exposes its syntax kind plus a source span; the
// emitter switches on Kind() and downcasts to the concrete struct it
// expects for that kind. Node shapes mirror exactly the lowering table the
// emitter implements — nothing more, nothing speculative.
package ast

// Kind identifies the syntax shape of a Node, mirroring the closed set of
// AST productions the emitter knows how to lower.
type Kind int

const (
	KindSourceFile Kind = iota
	KindExpressionStatement
	KindVariableStatement
	KindParenthesizedType

	// Primitive keywords
	KindAnyKeyword
	KindNullKeyword
	KindUndefinedKeyword
	KindNeverKeyword
	KindUnknownKeyword
	KindBooleanKeyword
	KindStringKeyword
	KindNumberKeyword
	KindTrueKeyword
	KindFalseKeyword

	// Literals
	KindBigIntLiteral
	KindNumericLiteral
	KindStringLiteral
	KindIdentifier

	// Types
	KindLiteralType
	KindTemplateLiteralType
	KindUnionType
	KindIndexedAccessType
	KindTypeReference
	KindArrayType
	KindTupleType
	KindNamedTupleMember
	KindOptionalType
	KindRestType
	KindConditionalType
	KindTypeLiteral
	KindInterfaceDeclaration

	// Declarations
	KindTypeAliasDeclaration
	KindParameter
	KindTypeParameter
	KindFunctionDeclaration
	KindPropertySignature
	KindPropertyAssignment
	KindVariableDeclaration

	// Expressions
	KindBinaryExpression
	KindCallExpression
	KindExpressionWithTypeArguments
	KindObjectLiteralExpression
	KindArrayLiteralExpression
	KindConditionalExpression

	// KindUnknownNode tags a node whose "kind" string didn't match any
	// production this package decodes. It stands in for the unrecognized
	// node wherever the parse tree expected a statement, type, or
	// expression, so decoding the rest of the file can still proceed; the
	// emitter's own unhandled-kind case (its switch default) is what
	// actually skips emission for it.
	KindUnknownNode
)

// Node is the base contract every AST node satisfies: a syntax kind and the
// source span it was parsed from, for sourcemap and diagnostic purposes.
type Node interface {
	NodeKind() Kind
	Pos() uint32
	End() uint32
}

// Type is a Node that occurs in type position (the right-hand side of a
// type alias, a parameter annotation, a type argument, ...).
type Type interface {
	Node
	typeNode()
}

// Expression is a Node that occurs in value position.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that occurs at statement level inside a SourceFile.
type Statement interface {
	Node
	statementNode()
}

// span is embedded by every concrete node to satisfy Pos()/End() without
// repeating the boilerplate on each type.
type span struct {
	StartPos uint32
	EndPos   uint32
}

func (s span) Pos() uint32 { return s.StartPos }
func (s span) End() uint32 { return s.EndPos }

// SourceFile is the root of the tree handed to the emitter.
type SourceFile struct {
	span
	FileName   string
	Statements []Statement
}

func (n *SourceFile) NodeKind() Kind { return KindSourceFile }

// UnknownNode stands in for a decoded node whose "kind" string didn't
// match any production this package knows. It satisfies Statement, Type,
// and Expression so it can occupy whichever slot the surrounding JSON
// put it in without failing the decode of the rest of the file; RawKind
// carries the original string for diagnostics.
type UnknownNode struct {
	span
	RawKind string
}

func (n *UnknownNode) NodeKind() Kind  { return KindUnknownNode }
func (n *UnknownNode) statementNode()  {}
func (n *UnknownNode) typeNode()       {}
func (n *UnknownNode) expressionNode() {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	span
	Expr Expression
}

func (n *ExpressionStatement) NodeKind() Kind   { return KindExpressionStatement }
func (n *ExpressionStatement) statementNode()   {}

// VariableStatement wraps one or more VariableDeclarations.
type VariableStatement struct {
	span
	Declarations []*VariableDeclaration
}

func (n *VariableStatement) NodeKind() Kind { return KindVariableStatement }
func (n *VariableStatement) statementNode() {}

// ParenthesizedType is transparent to lowering: `(T)`.
type ParenthesizedType struct {
	span
	Inner Type
}

func (n *ParenthesizedType) NodeKind() Kind { return KindParenthesizedType }
func (n *ParenthesizedType) typeNode()      {}

// Identifier names a binding being declared or referenced.
type Identifier struct {
	span
	Text string
}

func (n *Identifier) NodeKind() Kind { return KindIdentifier }
func (n *Identifier) expressionNode() {}
func (n *Identifier) typeNode()       {}
