package ast

// Keyword is a primitive type keyword or literal boolean keyword: any, null,
// undefined, never, unknown, boolean, string, number, true, false. Each
// lowers to a single opcode with no inline parameters.
type Keyword struct {
	span
	Kind_ Kind
}

func (n *Keyword) NodeKind() Kind { return n.Kind_ }
func (n *Keyword) typeNode()      {}
func (n *Keyword) expressionNode() {}

// BigIntLiteral, NumericLiteral and StringLiteral all carry their source
// text verbatim; the emitter interns Text into the storage pool.
type BigIntLiteral struct {
	span
	Text string
}

func (n *BigIntLiteral) NodeKind() Kind   { return KindBigIntLiteral }
func (n *BigIntLiteral) expressionNode()  {}

type NumericLiteral struct {
	span
	Text string
}

func (n *NumericLiteral) NodeKind() Kind  { return KindNumericLiteral }
func (n *NumericLiteral) expressionNode() {}

type StringLiteral struct {
	span
	Text string
}

func (n *StringLiteral) NodeKind() Kind  { return KindStringLiteral }
func (n *StringLiteral) expressionNode() {}

// LiteralType wraps a literal used in type position, e.g. the `'a'` in
// `type X = 'a'`.
type LiteralType struct {
	span
	Literal Expression
}

func (n *LiteralType) NodeKind() Kind { return KindLiteralType }
func (n *LiteralType) typeNode()      {}
