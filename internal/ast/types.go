package ast

// TemplateSpan is one `${...}text` segment following a template literal
// type's head.
type TemplateSpan struct {
	span
	ExprType   Type
	TrailingText string // empty when the span has no trailing literal text
}

// TemplateLiteralType: `head${A}mid${B}tail`.
type TemplateLiteralType struct {
	span
	HeadText string
	Spans    []*TemplateSpan
}

func (n *TemplateLiteralType) NodeKind() Kind { return KindTemplateLiteralType }
func (n *TemplateLiteralType) typeNode()      {}

// UnionType: `A | B | C`.
type UnionType struct {
	span
	Members []Type
}

func (n *UnionType) NodeKind() Kind { return KindUnionType }
func (n *UnionType) typeNode()      {}

// IndexedAccessType: `T[K]`, including the `T["length"]` special case.
type IndexedAccessType struct {
	span
	ObjectType Type
	IndexType  Type
}

func (n *IndexedAccessType) NodeKind() Kind { return KindIndexedAccessType }
func (n *IndexedAccessType) typeNode()      {}

// TypeReference: a named type possibly instantiated with type arguments,
// e.g. `Box<string>` or a bare `T`.
type TypeReference struct {
	span
	Name *Identifier
	Args []Type
}

func (n *TypeReference) NodeKind() Kind { return KindTypeReference }
func (n *TypeReference) typeNode()      {}

// ArrayType: `T[]`.
type ArrayType struct {
	span
	ElementType Type
}

func (n *ArrayType) NodeKind() Kind { return KindArrayType }
func (n *ArrayType) typeNode()      {}

// NamedTupleMember: `name: T`, `name?: T` or `...name: T` inside a tuple type.
type NamedTupleMember struct {
	span
	Name     *Identifier
	MemberType Type
	Rest     bool
	Optional bool
}

func (n *NamedTupleMember) NodeKind() Kind { return KindNamedTupleMember }
func (n *NamedTupleMember) typeNode()      {}

// OptionalType: a plain `T?` tuple element with no member name.
type OptionalType struct {
	span
	ElementType Type
}

func (n *OptionalType) NodeKind() Kind { return KindOptionalType }
func (n *OptionalType) typeNode()      {}

// RestType: `...T`, valid as a tuple element or a type parameter expansion.
type RestType struct {
	span
	ElementType Type
}

func (n *RestType) NodeKind() Kind { return KindRestType }
func (n *RestType) typeNode()      {}

// TupleType: `[A, B, ...C]`.
type TupleType struct {
	span
	Elements []Type // each element is a NamedTupleMember, OptionalType, or plain Type
}

func (n *TupleType) NodeKind() Kind { return KindTupleType }
func (n *TupleType) typeNode()      {}

// ConditionalType: `checkType extends extendsType ? trueType : falseType`.
type ConditionalType struct {
	span
	CheckType   Type
	ExtendsType Type
	TrueType    Type
	FalseType   Type
}

func (n *ConditionalType) NodeKind() Kind { return KindConditionalType }
func (n *ConditionalType) typeNode()      {}

// PropertySignature is a member of an InterfaceDeclaration/TypeLiteral.
type PropertySignature struct {
	span
	Name        Node // *Identifier for a plain name, else a computed-name Expression
	MemberType  Type
	Optional    bool
	Readonly    bool
}

func (n *PropertySignature) NodeKind() Kind { return KindPropertySignature }

// InterfaceDeclaration and TypeLiteral both lower identically: a frame
// holding extends clauses and members, closed by ObjectLiteral.
type InterfaceDeclaration struct {
	span
	Name    *Identifier
	Extends []Type
	Members []*PropertySignature
}

func (n *InterfaceDeclaration) NodeKind() Kind { return KindInterfaceDeclaration }
func (n *InterfaceDeclaration) typeNode()      {}
func (n *InterfaceDeclaration) statementNode() {}

// TypeLiteral is the anonymous form: `{ x: string }` used inline.
type TypeLiteral struct {
	span
	Members []*PropertySignature
}

func (n *TypeLiteral) NodeKind() Kind { return KindTypeLiteral }
func (n *TypeLiteral) typeNode()      {}
