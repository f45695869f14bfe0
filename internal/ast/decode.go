package ast

// Decoding support for the JSON AST shape the tsc CLI reads from disk.
// The lexer/parser that produce an AST from source text live outside
// this module; this file only turns their JSON output back into the
// Node tree the emitter walks. Every node is tagged with a "kind"
// string matching the names below, plus "pos"/"end" and whatever
// kind-specific fields its concrete struct carries.

import (
	"encoding/json"
	"fmt"
)

var kindNames = map[Kind]string{
	KindSourceFile:                  "SourceFile",
	KindExpressionStatement:         "ExpressionStatement",
	KindVariableStatement:           "VariableStatement",
	KindParenthesizedType:           "ParenthesizedType",
	KindAnyKeyword:                  "AnyKeyword",
	KindNullKeyword:                 "NullKeyword",
	KindUndefinedKeyword:            "UndefinedKeyword",
	KindNeverKeyword:                "NeverKeyword",
	KindUnknownKeyword:              "UnknownKeyword",
	KindBooleanKeyword:              "BooleanKeyword",
	KindStringKeyword:               "StringKeyword",
	KindNumberKeyword:               "NumberKeyword",
	KindTrueKeyword:                 "TrueKeyword",
	KindFalseKeyword:                "FalseKeyword",
	KindBigIntLiteral:               "BigIntLiteral",
	KindNumericLiteral:              "NumericLiteral",
	KindStringLiteral:               "StringLiteral",
	KindIdentifier:                  "Identifier",
	KindLiteralType:                 "LiteralType",
	KindTemplateLiteralType:         "TemplateLiteralType",
	KindUnionType:                   "UnionType",
	KindIndexedAccessType:           "IndexedAccessType",
	KindTypeReference:               "TypeReference",
	KindArrayType:                   "ArrayType",
	KindTupleType:                   "TupleType",
	KindNamedTupleMember:            "NamedTupleMember",
	KindOptionalType:                "OptionalType",
	KindRestType:                    "RestType",
	KindConditionalType:             "ConditionalType",
	KindTypeLiteral:                 "TypeLiteral",
	KindInterfaceDeclaration:        "InterfaceDeclaration",
	KindTypeAliasDeclaration:        "TypeAliasDeclaration",
	KindParameter:                   "Parameter",
	KindTypeParameter:               "TypeParameter",
	KindFunctionDeclaration:         "FunctionDeclaration",
	KindPropertySignature:           "PropertySignature",
	KindPropertyAssignment:          "PropertyAssignment",
	KindVariableDeclaration:         "VariableDeclaration",
	KindBinaryExpression:            "BinaryExpression",
	KindCallExpression:              "CallExpression",
	KindExpressionWithTypeArguments: "ExpressionWithTypeArguments",
	KindObjectLiteralExpression:     "ObjectLiteralExpression",
	KindArrayLiteralExpression:      "ArrayLiteralExpression",
	KindConditionalExpression:       "ConditionalExpression",
	KindUnknownNode:                 "UnknownNode",
}

var keywordKinds = map[string]Kind{
	"AnyKeyword":       KindAnyKeyword,
	"NullKeyword":      KindNullKeyword,
	"UndefinedKeyword": KindUndefinedKeyword,
	"NeverKeyword":     KindNeverKeyword,
	"UnknownKeyword":   KindUnknownKeyword,
	"BooleanKeyword":   KindBooleanKeyword,
	"StringKeyword":    KindStringKeyword,
	"NumberKeyword":    KindNumberKeyword,
	"TrueKeyword":      KindTrueKeyword,
	"FalseKeyword":     KindFalseKeyword,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// DecodeSourceFile parses the JSON AST shape produced by an external
// lexer/parser into the Node tree this package's emitter consumes.
func DecodeSourceFile(data []byte, fileName string) (*SourceFile, error) {
	node, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	sf, ok := node.(*SourceFile)
	if !ok {
		return nil, fmt.Errorf("ast: root node is %s, not SourceFile", node.NodeKind())
	}
	sf.FileName = fileName
	return sf, nil
}

func decodeNode(data []byte) (Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("ast: decoding node envelope: %w", err)
	}

	sp, err := decodeSpan(data)
	if err != nil {
		return nil, err
	}

	if k, ok := keywordKinds[head.Kind]; ok {
		return &Keyword{span: sp, Kind_: k}, nil
	}

	switch head.Kind {
	case "SourceFile":
		var n struct {
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		stmts, err := decodeStatements(n.Statements)
		if err != nil {
			return nil, err
		}
		return &SourceFile{span: sp, Statements: stmts}, nil

	case "ExpressionStatement":
		var n struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(n.Expr)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{span: sp, Expr: expr}, nil

	case "VariableStatement":
		var n struct {
			Declarations []json.RawMessage `json:"declarations"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		decls := make([]*VariableDeclaration, 0, len(n.Declarations))
		for _, raw := range n.Declarations {
			node, err := decodeNode(raw)
			if err != nil {
				return nil, err
			}
			decl, ok := node.(*VariableDeclaration)
			if !ok {
				return nil, fmt.Errorf("ast: expected VariableDeclaration, got %s", node.NodeKind())
			}
			decls = append(decls, decl)
		}
		return &VariableStatement{span: sp, Declarations: decls}, nil

	case "ParenthesizedType":
		var n struct {
			Inner json.RawMessage `json:"inner"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		inner, err := decodeType(n.Inner)
		if err != nil {
			return nil, err
		}
		return &ParenthesizedType{span: sp, Inner: inner}, nil

	case "BigIntLiteral":
		var n struct{ Text string `json:"text"` }
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return &BigIntLiteral{span: sp, Text: n.Text}, nil

	case "NumericLiteral":
		var n struct{ Text string `json:"text"` }
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return &NumericLiteral{span: sp, Text: n.Text}, nil

	case "StringLiteral":
		var n struct{ Text string `json:"text"` }
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return &StringLiteral{span: sp, Text: n.Text}, nil

	case "Identifier":
		var n struct{ Text string `json:"text"` }
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return &Identifier{span: sp, Text: n.Text}, nil

	case "LiteralType":
		var n struct {
			Literal json.RawMessage `json:"literal"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		lit, err := decodeExpression(n.Literal)
		if err != nil {
			return nil, err
		}
		return &LiteralType{span: sp, Literal: lit}, nil

	case "TemplateLiteralType":
		var n struct {
			HeadText string `json:"headText"`
			Spans    []struct {
				Pos          uint32          `json:"pos"`
				End          uint32          `json:"end"`
				ExprType     json.RawMessage `json:"exprType"`
				TrailingText string          `json:"trailingText"`
			} `json:"spans"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		spans := make([]*TemplateSpan, 0, len(n.Spans))
		for _, s := range n.Spans {
			exprType, err := decodeType(s.ExprType)
			if err != nil {
				return nil, err
			}
			spans = append(spans, &TemplateSpan{
				span:         span{s.Pos, s.End},
				ExprType:     exprType,
				TrailingText: s.TrailingText,
			})
		}
		return &TemplateLiteralType{span: sp, HeadText: n.HeadText, Spans: spans}, nil

	case "UnionType":
		var n struct {
			Members []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		members, err := decodeTypes(n.Members)
		if err != nil {
			return nil, err
		}
		return &UnionType{span: sp, Members: members}, nil

	case "IndexedAccessType":
		var n struct {
			ObjectType json.RawMessage `json:"objectType"`
			IndexType  json.RawMessage `json:"indexType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		obj, err := decodeType(n.ObjectType)
		if err != nil {
			return nil, err
		}
		idx, err := decodeType(n.IndexType)
		if err != nil {
			return nil, err
		}
		return &IndexedAccessType{span: sp, ObjectType: obj, IndexType: idx}, nil

	case "TypeReference":
		var n struct {
			Name json.RawMessage   `json:"name"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		args, err := decodeTypes(n.Args)
		if err != nil {
			return nil, err
		}
		return &TypeReference{span: sp, Name: name, Args: args}, nil

	case "ArrayType":
		var n struct {
			ElementType json.RawMessage `json:"elementType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		el, err := decodeType(n.ElementType)
		if err != nil {
			return nil, err
		}
		return &ArrayType{span: sp, ElementType: el}, nil

	case "TupleType":
		var n struct {
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		elements, err := decodeTypes(n.Elements)
		if err != nil {
			return nil, err
		}
		return &TupleType{span: sp, Elements: elements}, nil

	case "NamedTupleMember":
		var n struct {
			Name       json.RawMessage `json:"name"`
			MemberType json.RawMessage `json:"memberType"`
			Rest       bool            `json:"rest"`
			Optional   bool            `json:"optional"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		memberType, err := decodeType(n.MemberType)
		if err != nil {
			return nil, err
		}
		return &NamedTupleMember{span: sp, Name: name, MemberType: memberType, Rest: n.Rest, Optional: n.Optional}, nil

	case "OptionalType":
		var n struct {
			ElementType json.RawMessage `json:"elementType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		el, err := decodeType(n.ElementType)
		if err != nil {
			return nil, err
		}
		return &OptionalType{span: sp, ElementType: el}, nil

	case "RestType":
		var n struct {
			ElementType json.RawMessage `json:"elementType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		el, err := decodeType(n.ElementType)
		if err != nil {
			return nil, err
		}
		return &RestType{span: sp, ElementType: el}, nil

	case "ConditionalType":
		var n struct {
			CheckType   json.RawMessage `json:"checkType"`
			ExtendsType json.RawMessage `json:"extendsType"`
			TrueType    json.RawMessage `json:"trueType"`
			FalseType   json.RawMessage `json:"falseType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		checkType, err := decodeType(n.CheckType)
		if err != nil {
			return nil, err
		}
		extendsType, err := decodeType(n.ExtendsType)
		if err != nil {
			return nil, err
		}
		trueType, err := decodeType(n.TrueType)
		if err != nil {
			return nil, err
		}
		falseType, err := decodeType(n.FalseType)
		if err != nil {
			return nil, err
		}
		return &ConditionalType{span: sp, CheckType: checkType, ExtendsType: extendsType, TrueType: trueType, FalseType: falseType}, nil

	case "TypeLiteral", "InterfaceDeclaration":
		var n struct {
			Name    json.RawMessage   `json:"name"`
			Extends []json.RawMessage `json:"extends"`
			Members []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		members, err := decodePropertySignatures(n.Members)
		if err != nil {
			return nil, err
		}
		if head.Kind == "TypeLiteral" {
			return &TypeLiteral{span: sp, Members: members}, nil
		}
		extends, err := decodeTypes(n.Extends)
		if err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		return &InterfaceDeclaration{span: sp, Name: name, Extends: extends, Members: members}, nil

	case "PropertySignature":
		var n struct {
			Name       json.RawMessage `json:"name"`
			MemberType json.RawMessage `json:"memberType"`
			Optional   bool            `json:"optional"`
			Readonly   bool            `json:"readonly"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeNode(n.Name)
		if err != nil {
			return nil, err
		}
		memberType, err := decodeType(n.MemberType)
		if err != nil {
			return nil, err
		}
		return &PropertySignature{span: sp, Name: name, MemberType: memberType, Optional: n.Optional, Readonly: n.Readonly}, nil

	case "PropertyAssignment":
		var n struct {
			Name  json.RawMessage `json:"name"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeNode(n.Name)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &PropertyAssignment{span: sp, Name: name, Value: value}, nil

	case "TypeAliasDeclaration":
		var n struct {
			Name           json.RawMessage   `json:"name"`
			TypeParameters []json.RawMessage `json:"typeParameters"`
			TypeNode       json.RawMessage   `json:"typeNode"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		tps, err := decodeTypeParameters(n.TypeParameters)
		if err != nil {
			return nil, err
		}
		typeNode, err := decodeType(n.TypeNode)
		if err != nil {
			return nil, err
		}
		return &TypeAliasDeclaration{span: sp, Name: name, TypeParameters: tps, TypeNode: typeNode}, nil

	case "Parameter":
		var n struct {
			Name        json.RawMessage `json:"name"`
			ParamType   json.RawMessage `json:"paramType"`
			Optional    bool            `json:"optional"`
			Initializer json.RawMessage `json:"initializer"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		paramType, err := decodeType(n.ParamType)
		if err != nil {
			return nil, err
		}
		initializer, err := decodeExpression(n.Initializer)
		if err != nil {
			return nil, err
		}
		return &Parameter{span: sp, Name: name, ParamType: paramType, Optional: n.Optional, Initializer: initializer}, nil

	case "TypeParameter":
		var n struct {
			Name    json.RawMessage `json:"name"`
			Default json.RawMessage `json:"default"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		def, err := decodeType(n.Default)
		if err != nil {
			return nil, err
		}
		return &TypeParameter{span: sp, Name: name, Default: def}, nil

	case "FunctionDeclaration":
		var n struct {
			Name           json.RawMessage   `json:"name"`
			TypeParameters []json.RawMessage `json:"typeParameters"`
			Parameters     []json.RawMessage `json:"parameters"`
			ReturnType     json.RawMessage   `json:"returnType"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		tps, err := decodeTypeParameters(n.TypeParameters)
		if err != nil {
			return nil, err
		}
		params := make([]*Parameter, 0, len(n.Parameters))
		for _, raw := range n.Parameters {
			node, err := decodeNode(raw)
			if err != nil {
				return nil, err
			}
			param, ok := node.(*Parameter)
			if !ok {
				return nil, fmt.Errorf("ast: expected Parameter, got %s", node.NodeKind())
			}
			params = append(params, param)
		}
		returnType, err := decodeType(n.ReturnType)
		if err != nil {
			return nil, err
		}
		return &FunctionDeclaration{span: sp, Name: name, TypeParameters: tps, Parameters: params, ReturnType: returnType}, nil

	case "VariableDeclaration":
		var n struct {
			Name           json.RawMessage `json:"name"`
			TypeAnnotation json.RawMessage `json:"typeAnnotation"`
			Initializer    json.RawMessage `json:"initializer"`
			IsConst        bool            `json:"isConst"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		typeAnnotation, err := decodeType(n.TypeAnnotation)
		if err != nil {
			return nil, err
		}
		initializer, err := decodeExpression(n.Initializer)
		if err != nil {
			return nil, err
		}
		return &VariableDeclaration{span: sp, Name: name, TypeAnnotation: typeAnnotation, Initializer: initializer, IsConst: n.IsConst}, nil

	case "BinaryExpression":
		var n struct {
			Operator string          `json:"operator"`
			Left     json.RawMessage `json:"left"`
			Right    json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		left, err := decodeExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{span: sp, Operator: n.Operator, Left: left, Right: right}, nil

	case "CallExpression":
		var n struct {
			Callee        json.RawMessage   `json:"callee"`
			TypeArguments []json.RawMessage `json:"typeArguments"`
			Arguments     []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		typeArgs, err := decodeTypes(n.TypeArguments)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(n.Arguments)
		if err != nil {
			return nil, err
		}
		return &CallExpression{span: sp, Callee: callee, TypeArguments: typeArgs, Arguments: args}, nil

	case "ExpressionWithTypeArguments":
		var n struct {
			Callee        json.RawMessage   `json:"callee"`
			TypeArguments []json.RawMessage `json:"typeArguments"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		typeArgs, err := decodeTypes(n.TypeArguments)
		if err != nil {
			return nil, err
		}
		return &ExpressionWithTypeArguments{span: sp, Callee: callee, TypeArguments: typeArgs}, nil

	case "ObjectLiteralExpression":
		var n struct {
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		props := make([]*PropertyAssignment, 0, len(n.Properties))
		for _, raw := range n.Properties {
			node, err := decodeNode(raw)
			if err != nil {
				return nil, err
			}
			prop, ok := node.(*PropertyAssignment)
			if !ok {
				return nil, fmt.Errorf("ast: expected PropertyAssignment, got %s", node.NodeKind())
			}
			props = append(props, prop)
		}
		return &ObjectLiteralExpression{span: sp, Properties: props}, nil

	case "ArrayLiteralExpression":
		var n struct {
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		elements, err := decodeExpressions(n.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayLiteralExpression{span: sp, Elements: elements}, nil

	case "ConditionalExpression":
		var n struct {
			Condition json.RawMessage `json:"condition"`
			WhenTrue  json.RawMessage `json:"whenTrue"`
			WhenFalse json.RawMessage `json:"whenFalse"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		condition, err := decodeExpression(n.Condition)
		if err != nil {
			return nil, err
		}
		whenTrue, err := decodeExpression(n.WhenTrue)
		if err != nil {
			return nil, err
		}
		whenFalse, err := decodeExpression(n.WhenFalse)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpression{span: sp, Condition: condition, WhenTrue: whenTrue, WhenFalse: whenFalse}, nil

	default:
		return &UnknownNode{span: sp, RawKind: head.Kind}, nil
	}
}

func decodeSpan(data []byte) (span, error) {
	var s struct {
		Pos uint32 `json:"pos"`
		End uint32 `json:"end"`
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return span{}, fmt.Errorf("ast: decoding span: %w", err)
	}
	return span{s.Pos, s.End}, nil
}

func decodeStatements(raws []json.RawMessage) ([]Statement, error) {
	out := make([]Statement, 0, len(raws))
	for _, raw := range raws {
		node, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		stmt, ok := node.(Statement)
		if !ok {
			return nil, fmt.Errorf("ast: expected statement, got %s", node.NodeKind())
		}
		out = append(out, stmt)
	}
	return out, nil
}

func decodeType(raw json.RawMessage) (Type, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	t, ok := node.(Type)
	if !ok {
		return nil, fmt.Errorf("ast: expected type node, got %s", node.NodeKind())
	}
	return t, nil
}

func decodeTypes(raws []json.RawMessage) ([]Type, error) {
	out := make([]Type, 0, len(raws))
	for _, raw := range raws {
		t, err := decodeType(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func decodeExpression(raw json.RawMessage) (Expression, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	e, ok := node.(Expression)
	if !ok {
		return nil, fmt.Errorf("ast: expected expression node, got %s", node.NodeKind())
	}
	return e, nil
}

func decodeExpressions(raws []json.RawMessage) ([]Expression, error) {
	out := make([]Expression, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeExpression(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeIdentifier(raw json.RawMessage) (*Identifier, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	id, ok := node.(*Identifier)
	if !ok {
		return nil, fmt.Errorf("ast: expected identifier, got %s", node.NodeKind())
	}
	return id, nil
}

func decodeTypeParameters(raws []json.RawMessage) ([]*TypeParameter, error) {
	out := make([]*TypeParameter, 0, len(raws))
	for _, raw := range raws {
		node, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		tp, ok := node.(*TypeParameter)
		if !ok {
			return nil, fmt.Errorf("ast: expected TypeParameter, got %s", node.NodeKind())
		}
		out = append(out, tp)
	}
	return out, nil
}

func decodePropertySignatures(raws []json.RawMessage) ([]*PropertySignature, error) {
	out := make([]*PropertySignature, 0, len(raws))
	for _, raw := range raws {
		node, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		ps, ok := node.(*PropertySignature)
		if !ok {
			return nil, fmt.Errorf("ast: expected PropertySignature, got %s", node.NodeKind())
		}
		out = append(out, ps)
	}
	return out, nil
}
