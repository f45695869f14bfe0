// Package compiler lowers a type-level AST into the compact bytecode
// program a separate stack-based VM evaluates. It owns the storage pool,
// the subroutine/section model, symbol resolution, the AST-directed
// emitter, and final binary packaging — everything described as the core
// of the type-system compiler. The VM that executes the resulting image,
// and the lexer/parser that produce the AST, live outside this module.
package compiler

// Op is a single-byte VM instruction tag. Parameter widths are fixed per
// opcode (see ParamWidth) and are a contract shared with the VM; this
// package never assumes a width it hasn't declared here.
type Op byte

const (
	// Primitives and literal keywords
	OpAny Op = iota
	OpNull
	OpUndefined
	OpNever
	OpUnknown
	OpBoolean
	OpString
	OpNumber
	OpTrue
	OpFalse
	OpBigIntLiteral  // + 4-byte storage address
	OpNumericLiteral // + 4-byte storage address
	OpStringLiteral  // + 4-byte storage address

	// Composers
	OpUnion
	OpTuple
	OpTupleMember
	OpOptional
	OpArray
	OpObjectLiteral
	OpPropertySignature
	OpReadonly
	OpTemplateLiteral
	OpRest
	OpRestReuse

	// Access
	OpIndexAccess
	OpLength

	// Frames
	OpFrame
	OpFrameEnd
	OpFrameReturnJump // + 4-byte signed relative offset

	// Control flow
	OpExtends
	OpJump          // + 4-byte relative offset past the false branch
	OpJumpCondition // + 4-byte relative offset to the false branch
	OpDistribute    // + 4-byte relative forward exit offset

	// Calls / subroutines
	OpCall           // + 4-byte subroutine index + 2-byte arg count
	OpTailCall       // + 4-byte subroutine index + 2-byte arg count
	OpInstantiate    // + 2-byte type-argument count
	OpCallExpression // + 2-byte argument count
	OpReturn
	OpLoads       // + 2-byte frame offset + 2-byte symbol index
	OpFunction
	OpFunctionRef // + 4-byte subroutine index

	// Symbols / declarations
	OpParameter // + 4-byte storage address (name text)
	OpInitializer
	OpTypeArgument
	OpTypeArgumentDefault // + 4-byte subroutine index

	// Bindings
	OpSet // + 4-byte subroutine index
	OpAssign
	OpWiden

	// Errors
	OpError // + 2-byte error code

	// Packaging-only pseudo-ops, never emitted by the lowering table itself
	OpJumpHeader // + 4-byte absolute address; the image's leading Jump
	OpSourceMap  // + 4-byte size
	OpSubroutine // + 4-byte name address + 4-byte body address + 1-byte flags
	OpMain       // + 4-byte absolute address
	OpHalt
)

var opNames = map[Op]string{
	OpAny:                 "Any",
	OpNull:                "Null",
	OpUndefined:           "Undefined",
	OpNever:               "Never",
	OpUnknown:             "Unknown",
	OpBoolean:             "Boolean",
	OpString:              "String",
	OpNumber:              "Number",
	OpTrue:                "True",
	OpFalse:               "False",
	OpBigIntLiteral:       "BigIntLiteral",
	OpNumericLiteral:      "NumericLiteral",
	OpStringLiteral:       "StringLiteral",
	OpUnion:               "Union",
	OpTuple:               "Tuple",
	OpTupleMember:         "TupleMember",
	OpOptional:            "Optional",
	OpArray:               "Array",
	OpObjectLiteral:       "ObjectLiteral",
	OpPropertySignature:   "PropertySignature",
	OpReadonly:            "Readonly",
	OpTemplateLiteral:     "TemplateLiteral",
	OpRest:                "Rest",
	OpRestReuse:           "RestReuse",
	OpIndexAccess:         "IndexAccess",
	OpLength:              "Length",
	OpFrame:               "Frame",
	OpFrameEnd:            "FrameEnd",
	OpFrameReturnJump:     "FrameReturnJump",
	OpExtends:             "Extends",
	OpJump:                "Jump",
	OpJumpCondition:       "JumpCondition",
	OpDistribute:          "Distribute",
	OpCall:                "Call",
	OpTailCall:            "TailCall",
	OpInstantiate:         "Instantiate",
	OpCallExpression:      "CallExpression",
	OpReturn:              "Return",
	OpLoads:               "Loads",
	OpFunction:            "Function",
	OpFunctionRef:         "FunctionRef",
	OpParameter:           "Parameter",
	OpInitializer:         "Initializer",
	OpTypeArgument:        "TypeArgument",
	OpTypeArgumentDefault: "TypeArgumentDefault",
	OpSet:                 "Set",
	OpAssign:              "Assign",
	OpWiden:               "Widen",
	OpError:               "Error",
	OpJumpHeader:          "Jump",
	OpSourceMap:           "SourceMap",
	OpSubroutine:          "Subroutine",
	OpMain:                "Main",
	OpHalt:                "Halt",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Unknown"
}

// ParamWidth returns the number of inline parameter bytes following an
// opcode, not counting the opcode byte itself. The disassembler uses it to
// step from one instruction to the next in a subroutine's raw ops.
func ParamWidth(op Op) int {
	switch op {
	case OpBigIntLiteral, OpNumericLiteral, OpStringLiteral, OpParameter:
		return 4
	case OpFunctionRef, OpTypeArgumentDefault, OpSet, OpJumpHeader, OpMain:
		return 4
	case OpFrameReturnJump, OpJumpCondition, OpDistribute:
		return 4
	case OpCall, OpTailCall:
		return 6 // 4-byte subroutine index + 2-byte arg count
	case OpInstantiate, OpCallExpression:
		return 2
	case OpLoads:
		return 4 // 2-byte frame offset + 2-byte symbol index
	case OpJump:
		return 4 // relative offset, like every other jump operand
	case OpError:
		return 2
	case OpSourceMap:
		return 4
	case OpSubroutine:
		return 9 // 4-byte name address + 4-byte body address + 1-byte flags
	default:
		return 0
	}
}
