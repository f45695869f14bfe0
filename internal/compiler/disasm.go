package compiler

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Disassemble renders a subroutine's op stream as human-readable text,
// one instruction per line, for debugging an emitted program.
func Disassemble(sr *Subroutine, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s ==\n", name)

	offset := uint32(0)
	for offset < uint32(len(sr.Ops)) {
		offset = disassembleInstruction(&sb, sr.Ops, offset)
	}
	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, ops []byte, offset uint32) uint32 {
	op := Op(ops[offset])
	fmt.Fprintf(sb, "%04d %-16s", offset, op)

	switch op {
	case OpCall, OpTailCall:
		idx := binary.LittleEndian.Uint32(ops[offset+1 : offset+5])
		argc := binary.LittleEndian.Uint16(ops[offset+5 : offset+7])
		fmt.Fprintf(sb, " #%d (%d args)\n", idx, argc)
	case OpJumpCondition, OpDistribute, OpJump:
		addr := binary.LittleEndian.Uint32(ops[offset+1 : offset+5])
		fmt.Fprintf(sb, " -> %d\n", addr)
	case OpFrameReturnJump:
		rel := int32(binary.LittleEndian.Uint32(ops[offset+1 : offset+5]))
		fmt.Fprintf(sb, " %+d\n", rel)
	case OpBigIntLiteral, OpNumericLiteral, OpStringLiteral, OpParameter:
		addr := binary.LittleEndian.Uint32(ops[offset+1 : offset+5])
		fmt.Fprintf(sb, " @%d\n", addr)
	case OpFunctionRef, OpTypeArgumentDefault, OpSet:
		idx := binary.LittleEndian.Uint32(ops[offset+1 : offset+5])
		fmt.Fprintf(sb, " #%d\n", idx)
	case OpLoads:
		frameOffset := binary.LittleEndian.Uint16(ops[offset+1 : offset+3])
		symbolIndex := binary.LittleEndian.Uint16(ops[offset+3 : offset+5])
		fmt.Fprintf(sb, " frame=%d symbol=%d\n", frameOffset, symbolIndex)
	case OpInstantiate, OpCallExpression:
		n := binary.LittleEndian.Uint16(ops[offset+1 : offset+3])
		fmt.Fprintf(sb, " %d\n", n)
	case OpError:
		code := binary.LittleEndian.Uint16(ops[offset+1 : offset+3])
		fmt.Fprintf(sb, " code=%d\n", code)
	default:
		sb.WriteString("\n")
	}

	return offset + 1 + uint32(ParamWidth(op))
}
