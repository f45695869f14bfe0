package compiler

import (
	"encoding/binary"
	"fmt"

	"github.com/tsforge/tsc/internal/storage"
	"github.com/tsforge/tsc/internal/symbols"
)

// Program accumulates everything a full compilation produces: the main
// op stream, every subroutine created along the way, the string pool
// they share, and the frame stack tracking lexical scope while the
// emitter walks the AST. Pack() turns it into the final byte image.
type Program struct {
	Ops       []byte
	SourceMap []sourceMapEntry

	Storage *storage.Pool
	Frames  *symbols.Stack

	activeSubroutines []*Subroutine
	Subroutines       []*Subroutine

	// optimize gates whether PopSubroutine runs the tail-call/rest-reuse
	// rewrite. Defaults to true (the zero value of a *bool Options field).
	optimize bool
}

// NewProgram starts an empty program with a fresh root frame and the
// optimizer enabled.
func NewProgram() *Program {
	return &Program{
		Storage:  storage.New(),
		Frames:   symbols.NewStack(),
		optimize: true,
	}
}

// active returns the subroutine currently receiving ops, or nil while
// writing directly into the program's main body.
func (p *Program) active() *Subroutine {
	if len(p.activeSubroutines) == 0 {
		return nil
	}
	return p.activeSubroutines[len(p.activeSubroutines)-1]
}

// PushOp appends a single opcode, routed to the active subroutine if any.
func (p *Program) PushOp(op Op) {
	if sr := p.active(); sr != nil {
		sr.PushOp(op)
		return
	}
	p.Ops = append(p.Ops, byte(op))
}

// PushOpAt is PushOp preceded by recording the source span it was
// lowered from, for sourcemap purposes.
func (p *Program) PushOpAt(op Op, pos, end uint32) {
	p.PushSourceMap(pos, end)
	p.PushOp(op)
}

// Ip returns the current write position in whichever op stream is active.
func (p *Program) Ip() uint32 {
	if sr := p.active(); sr != nil {
		return sr.Ip()
	}
	return uint32(len(p.Ops))
}

// PushByte appends one raw parameter byte without touching section
// bookkeeping.
func (p *Program) PushByte(b byte) {
	if sr := p.active(); sr != nil {
		sr.PushByte(b)
		return
	}
	p.Ops = append(p.Ops, b)
}

// PushUint16 appends a little-endian 2-byte parameter.
func (p *Program) PushUint16(v uint16) {
	if sr := p.active(); sr != nil {
		sr.PushUint16(v)
		return
	}
	p.Ops = append(p.Ops, byte(v), byte(v>>8))
}

// PushAddress appends a little-endian 4-byte address, storage index, or
// subroutine index — the placeholder the packager later resolves.
func (p *Program) PushAddress(address uint32) {
	if sr := p.active(); sr != nil {
		sr.PushUint32(address)
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], address)
	p.Ops = append(p.Ops, buf[:]...)
}

// PushInt32Address appends a signed 32-bit relative jump offset.
func (p *Program) PushInt32Address(v int32) { p.PushAddress(uint32(v)) }

// PatchUint32At backfills a 4-byte placeholder previously written at ip.
func (p *Program) PatchUint32At(ip uint32, v uint32) {
	if sr := p.active(); sr != nil {
		sr.PatchUint32(ip, v)
		return
	}
	binary.LittleEndian.PutUint32(p.Ops[ip:ip+4], v)
}

// PatchInt32At backfills a signed 4-byte placeholder previously written
// at ip.
func (p *Program) PatchInt32At(ip uint32, v int32) { p.PatchUint32At(ip, uint32(v)) }

// PatchUint16At backfills a 2-byte placeholder previously written at ip.
func (p *Program) PatchUint16At(ip uint32, v uint16) {
	if sr := p.active(); sr != nil {
		sr.PatchUint16(ip, v)
		return
	}
	p.Ops[ip] = byte(v)
	p.Ops[ip+1] = byte(v >> 8)
}

// PushStorage interns s and appends its address as a 4-byte parameter.
func (p *Program) PushStorage(s string) { p.PushAddress(p.Storage.Register(s)) }

// PushStringLiteral emits OpStringLiteral followed by s's storage address.
func (p *Program) PushStringLiteral(s string, pos, end uint32) {
	p.PushOpAt(OpStringLiteral, pos, end)
	p.PushStorage(s)
}

// PushError emits a diagnostic opcode into main (errors are always
// reported against the top-level program, never a subroutine body, so a
// VM halted mid-subroutine still surfaces every collected error). Its
// sourcemap entry always carries bytecode position 0, not the current
// write position: the entry exists to locate the source span an error
// came from, not a byte offset into a stream the error doesn't live in.
func (p *Program) PushError(code uint16, pos, end uint32) {
	p.SourceMap = append(p.SourceMap, sourceMapEntry{0, pos, end})
	p.Ops = append(p.Ops, byte(OpError))
	p.Ops = append(p.Ops, byte(code), byte(code>>8))
}

// PushSourceMap records that the ops written so far end at a source span,
// routed to whichever stream (subroutine or main) is currently active.
func (p *Program) PushSourceMap(pos, end uint32) {
	if sr := p.active(); sr != nil {
		sr.PushSourceMap(pos, end)
		return
	}
	p.SourceMap = append(p.SourceMap, sourceMapEntry{uint32(len(p.Ops)), pos, end})
}

// IgnoreNextSectionOp suppresses section bookkeeping for the next op
// pushed into the active subroutine, if any.
func (p *Program) IgnoreNextSectionOp() {
	if sr := p.active(); sr != nil {
		sr.IgnoreNextSectionOp()
	}
}

// PushSection opens a child section in the active subroutine, if any.
func (p *Program) PushSection() {
	if sr := p.active(); sr != nil {
		sr.PushSection()
	}
}

// PopSection closes the active subroutine's current section, if any.
func (p *Program) PopSection() {
	if sr := p.active(); sr != nil {
		sr.PopSection()
	}
}

// BlockTailCall marks the active subroutine's current section as
// ineligible for the tail-call rewrite, if any.
func (p *Program) BlockTailCall() {
	if sr := p.active(); sr != nil {
		sr.BlockTailCall()
	}
}

// RegisterTypeArgumentUsage records a usage of type argument symbolIndex
// at the current ip of the active subroutine, for later RestReuse
// promotion of a Rest written at that ip.
func (p *Program) RegisterTypeArgumentUsage(symbolIndex uint32) {
	if sr := p.active(); sr != nil {
		sr.RegisterTypeArgumentUsage(symbolIndex)
	}
}

// PushFrame opens a new lexical frame. implicit is true for scopes a VM
// opcode itself opens (Call, Distribute, ...) without a dedicated Frame
// op preceding it.
func (p *Program) PushFrame(implicit bool) *symbols.Frame {
	if !implicit {
		p.PushOp(OpFrame)
	}
	return p.Frames.Push()
}

// PopFrameImplicit returns to the enclosing frame without emitting
// FrameEnd, for scopes whose closing op (Union, ObjectLiteral, Return,
// ...) already tells the VM to drop a frame.
func (p *Program) PopFrameImplicit() { p.Frames.Pop() }

// PopFrame emits FrameEnd and returns to the enclosing frame.
func (p *Program) PopFrame() {
	p.PushOp(OpFrameEnd)
	p.PopFrameImplicit()
}

// PushSymbol declares name into the current frame. See symbols.Stack.PushSymbol.
func (p *Program) PushSymbol(name string, kind symbols.Type, pos, end uint32) *symbols.Symbol {
	return p.Frames.PushSymbol(name, kind, pos, end, nil)
}

// PushSymbolForRoutine declares name and, unless it already has one,
// creates the Subroutine that backs it (a type alias, function, or
// variable's computed-type body).
func (p *Program) PushSymbolForRoutine(name string, kind symbols.Type, pos, end uint32) *symbols.Symbol {
	sym := p.Frames.PushSymbol(name, kind, pos, end, nil)
	if sym.RoutineIndex != nil {
		return sym
	}

	routine := NewSubroutine(name)
	routine.Type = symbolTypeFromKind(kind)
	routine.NameAddress = p.Storage.Register(name)
	routine.Index = uint32(len(p.Subroutines))
	p.Subroutines = append(p.Subroutines, routine)

	idx := routine.Index
	sym.RoutineIndex = &idx
	return sym
}

// PushSubroutineNameless creates an anonymous subroutine — used for a
// generic function's body and a type parameter's default-type
// expression — and activates it.
func (p *Program) PushSubroutineNameless() uint32 {
	routine := NewSubroutine("")
	routine.Type = SymbolInline
	routine.Index = uint32(len(p.Subroutines))
	p.Subroutines = append(p.Subroutines, routine)

	p.PushFrame(true)
	p.activeSubroutines = append(p.activeSubroutines, routine)
	return routine.Index
}

// PushSubroutine activates the subroutine already backing name in the
// current frame, so subsequent ops populate its body.
func (p *Program) PushSubroutine(name string) (uint32, error) {
	for f := p.Frames.Current; f != nil; f = f.Previous {
		for _, sym := range f.Symbols {
			if sym.Name == name {
				if sym.RoutineIndex == nil {
					return 0, fmt.Errorf("symbol %q has no routine", name)
				}
				p.PushFrame(true)
				p.activeSubroutines = append(p.activeSubroutines, p.Subroutines[*sym.RoutineIndex])
				return *sym.RoutineIndex, nil
			}
		}
	}
	return 0, fmt.Errorf("no symbol found for %q", name)
}

// PopSubroutine finishes the active subroutine: closes its outermost
// section, runs the tail-call/rest-reuse optimizer, and appends Return.
func (p *Program) PopSubroutine() (*Subroutine, error) {
	if len(p.activeSubroutines) == 0 {
		return nil, fmt.Errorf("no active subroutine")
	}
	p.PopFrameImplicit()

	sr := p.activeSubroutines[len(p.activeSubroutines)-1]
	p.activeSubroutines = p.activeSubroutines[:len(p.activeSubroutines)-1]
	if len(sr.Ops) == 0 {
		return nil, fmt.Errorf("routine %q is empty", sr.Identifier)
	}

	sr.End()
	if p.optimize {
		sr.Optimise()
	}
	sr.Ops = append(sr.Ops, byte(OpReturn))

	return sr, nil
}

// FindSymbol searches the current frame chain for name.
func (p *Program) FindSymbol(name string) *symbols.Symbol { return p.Frames.FindSymbol(name) }

// PushSymbolAddress appends the (frame offset, symbol index) pair a
// Loads instruction needs to reach sym from wherever the program is
// currently writing.
func (p *Program) PushSymbolAddress(sym *symbols.Symbol) {
	p.PushUint16(uint16(p.Frames.FrameOffset(sym.Frame)))
	p.PushUint16(uint16(sym.Index))
}

func symbolTypeFromKind(kind symbols.Type) SymbolType {
	switch kind {
	case symbols.Variable:
		return SymbolVariable
	case symbols.Function:
		return SymbolFunction
	case symbols.Class:
		return SymbolClass
	case symbols.TypeAlias:
		return SymbolType_
	case symbols.TypeArgument:
		return SymbolTypeArgument
	case symbols.TypeVariable:
		return SymbolTypeVariable
	default:
		return SymbolType_
	}
}
