package compiler

import "encoding/binary"

// SymbolType mirrors the kind of declaration a Subroutine backs, carried
// here (not in the symbol table) because a Subroutine outlives the Frame
// that declared it.
type SymbolType int

const (
	SymbolVariable SymbolType = iota
	SymbolFunction
	SymbolClass
	SymbolInline // nameless subroutine: generic function body, type parameter default
	SymbolType_  // type alias: `type foo = string`
	SymbolTypeArgument
	SymbolTypeVariable // fresh per distributive conditional-type branch
)

// sourceMapEntry ties one bytecode offset back to the source span that
// produced it, for diagnostics raised against the emitted program rather
// than the original AST.
type sourceMapEntry struct {
	bytecodePos uint32
	sourcePos   uint32
	sourceEnd   uint32
}

// typeArgumentUsage records the ip right after a type parameter's Loads
// inside a section, where a Rest spreading it would be emitted, so
// optimise() can rewrite such a Rest to RestReuse once the section is
// known to be a tail position.
type typeArgumentUsage struct {
	symbolIndex uint32
	ip          uint32
}

// section is a branch of control flow inside a Subroutine's op stream: a
// contiguous run of ops between two control-flow joins. The tree of
// sections is what optimise() walks to find tail positions eligible for
// Call -> TailCall and Rest -> RestReuse rewriting.
type section struct {
	start, end        uint32
	lastOp            Op
	ops                int
	isBlockTailCall    bool
	hasChild           bool
	typeArgumentUsages []typeArgumentUsage
	next, up           int // -1 means none
}

func (s *section) registerTypeArgumentUsage(symbolIndex uint32, ip uint32) {
	for i := range s.typeArgumentUsages {
		if s.typeArgumentUsages[i].symbolIndex == symbolIndex {
			s.typeArgumentUsages[i].ip = ip
			return
		}
	}
	s.typeArgumentUsages = append(s.typeArgumentUsages, typeArgumentUsage{symbolIndex, ip})
}

// Subroutine is a sub-program reachable by address: the body of a type
// alias, a function, a variable, or a type parameter's default. Every emitted
// program is a flat table of subroutines plus a distinguished main body.
type Subroutine struct {
	Ops        []byte
	SourceMap  []sourceMapEntry
	Identifier string
	Index      uint32
	NameAddress uint32
	Type       SymbolType

	sections      []section
	activeSection int

	ignoreNextSectionOp bool
}

// NewSubroutine starts a subroutine with a single root section spanning
// from the current (empty) ip.
func NewSubroutine(identifier string) *Subroutine {
	sr := &Subroutine{Identifier: identifier}
	sr.sections = append(sr.sections, section{start: 0, next: -1, up: -1})
	return sr
}

// Ip returns the current write position, i.e. the address the next
// pushed op will occupy.
func (sr *Subroutine) Ip() uint32 { return uint32(len(sr.Ops)) }

// IgnoreNextSectionOp suppresses section bookkeeping for the very next
// PushOp call. Used for ops that close a branch rather than extend it
// (a conditional type's Jump, FrameReturnJump and FrameEnd).
func (sr *Subroutine) IgnoreNextSectionOp() { sr.ignoreNextSectionOp = true }

// BlockTailCall marks the active section as ineligible for the tail-call
// rewrite. The emitter applies it to a type alias without type
// parameters, a variable with a type annotation, and a distributive
// conditional type.
func (sr *Subroutine) BlockTailCall() {
	sr.sections[sr.activeSection].isBlockTailCall = true
}

// PushOp appends a single opcode byte and updates the active section's
// bookkeeping, unless suppressed by IgnoreNextSectionOp.
func (sr *Subroutine) PushOp(op Op) {
	sr.Ops = append(sr.Ops, byte(op))
	if !sr.ignoreNextSectionOp {
		sr.sections[sr.activeSection].lastOp = op
		sr.sections[sr.activeSection].ops++
	}
	sr.ignoreNextSectionOp = false
}

// PushByte appends a single raw parameter byte without touching section
// state; parameter bytes never count as ops of their own.
func (sr *Subroutine) PushByte(b byte) { sr.Ops = append(sr.Ops, b) }

// PushUint16/PushUint32 append little-endian op parameters. The packager
// and VM agree on little-endian for every multi-byte field.
func (sr *Subroutine) PushUint16(v uint16) {
	sr.Ops = append(sr.Ops, byte(v), byte(v>>8))
}

func (sr *Subroutine) PushUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	sr.Ops = append(sr.Ops, buf[:]...)
}

// PushInt32 appends a signed 32-bit relative offset, stored as its
// two's-complement bit pattern.
func (sr *Subroutine) PushInt32(v int32) { sr.PushUint32(uint32(v)) }

// PatchUint16/PatchUint32 backfill a placeholder previously written with
// PushUint16/PushUint32, once the true address is known.
func (sr *Subroutine) PatchUint16(at uint32, v uint16) {
	sr.Ops[at] = byte(v)
	sr.Ops[at+1] = byte(v >> 8)
}

func (sr *Subroutine) PatchUint32(at uint32, v uint32) {
	binary.LittleEndian.PutUint32(sr.Ops[at:at+4], v)
}

func (sr *Subroutine) PatchInt32(at uint32, v int32) { sr.PatchUint32(at, uint32(v)) }

// RegisterTypeArgumentUsage records, inside the active section, the
// current ip for a given type-parameter symbol. The emitter calls it right
// after the symbol's Loads operand, so the recorded ip is where the Rest of
// a `...T` spread lands; optimise() promotes an op found there to
// RestReuse if it is a Rest and the section turns out to be a tail
// position. Only the most recent ip per symbol is kept.
func (sr *Subroutine) RegisterTypeArgumentUsage(symbolIndex uint32) {
	sr.sections[sr.activeSection].registerTypeArgumentUsage(symbolIndex, sr.Ip())
}

// PushSection opens a new child section under the active one and makes it
// active. Used when entering a branch of a conditional or a distributive
// expansion, where tail-call eligibility must be tracked independently.
func (sr *Subroutine) PushSection() {
	sr.sections[sr.activeSection].hasChild = true
	sr.sections = append(sr.sections, section{start: sr.Ip(), up: sr.activeSection, next: -1})
	sr.activeSection = len(sr.sections) - 1
}

// End closes the active section at the current ip without starting a new
// sibling, used for the outermost section when the subroutine is done.
func (sr *Subroutine) End() {
	sr.sections[sr.activeSection].end = sr.Ip()
}

// PopSection closes the active section and returns control to its parent,
// starting a fresh sibling section under that parent so later ops have
// somewhere to land. The new section becomes the parent's next sibling
// and shares the parent's up. It is allocated whenever the parent has no
// next sibling yet, which with balanced PushSection/PopSection calls is
// every time, even if nothing more gets pushed into it.
func (sr *Subroutine) PopSection() {
	sr.sections[len(sr.sections)-1].end = sr.Ip()
	sr.activeSection = sr.sections[len(sr.sections)-1].up

	if sr.sections[sr.activeSection].next == -1 {
		next := section{start: sr.Ip(), up: sr.sections[sr.activeSection].up, next: -1}
		sr.sections = append(sr.sections, next)
		sr.sections[sr.activeSection].next = len(sr.sections) - 1
		sr.activeSection = len(sr.sections) - 1
	}
}

// ended reports whether a section (or, transitively, its chain of
// `next` siblings) is the true end of its branch: either it has no
// further sibling and received no ops of its own (it's a placeholder),
// or its last sibling is such a placeholder.
func (sr *Subroutine) ended(idx int) bool {
	s := sr.sections[idx]
	if s.next >= 0 {
		return sr.ended(s.next)
	}
	return s.ops == 0
}

// Optimise walks every section in allocation order and rewrites Call -> TailCall
// for sections in tail position, and Rest -> RestReuse at every
// type-argument usage registered inside such a section. A section is a
// tail position if it (and every ancestor up to the subroutine root) has
// no following sibling with ops of its own, no child branch, and was
// never marked BlockTailCall.
func (sr *Subroutine) Optimise() {
	for i := range sr.sections {
		s := &sr.sections[i]
		if s.hasChild {
			continue
		}
		if s.isBlockTailCall {
			continue
		}
		if s.next >= 0 && !sr.ended(i) {
			continue
		}

		tail := true
		up := s.up
		for up >= 0 {
			current := &sr.sections[up]
			if current.isBlockTailCall {
				tail = false
				break
			}
			if !sr.ended(up) {
				tail = false
				break
			}
			up = current.up
		}

		if !tail {
			continue
		}

		if s.lastOp == OpCall {
			sr.Ops[s.end-1-4-2] = byte(OpTailCall)
		}

		for _, usage := range s.typeArgumentUsages {
			if usage.ip < uint32(len(sr.Ops)) && Op(sr.Ops[usage.ip]) == OpRest {
				sr.Ops[usage.ip] = byte(OpRestReuse)
			}
		}
	}
}

// PushSourceMap records that the ops written so far end at a source span.
func (sr *Subroutine) PushSourceMap(sourcePos, sourceEnd uint32) {
	sr.SourceMap = append(sr.SourceMap, sourceMapEntry{sr.Ip(), sourcePos, sourceEnd})
}

// Flags returns the packed subroutine-table flag byte. No flag bits are
// currently defined; the field exists so the binary layout has room to
// grow without a version bump.
func (sr *Subroutine) Flags() byte { return 0 }
