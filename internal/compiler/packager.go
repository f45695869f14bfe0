package compiler

import (
	"encoding/binary"
	"hash/fnv"
)

// subroutineTableEntrySize is OpSubroutine + 4-byte name address + 4-byte
// body address + 1-byte flags.
const subroutineTableEntrySize = 1 + 4 + 4 + 1

// sourceMapEntrySize is three little-endian uint32 fields: bytecode
// position, source start, source end.
const sourceMapEntrySize = 4 * 3

// Pack assembles the final byte image: a leading Jump past the storage
// region, the interned storage entries, a SourceMap block, one
// Subroutine table entry per routine, the Main entry, every subroutine
// body back to back, the main body, and a trailing Halt.
//
// Storage operands already hold absolute byte offsets, since the pool
// assigns addresses in the same layout Pack writes. Subroutine bodies and
// the main body are copied verbatim: references to another subroutine
// (Call, TailCall, FunctionRef, TypeArgumentDefault, Set) keep the
// subroutine's index and are not rewritten to its body offset; the
// Subroutine table entries map each index to that offset.
//
// emitSourceMap controls only whether the SourceMap block's triples are
// written; the block header is always present. With it off the block is
// smaller, so every offset after it (subroutine bodies, main) moves down
// by the size of the omitted triples.
func (p *Program) Pack(emitSourceMap bool) []byte {
	var bin []byte

	address := uint32(5) // Jump opcode + its 4-byte address
	bin = append(bin, byte(OpJumpHeader))
	bin = appendUint32(bin, 0) // patched below, once the storage size is known

	for _, item := range p.Storage.Entries() {
		address += 8 + 2 + uint32(len(item))
	}
	binary.LittleEndian.PutUint32(bin[1:5], address)

	for _, item := range p.Storage.Entries() {
		bin = appendUint64(bin, contentHash(item))
		bin = appendUint16(bin, uint16(len(item)))
		bin = append(bin, item...)
	}

	sourceMapSize := uint32(0)
	if emitSourceMap {
		for _, routine := range p.Subroutines {
			sourceMapSize += uint32(len(routine.SourceMap)) * sourceMapEntrySize
		}
		sourceMapSize += uint32(len(p.SourceMap)) * sourceMapEntrySize
	}

	bin = append(bin, byte(OpSourceMap))
	bin = appendUint32(bin, sourceMapSize)
	address += 1 + 4 + sourceMapSize

	bytecodePosOffset := address
	bytecodePosOffset += uint32(len(p.Subroutines)) * subroutineTableEntrySize
	bytecodePosOffset += 1 + 4 // OpMain + address

	if emitSourceMap {
		for _, routine := range p.Subroutines {
			for _, entry := range routine.SourceMap {
				bin = appendUint32(bin, bytecodePosOffset+entry.bytecodePos)
				bin = appendUint32(bin, entry.sourcePos)
				bin = appendUint32(bin, entry.sourceEnd)
			}
			bytecodePosOffset += uint32(len(routine.Ops))
		}
		for _, entry := range p.SourceMap {
			bin = appendUint32(bin, bytecodePosOffset+entry.bytecodePos)
			bin = appendUint32(bin, entry.sourcePos)
			bin = appendUint32(bin, entry.sourceEnd)
		}
	}

	address += 1 + 4 // OpMain + address
	address += uint32(len(p.Subroutines)) * subroutineTableEntrySize

	for _, routine := range p.Subroutines {
		bin = append(bin, byte(OpSubroutine))
		bin = appendUint32(bin, routine.NameAddress)
		bin = appendUint32(bin, address)
		bin = append(bin, routine.Flags())
		address += uint32(len(routine.Ops))
	}

	bin = append(bin, byte(OpMain))
	bin = appendUint32(bin, address)

	for _, routine := range p.Subroutines {
		bin = append(bin, routine.Ops...)
	}

	bin = append(bin, p.Ops...)
	bin = append(bin, byte(OpHalt))

	return bin
}

func appendUint16(b []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(b, buf[:]...)
}

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

func appendUint64(b []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}

// contentHash mirrors the dedup hash the storage pool keys entries by, so
// a reader of the packaged image (and the VM loading it) can verify a
// storage entry's bytes against its hash independently of this package.
func contentHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
