package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Indices hashes a sequence of basis indices.
//
// Each index is packed as 4 little-endian bytes into a stack buffer of
// 64 bytes; longer sequences are fed to the checksum in chunks so the
// result does not depend on the chunk boundaries.
func Indices[T ~uint32](indices []T) uint32 {
	var buf [64]byte

	crc := uint32(0)
	n := 0

	for _, idx := range indices {
		if n == len(buf) {
			crc = crc32.Update(crc, crc32cTable, buf[:n])
			n = 0
		}
		binary.LittleEndian.PutUint32(buf[n:], uint32(idx))
		n += 4
	}

	return crc32.Update(crc, crc32cTable, buf[:n])
}
