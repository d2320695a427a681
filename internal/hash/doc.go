// Package hash provides fast, hardware-accelerated hashing utilities.
//
// # CRC32-Castagnoli (CRC32C)
//
// Blade keys in cliffgo are hashed with CRC32-Castagnoli (CRC32C), which
// provides:
//
//   - Hardware acceleration on x86 (SSE4.2) and ARM (CRC extension)
//   - Good dispersion for short integer sequences
//   - Stable results across processes and platforms
//
// # Usage
//
//	key := hash.Indices([]uint32{1, 3})
package hash
