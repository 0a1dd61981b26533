// Package word provides bit addressing primitives over 64-bit storage words.
//
// Layout:
//   - Logical bit i lives in word i/64 at bit position i%64.
//   - Bit 0 of a word is the least significant bit (LSB-first).
//   - Multi-bit reads and writes treat the range as a little-endian
//     integer: the bit at the lowest logical index becomes bit 0 of
//     the value.
//
// All functions assume pre-validated arguments; callers perform bounds
// checking. Offsets and counts outside [0, 64] are undefined.
package word
