// Package transcode converts Unicode text between 8, 16 and 32-bit code units.
//
// Every operation works on caller-owned slices and never allocates. Output is
// sized up front with Size, then written in a single pass by Transcode, or by
// Convert which checks the destination capacity first.
//
// Only well-formed input is covered. Truncated sequences, unpaired surrogates,
// overlong forms and scalars above MaxCodePoint are not detected; the results
// for them are unspecified.
package transcode

// Unit is a fixed-width code unit: 8 bits for UTF-8, 16 for UTF-16 and 32 for UTF-32.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// CodePoint is a Unicode scalar value.
type CodePoint uint32

// MaxCodePoint is the largest scalar value Unicode defines.
const MaxCodePoint CodePoint = 0x10FFFF

const (
	surrSelf = 0x10000  // first scalar outside the Basic Multilingual Plane
	limit    = 0x110000 // first value past MaxCodePoint
)
