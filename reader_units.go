package transcode

import "io"

// UnitReader decodes code points from a slice of units, tracking its position.
type UnitReader[U Unit] struct {
	B []U // source slice
	N int // current read position, in units
}

// NewUnitReader creates a new UnitReader.
func NewUnitReader[U Unit](b []U) *UnitReader[U] {
	return &UnitReader[U]{B: b}
}

// ReadCodePoint decodes the code point at the current position and moves past it.
// It returns io.EOF once every unit has been read.
func (r *UnitReader[U]) ReadCodePoint() (CodePoint, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	cp, n := Decode(r.B[r.N:])
	r.N += n
	return cp, nil
}

// PeekCodePoint decodes the code point at the current position without moving.
func (r *UnitReader[U]) PeekCodePoint() (CodePoint, int, error) {
	if r.N >= len(r.B) {
		return 0, 0, io.EOF
	}
	cp, n := Decode(r.B[r.N:])
	return cp, n, nil
}

// Seek implements the [io.Seeker] interface over unit positions.
// Positions past the end are clamped to the end, where reads return io.EOF.
// Seeking into the middle of a sequence is allowed; what is decoded there is unspecified.
func (r *UnitReader[U]) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(r.N)
	case io.SeekEnd:
		base = int64(len(r.B))
	default:
		return int64(r.N), ErrInvalidWhence
	}

	pos := base + offset
	if pos < 0 {
		return int64(r.N), ErrInvalidSeek
	}
	r.N = int(min(pos, int64(len(r.B))))
	return int64(r.N), nil
}

// Reset rewinds the reader to the start of its slice.
func (r *UnitReader[U]) Reset() { r.N = 0 }

// Len returns the number of units read.
func (r *UnitReader[U]) Len() int { return r.N }

// Size returns the length of the underlying slice.
func (r *UnitReader[U]) Size() int { return len(r.B) }

// Available returns the number of units left to read.
func (r *UnitReader[U]) Available() int {
	return max(len(r.B)-r.N, 0)
}

// Remaining returns a slice view of the unread units.
func (r *UnitReader[U]) Remaining() []U {
	if r.N >= len(r.B) {
		return r.B[len(r.B):]
	}
	return r.B[r.N:]
}
