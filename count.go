package transcode

import "golang.org/x/exp/constraints"

// CodePointCount returns the number of code points in src.
func CodePointCount[U Unit](src []U) int {
	if WidthOf[U]() == Width32 {
		return len(src)
	}
	count := 0
	for i := 0; i < len(src); count++ {
		i += SequenceLength(src[i])
	}
	return count
}

// Len returns the number of units cp occupies at width w.
//
// Scalars past MaxCodePoint take no units at 8 and 16 bits, matching what
// Encode writes for them. A plain threshold table would report 4 and 2 there;
// Len does not, so Size always equals the units Transcode writes.
func (cp CodePoint) Len(w Width) int {
	switch w {
	case Width8:
		switch {
		case cp < 0x80:
			return 1
		case cp < 0x800:
			return 2
		case cp < surrSelf:
			return 3
		case cp < limit:
			return 4
		}
		return 0
	case Width16:
		switch {
		case cp < surrSelf:
			return 1
		case cp < limit:
			return 2
		}
		return 0
	}
	return 1
}

// UnitCount returns the number of D units needed to encode cp.
func UnitCount[D Unit](cp CodePoint) int {
	return cp.Len(WidthOf[D]())
}

// Size returns the number of D units needed to hold src once converted.
// It walks src the way Transcode does but writes nothing, so a destination
// of exactly this length is always large enough.
func Size[D, S Unit](src []S) int {
	w := WidthOf[D]()
	if w == WidthOf[S]() {
		return len(src)
	}
	size := 0
	for i := 0; i < len(src); {
		cp, n := Decode(src[i:])
		i += n
		size += cp.Len(w)
	}
	return size
}

// MaxSize returns an upper bound on Size[D] for any n units of S, without
// reading them. It suits callers that would rather over-allocate than walk the
// source twice. The bound holds for malformed input as well.
func MaxSize[D, S Unit, N constraints.Integer](n N) N {
	return n * N(expansion(WidthOf[D](), WidthOf[S]()))
}

// expansion is the most D units a single S unit can turn into.
func expansion(d, s Width) int {
	switch {
	case d >= s:
		return 1
	case d == Width16:
		return 2 // one 32-bit unit, one surrogate pair
	case s == Width16:
		return 3 // a BMP unit takes up to 3 bytes; a pair takes 4 for 2 units
	}
	return 4
}
