package transcode

import "iter"

// Decode reads the code point at the start of src and returns it with the
// number of units consumed.
//
// An empty src returns (0, 0). A sequence cut short by the end of src folds
// only the units present.
func Decode[U Unit](src []U) (CodePoint, int) {
	if len(src) == 0 {
		return 0, 0
	}
	size := SequenceLength(src[0])
	n := min(size, len(src))

	switch WidthOf[U]() {
	case Width8:
		cp := CodePoint(src[0]) & utf8Masks[size-1]
		for _, c := range src[1:n] {
			cp = cp<<6 | CodePoint(c)&0x3F
		}
		return cp, n
	case Width16:
		if n == 1 {
			return CodePoint(src[0]) & 0xFFFF, 1
		}
		return surrSelf + (CodePoint(src[0])&0x3FF)<<10 | CodePoint(src[1])&0x3FF, 2
	}
	return CodePoint(src[0]), 1
}

// CodePoints returns an iterator over the code points of src, paired with the
// unit offset each one starts at.
func CodePoints[U Unit](src []U) iter.Seq2[int, CodePoint] {
	return func(yield func(int, CodePoint) bool) {
		for i := 0; i < len(src); {
			cp, n := Decode(src[i:])
			if !yield(i, cp) {
				return
			}
			i += n
		}
	}
}
