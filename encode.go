package transcode

// Encode writes cp into dst and returns the number of units written, which is
// always UnitCount[U](cp). dst must have room for them.
//
// Scalars past MaxCodePoint write nothing at 8 and 16 bits; at 32 bits every
// value is stored as is.
func Encode[U Unit](dst []U, cp CodePoint) int {
	switch WidthOf[U]() {
	case Width8:
		switch {
		case cp < 0x80:
			dst[0] = U(cp)
			return 1
		case cp < 0x800:
			_ = dst[1]
			dst[0] = U(0xC0 | cp>>6)
			dst[1] = U(0x80 | cp&0x3F)
			return 2
		case cp < surrSelf:
			_ = dst[2]
			dst[0] = U(0xE0 | cp>>12)
			dst[1] = U(0x80 | cp>>6&0x3F)
			dst[2] = U(0x80 | cp&0x3F)
			return 3
		case cp < limit:
			_ = dst[3]
			dst[0] = U(0xF0 | cp>>18)
			dst[1] = U(0x80 | cp>>12&0x3F)
			dst[2] = U(0x80 | cp>>6&0x3F)
			dst[3] = U(0x80 | cp&0x3F)
			return 4
		}
		return 0
	case Width16:
		switch {
		case cp < surrSelf:
			dst[0] = U(cp)
			return 1
		case cp < limit:
			_ = dst[1]
			cp -= surrSelf
			dst[0] = U(0xD800 | cp>>10)
			dst[1] = U(0xDC00 | cp&0x3FF)
			return 2
		}
		return 0
	}
	dst[0] = U(cp)
	return 1
}
