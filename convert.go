package transcode

// Transcode converts src into dst in a single forward pass and returns the
// number of units written.
//
// dst is not checked: it must hold at least Size[D](src) units or Transcode
// panics part way through. Use Convert when the destination is not known to fit.
// Units of equal width are copied one for one.
func Transcode[D, S Unit](dst []D, src []S) int {
	if WidthOf[D]() == WidthOf[S]() {
		if len(src) == 0 {
			return 0
		}
		_ = dst[len(src)-1]
		for i, u := range src {
			dst[i] = D(u)
		}
		return len(src)
	}

	n := 0
	for i := 0; i < len(src); {
		cp, size := Decode(src[i:])
		i += size
		n += Encode(dst[n:], cp)
	}
	return n
}
