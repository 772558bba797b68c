package transcode

// Convert converts src into dst after checking that dst can hold the whole
// result. It returns the number of units written, which is Size[D](src).
//
// If dst is too small, Convert returns a *CapacityError and leaves dst untouched.
func Convert[D, S Unit](dst []D, src []S) (int, error) {
	required := Size[D](src)
	if len(dst) < required {
		return 0, &CapacityError{Required: required, Available: len(dst), Width: WidthOf[D]()}
	}
	return Transcode(dst, src), nil
}

// Copy converts the unread units of r into the free space of w through Convert.
// On success both cursors move past the units consumed and written; on failure
// neither moves.
func Copy[D, S Unit](w *UnitWriter[D], r *UnitReader[S]) (int, error) {
	n, err := Convert(w.B[w.N:], r.Remaining())
	if err != nil {
		return 0, err
	}
	r.N = len(r.B)
	w.N += n
	return n, nil
}
