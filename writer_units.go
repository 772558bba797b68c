package transcode

// UnitWriter encodes code points into a pre-allocated slice of units.
// It never grows the slice.
type UnitWriter[U Unit] struct {
	B []U // destination slice
	N int // current write position, in units
}

// NewUnitWriter creates a new UnitWriter over the full capacity of p.
func NewUnitWriter[U Unit](p []U) *UnitWriter[U] {
	return &UnitWriter[U]{B: p[:cap(p)]}
}

// WriteCodePoint encodes cp at the current position.
// A code point that does not fit is not written at all and a *CapacityError is returned.
func (w *UnitWriter[U]) WriteCodePoint(cp CodePoint) error {
	if need := UnitCount[U](cp); w.Available() < need {
		return &CapacityError{Required: need, Available: w.Available(), Width: WidthOf[U]()}
	}
	w.N += Encode(w.B[w.N:], cp)
	return nil
}

// Reset allows the underlying slice to be reused.
func (w *UnitWriter[U]) Reset() { w.N = 0 }

// Len returns the number of units written.
func (w *UnitWriter[U]) Len() int { return w.N }

// Size returns the capacity of the underlying slice.
func (w *UnitWriter[U]) Size() int { return len(w.B) }

// Available returns the number of units available for writing.
func (w *UnitWriter[U]) Available() int { return len(w.B) - w.N }

// Units returns a slice view of the written units.
func (w *UnitWriter[U]) Units() []U { return w.B[:w.N] }
