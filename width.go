package transcode

import (
	"fmt"
	"math"
)

// Width is the size of a code unit in bits.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// WidthOf returns the width of the unit type U.
func WidthOf[U Unit]() Width {
	switch uint32(^U(0)) {
	case math.MaxUint8:
		return Width8
	case math.MaxUint16:
		return Width16
	}
	return Width32
}

// MaxLen returns the most units a single code point occupies at width w.
func (w Width) MaxLen() int {
	switch w {
	case Width8:
		return 4
	case Width16:
		return 2
	}
	return 1
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "utf-8"
	case Width16:
		return "utf-16"
	case Width32:
		return "utf-32"
	}
	return fmt.Sprintf("Width(%d)", uint8(w))
}
