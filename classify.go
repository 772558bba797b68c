package transcode

// utf8Lengths maps the top five bits of a leading byte to its sequence length.
// Continuation bytes and 0xF8-0xFF map to 1.
var utf8Lengths = [32]uint8{
	// 0xxxxxxx
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 10xxxxxx
	1, 1, 1, 1, 1, 1, 1, 1,
	// 110xxxxx
	2, 2, 2, 2,
	// 1110xxxx
	3, 3,
	// 11110xxx
	4,
	// 11111xxx
	1,
}

// utf8Masks keeps the payload bits of a leading byte, indexed by sequence length - 1.
var utf8Masks = [4]CodePoint{0x7F, 0x1F, 0x0F, 0x07}

// utf16Pairs has bit n set when a unit whose top six bits are n starts a surrogate pair.
const utf16Pairs uint64 = 1 << (0xD800 >> 10)

// SequenceLength returns the number of units in the sequence that lead starts.
// It is total: any unit yields a length, whether or not it can start a sequence.
func SequenceLength[U Unit](lead U) int {
	switch WidthOf[U]() {
	case Width8:
		return int(utf8Lengths[uint8(lead)>>3])
	case Width16:
		return int(utf16Pairs>>(uint16(lead)>>10)&1) + 1
	}
	return 1
}
