package transcode

import (
	"strings"
	"testing"
	"unicode/utf16"
)

var benchText = strings.Repeat("The quick brown 🦊 jumps over the lazy 🐕, ça va? 日本語. ", 64)

func BenchmarkSizeUTF8ToUTF16(b *testing.B) {
	src := []uint8(benchText)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Size[uint16](src)
	}
}

func BenchmarkTranscodeUTF8ToUTF16(b *testing.B) {
	src := []uint8(benchText)
	dst := make([]uint16, Size[uint16](src))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Transcode(dst, src)
	}
}

func BenchmarkConvertUTF8ToUTF16(b *testing.B) {
	src := []uint8(benchText)
	dst := make([]uint16, Size[uint16](src))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Convert(dst, src)
	}
}

func BenchmarkConvertUTF16ToUTF8(b *testing.B) {
	src := make([]uint16, Size[uint16]([]uint8(benchText)))
	Transcode(src, []uint8(benchText))
	dst := make([]uint8, Size[uint8](src))
	b.SetBytes(int64(len(dst)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Convert(dst, src)
	}
}

// Baseline comparison using the standard library, which allocates on every call.
func BenchmarkStandardUTF16Encode(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = utf16.Encode([]rune(benchText))
	}
}
