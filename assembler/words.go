package assembler

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

// WordsFromBytes reads a flat big-endian word stream into host-order
// words. A trailing fragment shorter than a word is dropped.
func WordsFromBytes(data []byte) []uint32 {
	if rem := len(data) % 4; rem != 0 {
		logrus.Warnf("input is not a whole number of words, dropping %d trailing bytes", rem)
	}
	words := make([]uint32, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		words = append(words, binary.BigEndian.Uint32(data[i:]))
	}
	return words
}

// BytesFromWords writes host-order words as a flat big-endian stream.
func BytesFromWords(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}
