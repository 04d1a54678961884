package assembler

import (
	"bytes"
	"testing"
)

func TestWordsFromBytes(t *testing.T) {
	data := []byte{0x0D, 0x09, 0x50, 0x00, 0x05, 0x7F, 0xFF, 0xF0}
	words := WordsFromBytes(data)
	want := []uint32{0x0D095000, 0x057FFFF0}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = %08X, want %08X", i, words[i], want[i])
		}
	}
}

func TestBytesFromWords(t *testing.T) {
	data := BytesFromWords([]uint32{0x0D095000, 0x057FFFF0})
	want := []byte{0x0D, 0x09, 0x50, 0x00, 0x05, 0x7F, 0xFF, 0xF0}
	if !bytes.Equal(data, want) {
		t.Errorf("bytes = %02x, want %02x", data, want)
	}
}

func TestWordsFromBytes_TrailingFragment(t *testing.T) {
	data := []byte{0xFC, 0x00, 0x00, 0x00, 0xDE, 0xAD}
	words := WordsFromBytes(data)
	if len(words) != 1 || words[0] != 0xFC000000 {
		t.Errorf("words = %08X, want just FC000000", words)
	}
}

func TestWordsFromBytes_Empty(t *testing.T) {
	if words := WordsFromBytes(nil); len(words) != 0 {
		t.Errorf("got %d words from empty input", len(words))
	}
}

func TestWords_RoundTrip(t *testing.T) {
	in := []uint32{0, 1, 0xFFFFFFFF, 0x0D095000, 0x80000001}
	out := WordsFromBytes(BytesFromWords(in))
	if len(out) != len(in) {
		t.Fatalf("got %d words, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("word %d = %08X, want %08X", i, out[i], in[i])
		}
	}
}
