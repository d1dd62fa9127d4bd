package transform

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestMTFRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("banana"),
		[]byte("aaaaaaaaaa"),
		{0x00, 0xff, 0x00, 0xff, 1, 2, 3},
	}
	for _, c := range cases {
		enc := MTFEncode(c)
		dec := MTFDecode(enc)
		if !bytes.Equal(dec, c) {
			t.Errorf("round trip mismatch: src=%q got=%q", c, dec)
		}
	}
}

func TestMTFRepeatedByteEncodesToZero(t *testing.T) {
	enc := MTFEncode([]byte("aaaa"))
	for i := 1; i < len(enc); i++ {
		if enc[i] != 0 {
			t.Errorf("enc[%d] = %d, want 0 (repeat of most-recent byte)", i, enc[i])
		}
	}
}

func TestMTFFirstOccurrenceEqualsByteValue(t *testing.T) {
	enc := MTFEncode([]byte{42})
	if enc[0] != 42 {
		t.Errorf("first byte in a fresh table should encode to its own value, got %d", enc[0])
	}
}

func TestMTFRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		src := make([]byte, r.Intn(500))
		r.Read(src)
		enc := MTFEncode(src)
		dec := MTFDecode(enc)
		if !bytes.Equal(dec, src) {
			t.Fatalf("trial %d: round trip mismatch, len(src)=%d", trial, len(src))
		}
	}
}
