package bwcodec

import (
	"bytes"
	"testing"

	"github.com/bwcodec/bwcodec/internal/testutil"
)

func TestPipelineRoundTrip(t *testing.T) {
	p := NewPipeline()
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("Hello, world!"),
		[]byte("SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES"),
		bytes.Repeat([]byte("ab"), 5000),
	}

	for _, c := range cases {
		coded, err := p.Compress(c)
		if err != nil {
			t.Fatalf("Compress(%q): %v", c, err)
		}
		decoded, err := p.Decompress(coded)
		if err != nil {
			t.Fatalf("Decompress after Compress(%q): %v", c, err)
		}
		if !bytes.Equal(decoded, c) {
			t.Errorf("round trip mismatch: src=%q got=%q", c, decoded)
		}
	}
}

func TestPipelineRandomRoundTrip(t *testing.T) {
	p := NewPipeline()
	r := testutil.NewRand(1)
	for trial := 0; trial < 25; trial++ {
		n := r.Intn(20000)
		src := r.Bytes(n)

		coded, err := p.Compress(src)
		if err != nil {
			t.Fatalf("trial %d: Compress: %v", trial, err)
		}
		decoded, err := p.Decompress(coded)
		if err != nil {
			t.Fatalf("trial %d: Decompress: %v", trial, err)
		}
		if !bytes.Equal(decoded, src) {
			t.Fatalf("trial %d: round trip mismatch, len(src)=%d", trial, n)
		}
	}
}

func TestPipelineCompressesRepetitiveInput(t *testing.T) {
	p := NewPipeline()
	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)
	coded, err := p.Compress(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(coded) >= len(src) {
		t.Errorf("expected repetitive input to compress: coded len %d, src len %d", len(coded), len(src))
	}
}

func TestPipelineDetectsCorruption(t *testing.T) {
	p := NewPipeline()
	coded, err := p.Compress([]byte("corrupt me please"))
	if err != nil {
		t.Fatal(err)
	}
	corrupted := append([]byte(nil), coded...)
	corrupted[len(corrupted)-1] ^= 0xFF

	if _, err := p.Decompress(corrupted); err != ErrChecksumMismatch {
		t.Errorf("Decompress of corrupted trailer: error = %v, want ErrChecksumMismatch", err)
	}
}

func TestPipelineTruncatedStream(t *testing.T) {
	p := NewPipeline()
	if _, err := p.Decompress([]byte{1, 2, 3}); err != ErrTruncatedStream {
		t.Errorf("Decompress of short stream: error = %v, want ErrTruncatedStream", err)
	}
}
