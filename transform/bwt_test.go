package transform

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestBWTKnownVectors(t *testing.T) {
	vectors := []struct {
		input string
		want  string
		ptr   int
	}{
		{"Hello, world!", ",do!lHrellwo ", 3},
		{"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES", "TEXYDST.E.IXIXIXXSSMPPS.B..E.S.EUSFXDIIOIIIT", 29},
		{"banana", "nnbaaa", 3},
		// Tied-prefix rotations: [123,139,39,62,139].
		{"\x7b\x8b\x27\x3e\x8b", "\x8b\x27\x8b\x7b\x3e", 2},
	}

	for _, v := range vectors {
		dst, ptr, err := BWTTransform([]byte(v.input))
		if err != nil {
			t.Fatalf("BWTTransform(%q): %v", v.input, err)
		}
		if string(dst) != v.want {
			t.Errorf("BWTTransform(%q) = %q, want %q", v.input, dst, v.want)
		}
		if ptr != v.ptr {
			t.Errorf("BWTTransform(%q) ptr = %d, want %d", v.input, ptr, v.ptr)
		}

		back, err := BWTReverse(dst, ptr)
		if err != nil {
			t.Fatalf("BWTReverse: %v", err)
		}
		if string(back) != v.input {
			t.Errorf("BWTReverse round trip = %q, want %q", back, v.input)
		}
	}
}

func TestBWTEmptyBuffer(t *testing.T) {
	if _, _, err := BWTTransform(nil); err != ErrEmptyBuffer {
		t.Errorf("BWTTransform(nil) error = %v, want ErrEmptyBuffer", err)
	}
	if _, err := BWTReverse(nil, 0); err != ErrEmptyBuffer {
		t.Errorf("BWTReverse(nil) error = %v, want ErrEmptyBuffer", err)
	}
}

func TestBWTReverseBadIndex(t *testing.T) {
	if _, err := BWTReverse([]byte("abc"), -1); err != ErrMissingIndex {
		t.Errorf("BWTReverse with negative index: error = %v, want ErrMissingIndex", err)
	}
	if _, err := BWTReverse([]byte("abc"), 3); err != ErrMissingIndex {
		t.Errorf("BWTReverse with out-of-range index: error = %v, want ErrMissingIndex", err)
	}
}

func TestBWTRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		src := make([]byte, 1+r.Intn(2000))
		r.Read(src)
		dst, ptr, err := BWTTransform(src)
		if err != nil {
			t.Fatalf("trial %d: BWTTransform: %v", trial, err)
		}
		back, err := BWTReverse(dst, ptr)
		if err != nil {
			t.Fatalf("trial %d: BWTReverse: %v", trial, err)
		}
		if !bytes.Equal(back, src) {
			t.Fatalf("trial %d: round trip mismatch, len(src)=%d", trial, len(src))
		}
	}
}

func TestBWTRepeatedBytes(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 500)
	dst, ptr, err := BWTTransform(src)
	if err != nil {
		t.Fatal(err)
	}
	back, err := BWTReverse(dst, ptr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, src) {
		t.Fatal("round trip mismatch on uniform run")
	}
}
