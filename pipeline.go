// Package bwcodec assembles the checksum, transform, statistics, and
// range-coder packages into single-block Compress/Decompress operations.
// It is the one integration surface this module owns, mirroring how the
// teacher's bzip2.Writer/bzip2.Reader assemble their own transform and
// entropy-coding stack.
package bwcodec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bwcodec/bwcodec/checksum"
	"github.com/bwcodec/bwcodec/rangecoder"
	"github.com/bwcodec/bwcodec/stats"
	"github.com/bwcodec/bwcodec/transform"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bwcodec: " + string(e) }

// ErrTruncatedStream is returned when a compressed stream ends before its
// primary index or checksum trailer could be read in full.
const ErrTruncatedStream = Error("truncated stream")

// ErrChecksumMismatch is returned when a decompressed block's CRC-32 does
// not match the trailer recorded alongside it, meaning the compressed
// stream was corrupted.
const ErrChecksumMismatch = Error("checksum mismatch")

// headerLen is the size in bytes of the primary-index and body-length
// fields that precede the range-coded body. The body length counts
// reshaped (post RLE/MTF/BWT) symbols, since a range-coded stream carries
// no self-delimiting end marker of its own.
const headerLen = 8

// trailerLen is the size in bytes of the CRC-32 checksum that follows the
// range-coded body.
const trailerLen = 4

// Pipeline runs the BWT -> MTF -> RLE reshaping stages ahead of an
// adaptive order-0 range coder. A Pipeline value is stateless between
// calls to Compress/Decompress and safe to reuse, but not safe for
// concurrent use by multiple goroutines on the same call.
type Pipeline struct{}

// NewPipeline returns a ready-to-use Pipeline.
func NewPipeline() *Pipeline { return &Pipeline{} }

// Compress encodes src into the wire format: a 4-byte big-endian primary
// index, a 4-byte big-endian reshaped-body length, the range-coded body,
// and a 4-byte CRC-32 trailer over src.
func (p *Pipeline) Compress(src []byte) ([]byte, error) {
	var primaryIndex int
	reshaped := src
	if len(src) > 0 {
		bwt, idx, err := transform.BWTTransform(src)
		if err != nil {
			return nil, err
		}
		primaryIndex = idx
		reshaped = transform.RLEEncode(transform.MTFEncode(bwt))
	}

	var buf bytes.Buffer
	var hdr [headerLen]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(primaryIndex))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(len(reshaped)))
	buf.Write(hdr[:])

	if err := encodeAdaptive(&buf, reshaped); err != nil {
		return nil, err
	}

	sum := checksum.NewCRC32()
	sum.Update(src)
	var trailer [trailerLen]byte
	binary.BigEndian.PutUint32(trailer[:], sum.Finalize())
	buf.Write(trailer[:])

	return buf.Bytes(), nil
}

// Decompress reverses Compress, verifying the checksum trailer before
// returning the original bytes.
func (p *Pipeline) Decompress(coded []byte) ([]byte, error) {
	if len(coded) < headerLen+trailerLen {
		return nil, ErrTruncatedStream
	}

	primaryIndex := int(binary.BigEndian.Uint32(coded[0:4]))
	bodyLen := int(binary.BigEndian.Uint32(coded[4:8]))
	body := coded[headerLen : len(coded)-trailerLen]
	wantSum := binary.BigEndian.Uint32(coded[len(coded)-trailerLen:])

	var out []byte
	if bodyLen > 0 {
		reshaped, err := decodeAdaptive(bytes.NewReader(body), bodyLen)
		if err != nil {
			return nil, err
		}
		unRLE, err := transform.RLEDecode(reshaped)
		if err != nil {
			return nil, err
		}
		unMTF := transform.MTFDecode(unRLE)
		out, err = transform.BWTReverse(unMTF, primaryIndex)
		if err != nil {
			return nil, err
		}
	}

	sum := checksum.NewCRC32()
	sum.Update(out)
	if sum.Finalize() != wantSum {
		return nil, ErrChecksumMismatch
	}
	return out, nil
}

// encodeAdaptive range-codes buf with a per-byte adaptive order-0 model
// seeded with count 1 for every byte value, so no symbol ever starts at
// zero frequency.
func encodeAdaptive(w io.Writer, buf []byte) error {
	enc := rangecoder.NewEncoder(w)
	model := seededModel()
	for _, b := range buf {
		low, high, total, err := model.FreqBounds(b)
		if err != nil {
			return err
		}
		if err := enc.Encode(low, high, total); err != nil {
			return err
		}
		model.Update(b)
	}
	return enc.Flush()
}

// decodeAdaptive is the inverse of encodeAdaptive. The adaptive model
// carries no explicit end-of-stream symbol, so the caller must pass the
// exact number of symbols to decode; Compress records that count in the
// stream header.
func decodeAdaptive(r *bytes.Reader, n int) ([]byte, error) {
	dec, err := rangecoder.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	model := seededModel()
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		total := model.Total()
		target, err := dec.GetFreq(total)
		if err != nil {
			return nil, err
		}
		sym, err := model.SymbolAt(target)
		if err != nil {
			return nil, err
		}
		low, high, _, err := model.FreqBounds(sym)
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(low, high, total); err != nil {
			return nil, err
		}
		model.Update(sym)
		out = append(out, sym)
	}
	return out, nil
}

func seededModel() *stats.Fenwick[byte] {
	m := stats.NewFenwick[byte]()
	for i := 0; i < 256; i++ {
		m.Update(byte(i))
	}
	return m
}
