// Package transform implements the reversible byte-in/byte-out codecs that
// reshape input ahead of entropy coding: Run-Length (RLE), Move-to-Front
// (MTF), and the Burrows-Wheeler Transform (BWT).
package transform

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "transform: " + string(e) }

// ErrEmptyBuffer is returned when BWTTransform or BWTReverse is invoked on
// an empty input. The RLE and MTF functions accept empty input and return
// empty output without an error.
const ErrEmptyBuffer = Error("empty buffer")

// ErrMissingIndex is returned when BWTReverse is given a primary index
// outside [0, len(src)).
const ErrMissingIndex = Error("missing primary index")

// ErrSymbolNotFound names the MTF failure of a byte absent from its table.
// No function returns it: the table always holds all 256 byte values, and
// the MTF table lookup panics if that invariant is ever broken.
const ErrSymbolNotFound = Error("symbol not found in table")

// ErrMissingMapping names the BWT-reverse failure of a byte occurrence
// missing from the side tables. No function returns it: BWTReverse does not
// validate its input, so bytes that are not a BWT output for the given
// primary index decode to wrong bytes rather than to an error.
const ErrMissingMapping = Error("missing byte mapping")

// ErrTruncatedRun is returned when RLE decoding hits end of input in the
// middle of a run record (marker byte with no run byte or count following).
const ErrTruncatedRun = Error("truncated run record")
