// Package sais implements a linear-time suffix array construction algorithm
// (SA-IS, Nong/Zhang/Chan), ported from Yuta Mori's MIT-licensed reference
// implementation. It compares the full length-n window at every position,
// so when bwt.go feeds it a doubled buffer the result already reflects
// cyclic-rotation order with no separate tie-break pass required.
package sais

// ComputeSA computes the suffix array of T and places the result in SA.
// Both T and SA must have the same length.
func ComputeSA(T []byte, SA []int) {
	if len(SA) != len(T) {
		panic("sais: mismatched slice lengths")
	}
	computeSAByte(T, SA, 0, len(T), 256)
}
