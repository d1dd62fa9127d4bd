package transform

import "github.com/bwcodec/bwcodec/transform/internal/sais"

// BWTTransform computes the Burrows-Wheeler Transform of src, returning the
// transformed bytes and the primary index (the row of the rotation matrix
// that equals the original string).
//
// The suffix array is built over a doubled copy of src (src appended to
// itself) rather than src with an appended sentinel. Comparing the full
// doubled window at every position already orders ties the same way cyclic
// rotation comparison would, so no separate sentinel-removal or fixup pass
// is needed once the suffix array comes back.
func BWTTransform(src []byte) (dst []byte, primaryIndex int, err error) {
	if len(src) == 0 {
		return nil, -1, ErrEmptyBuffer
	}

	n := len(src)
	doubled := make([]byte, 2*n)
	copy(doubled, src)
	copy(doubled[n:], src)

	sa := make([]int, 2*n)
	sais.ComputeSA(doubled, sa)

	dst = make([]byte, n)
	j := 0
	for _, i := range sa {
		if i >= n {
			continue
		}
		if i == 0 {
			primaryIndex = j
			i = n
		}
		dst[j] = doubled[i-1]
		j++
	}
	return dst, primaryIndex, nil
}

// BWTReverse undoes BWTTransform given the transformed bytes and the
// primary index produced alongside them, via the standard LF-mapping walk:
// bucket the bytes by value to learn each symbol's rank among equal bytes,
// then follow the resulting permutation starting from the primary index.
func BWTReverse(src []byte, primaryIndex int) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyBuffer
	}
	if primaryIndex < 0 || primaryIndex >= len(src) {
		return nil, ErrMissingIndex
	}

	var counts [256]int
	for _, b := range src {
		counts[b]++
	}

	var sum int
	for b, c := range counts {
		sum += c
		counts[b] = sum - c
	}

	next := make([]int, len(src))
	for i, b := range src {
		next[counts[b]] = i
		counts[b]++
	}

	dst := make([]byte, len(src))
	pos := next[primaryIndex]
	for i := range dst {
		dst[i] = src[pos]
		pos = next[pos]
	}
	return dst, nil
}
