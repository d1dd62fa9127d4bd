package checksum

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
)

// CRC32 is an incremental CRC-32 accumulator using the IEEE 802.3
// polynomial 0xEDB88320 (reflected), the same table as the standard
// library's hash/crc32.IEEE.
type CRC32 struct {
	crc uint32
	n   int64
}

// NewCRC32 returns a fresh CRC-32 accumulator.
func NewCRC32() *CRC32 {
	return &CRC32{crc: 0}
}

// Update folds buf into the running checksum and returns the number of
// bytes consumed.
func (c *CRC32) Update(buf []byte) int {
	c.crc = crc32.Update(c.crc, crc32.IEEETable, buf)
	c.n += int64(len(buf))
	return len(buf)
}

// Finalize returns the current checksum value without resetting state.
func (c *CRC32) Finalize() uint32 {
	return c.crc
}

// Len reports the number of bytes folded into the checksum so far.
func (c *CRC32) Len() int64 {
	return c.n
}

// Combine merges the checksum of a second, independently-hashed byte range
// into c, as though the bytes behind other had been appended to the bytes
// behind c and hashed in one pass. otherLen is the byte length that other
// was computed over. This lets a caller checksum several BWT blocks encoded
// on separate goroutines and fold the results together in O(log otherLen)
// without re-scanning any byte.
func (c *CRC32) Combine(other *CRC32, otherLen int64) {
	c.crc = hashutil.CombineCRC32(crc32.IEEE, c.crc, other.crc, otherLen)
	c.n += otherLen
}
