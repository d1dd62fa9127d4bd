// Package checksum implements the incremental integrity hashes used to
// validate core byte streams: Adler-32 and CRC-32 (IEEE 802.3, reflected).
package checksum

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "checksum: " + string(e) }
