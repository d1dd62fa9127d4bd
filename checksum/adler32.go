package checksum

// adlerMod is the largest prime smaller than 65536, the modulus mandated by
// the Adler-32 definition. Using 65535 here instead is a classic bug: it
// silently desyncs Adler-32 from every known-answer vector.
const adlerMod = 65521

// Adler32 is an incremental Adler-32 accumulator. The zero value is not
// usable; construct one with NewAdler32.
type Adler32 struct {
	a, b uint32
}

// NewAdler32 returns a fresh Adler-32 accumulator seeded at (a, b) = (1, 0),
// the algorithm's required initial state.
func NewAdler32() *Adler32 {
	return &Adler32{a: 1, b: 0}
}

// Update folds buf into the running checksum and returns the number of bytes
// consumed. Update is associative over concatenation: hashing a⧺b in one
// call produces the same state as hashing a then updating with b.
func (c *Adler32) Update(buf []byte) int {
	a, b := c.a, c.b

	// NMAX is the largest number of bytes that can be summed into a before an
	// overflow of the uint32 accumulator is possible, deferring the (slow)
	// modulo operation to run once per chunk rather than once per byte.
	const nmax = 5552

	total := len(buf)
	n := total
	for n > 0 {
		k := n
		if k > nmax {
			k = nmax
		}
		for _, x := range buf[:k] {
			a += uint32(x)
			b += a
		}
		a %= adlerMod
		b %= adlerMod
		buf = buf[k:]
		n -= k
	}

	c.a, c.b = a, b
	return total
}

// Finalize returns the current checksum value without resetting state.
func (c *Adler32) Finalize() uint32 {
	return (c.b << 16) | c.a
}
