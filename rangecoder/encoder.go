package rangecoder

import "io"

// Encoder emits a range-coded byte stream to an underlying io.Writer. A
// symbol is coded by calling Encode with the (low, high, total) cumulative
// frequency bounds a statistics model reports for it; the model must be
// queried for those bounds before it is updated with the new symbol, since
// the decoder performs the lookup in that same order.
type Encoder struct {
	w   io.Writer
	low uint64
	rng uint32

	// cache and cacheSize implement delayed-byte buffering: the byte that
	// would be emitted next is held back until it's known whether a later
	// carry out of low will need to ripple into it.
	cache     byte
	cacheSize int64

	err error
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:         w,
		rng:       0xFFFFFFFF,
		cacheSize: 1,
	}
}

// Encode codes one symbol given its cumulative frequency bounds: low and
// high delimit the symbol's sub-range within [0, total).
func (e *Encoder) Encode(low, high, total int64) error {
	if e.err != nil {
		return e.err
	}
	if total <= 0 {
		panic("rangecoder: total frequency must be positive")
	}
	if total > int64(topValue) {
		e.err = ErrRangeUnderflow
		return e.err
	}

	r := e.rng / uint32(total)
	e.low += uint64(low) * uint64(r)
	e.rng = r * uint32(high-low)

	for e.rng < topValue {
		e.rng <<= 8
		if err := e.shiftLow(); err != nil {
			e.err = err
			return err
		}
	}
	return nil
}

func (e *Encoder) shiftLow() error {
	if uint32(e.low>>32) != 0 || uint32(e.low) < topMask {
		temp := e.cache
		carry := byte(e.low >> 32)
		for {
			if _, err := e.w.Write([]byte{temp + carry}); err != nil {
				return err
			}
			temp = 0xFF
			e.cacheSize--
			if e.cacheSize == 0 {
				break
			}
		}
		e.cache = byte(uint32(e.low) >> 24)
	}
	e.cacheSize++
	e.low = uint64(uint32(e.low) << 8)
	return nil
}

// Flush drains any buffered carry state to the underlying writer. It must
// be called exactly once, after the last Encode call, before the output is
// considered complete.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	for i := 0; i < 5; i++ {
		if err := e.shiftLow(); err != nil {
			e.err = err
			return err
		}
	}
	return nil
}
