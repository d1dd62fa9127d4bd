package rangecoder

import "io"

// Decoder reads a range-coded byte stream produced by an Encoder. Symbols
// are decoded in two steps: GetFreq reports a cumulative-frequency target
// within [0, total) that the caller looks up in its statistics model to
// find the symbol and its own (low, high) bounds, and Decode then consumes
// those bounds to advance the coder. This mirrors the encoder's contract
// of querying the model before updating it.
type Decoder struct {
	r   io.Reader
	code uint32
	rng  uint32
	r32  uint32 // rng / total, computed by GetFreq and consumed by Decode

	err error
}

// NewDecoder returns a Decoder reading from r. It consumes the 5 header
// bytes an Encoder's first Flush-aligned output begins with.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{r: r, rng: 0xFFFFFFFF}
	var buf [5]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	for _, b := range buf[1:] {
		d.code = d.code<<8 | uint32(b)
	}
	return d, nil
}

func (d *Decoder) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// GetFreq returns a cumulative-frequency value in [0, total) that the
// caller resolves to a symbol via its statistics model's SymbolAt.
func (d *Decoder) GetFreq(total int64) (int64, error) {
	if d.err != nil {
		return 0, d.err
	}
	if total <= 0 {
		panic("rangecoder: total frequency must be positive")
	}
	if total > int64(topValue) {
		d.err = ErrRangeUnderflow
		return 0, d.err
	}
	d.r32 = d.rng / uint32(total)
	target := int64(d.code / d.r32)
	if target >= total {
		target = total - 1
	}
	return target, nil
}

// Decode consumes the (low, high, total) bounds for the symbol that
// GetFreq's return value resolved to, advancing the coder past it.
func (d *Decoder) Decode(low, high, total int64) error {
	if d.err != nil {
		return d.err
	}
	d.code -= uint32(low) * d.r32
	d.rng = d.r32 * uint32(high-low)

	for d.rng < topValue {
		b, err := d.readByte()
		if err != nil {
			d.err = err
			return err
		}
		d.code = d.code<<8 | uint32(b)
		d.rng <<= 8
	}
	return nil
}
