package transform

// MTFEncode applies the move-to-front transform over the full byte
// alphabet. The table starts as the identity permutation [0..255]; each
// input byte is replaced by its current position in the table, and the
// table is then rotated so that byte moves to the front.
func MTFEncode(src []byte) []byte {
	var table [256]byte
	for i := range table {
		table[i] = byte(i)
	}

	out := make([]byte, len(src))
	for i, b := range src {
		pos := indexOf(&table, b)
		out[i] = byte(pos)
		moveToFront(&table, pos)
	}
	return out
}

// MTFDecode reverses MTFEncode, resetting the table to the identity
// permutation at the start of the pass, as the encoder does.
func MTFDecode(src []byte) []byte {
	var table [256]byte
	for i := range table {
		table[i] = byte(i)
	}

	out := make([]byte, len(src))
	for i, pos := range src {
		b := table[pos]
		out[i] = b
		moveToFront(&table, int(pos))
	}
	return out
}

func indexOf(table *[256]byte, b byte) int {
	for i, v := range table {
		if v == b {
			return i
		}
	}
	panic("transform: byte missing from move-to-front table")
}

// moveToFront rotates table[0:pos+1] right by one, so that table[pos]
// becomes table[0] and everything before it shifts up by one slot.
func moveToFront(table *[256]byte, pos int) {
	b := table[pos]
	copy(table[1:pos+1], table[0:pos])
	table[0] = b
}
