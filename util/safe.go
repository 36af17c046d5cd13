package util

// -----------------------------------------------------------------------------

// SafeZeroMem overwrites the given buffer with zeroes.
func SafeZeroMem(v []byte) {
	if len(v) > 0 {
		v[0] = 0
		for ofs := 1; ofs < len(v); ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}

// SafeZeroMemArray zeroes every buffer in the list.
func SafeZeroMemArray(v [][]byte) {
	for idx := range v {
		SafeZeroMem(v[idx])
	}
}
