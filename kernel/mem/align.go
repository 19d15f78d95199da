package mem

// RoundUp rounds size up to the nearest multiple of boundary. The boundary
// must be a power of 2.
func RoundUp(size, boundary Size) Size {
	return (size + boundary - 1) & ^(boundary - 1)
}

// AlignDown rounds addr down to the nearest multiple of boundary. The
// boundary must be a power of 2.
func AlignDown(addr uintptr, boundary Size) uintptr {
	return addr & ^(uintptr(boundary) - 1)
}

// Pow2Ceil returns the smallest power of 2 that is greater than or equal to
// size. Sizes of 0 or 1 round up to 1.
func Pow2Ceil(size Size) Size {
	if size <= 1 {
		return 1
	}

	size--
	for shift := uint(1); shift < 64; shift <<= 1 {
		size |= size >> shift
	}
	return size + 1
}
