package crc

// Reflect reverses the order of the low width bits of value.
// Bit 0 swaps with bit width-1, bit 1 with bit width-2 and so on.
// Bits above width are not part of the result.
func Reflect(value uint32, width uint) uint32 {
	var reflected uint32
	for i := uint(0); i < width; i++ {
		if value&(1<<i) != 0 {
			reflected |= 1 << (width - 1 - i)
		}
	}
	return reflected
}
