// Package crc implements a parameterized bit-serial CRC engine following the
// Rocksoft model: arbitrary generator polynomial, register width of 8, 16 or
// 32 bits, seed, input/output bit reflection and final inversion.
package crc

// Memory is a byte-addressed read-only view over a loaded firmware image.
type Memory interface {
	Byte(address uint32) byte
}

// OutputReflection selects how the reflect output flag is applied.
type OutputReflection int

const (
	// ReflectLastByte reproduces the behavior of the legacy tool: the last
	// processed input byte is reflected and the result is discarded, the
	// returned checksum is unchanged.
	ReflectLastByte OutputReflection = iota
	// ReflectRegister reflects the final register value over the full
	// register width, the standard interpretation of output reflection.
	ReflectRegister
)

// Config holds the parameters of one checksum computation.
type Config struct {
	Polynomial       uint32 // generator polynomial, top coefficient implicit
	RegisterWidth    uint   // 8, 16 or 32
	Seed             uint32
	ReflectInput     bool
	ReflectOutput    bool
	OutputReflection OutputReflection // how ReflectOutput is applied
	FinalXOR         bool             // invert all register bits before returning
}

// Compute runs the bit-serial CRC over the bytes of mem in [rng.Start, rng.End)
// in ascending address order. The result is masked to the register width.
// On error the returned value is zero and must not be used as a checksum.
func Compute(mem Memory, rng Range, cfg Config) (uint32, error) {
	if err := ValidateRange(rng, WordSize, cfg.RegisterWidth); err != nil {
		return 0, err
	}

	msb := uint64(1) << cfg.RegisterWidth
	mask := msb - 1
	poly := msb | uint64(cfg.Polynomial)
	register := uint64(cfg.Seed)

	var last byte
	for address := rng.Start; address < rng.End; address++ {
		b := mem.Byte(address)
		last = b

		if cfg.ReflectInput {
			b = byte(Reflect(uint32(b), 8))
		}

		// place the byte into the top 8 bits of the active register width
		register ^= uint64(b) << (cfg.RegisterWidth - 8)

		for bit := 0; bit < 8; bit++ {
			register <<= 1
			if register&msb != 0 {
				register ^= poly
			}
		}
	}

	register &= mask

	if cfg.ReflectOutput {
		switch cfg.OutputReflection {
		case ReflectRegister:
			register = uint64(Reflect(uint32(register), cfg.RegisterWidth))
		case ReflectLastByte:
			// The legacy tool reflected the last input byte here and never
			// folded the result back into the register, leaving the checksum
			// unchanged. Kept selectable so existing vectors keep matching.
			Reflect(uint32(last), cfg.RegisterWidth)
		}
	}

	if cfg.FinalXOR {
		register ^= mask
	}

	return uint32(register), nil
}
