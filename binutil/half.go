package binutil

import "math"

// EncodeHalf converts v to IEEE-754 binary16.
//
// Mantissa is truncated, not rounded. Values too large for binary16 saturate
// to the largest finite half, values too small become positive zero.
// NaN stays NaN, payload is not preserved.
func EncodeHalf(v float64) uint16 {
	bits := math.Float64bits(v)
	sign := int(bits>>63) << 15
	exp := int(bits>>52&0x7ff) - 1023
	// Keep only 10 most significant bits of the mantissa.
	mant := int(bits << 12 >> 12 >> (52 - 10))

	switch {
	case exp == 1024:
		// Infinity or NaN.
		exp = 16
		mant >>= 1
		if mant == 0 && bits<<12 != 0 {
			mant = 0x200
		}
	case exp >= 16:
		// Overflow, use largest finite number.
		exp = 15
		mant = 1023
	case exp >= -14:
		// Normal.
	case exp >= -24:
		// Subnormal.
		mant |= 1024
		mant >>= -(exp + 14)
		exp = -15
	default:
		// Underflow, make zero.
		return 0
	}

	return uint16(sign | (exp+15)<<10 | mant)
}

// DecodeHalf converts IEEE-754 binary16 to float64.
func DecodeHalf(h uint16) float64 {
	exp := int(h>>10) & 0x1f
	mant := int(h & 0x3ff)

	var v float64
	switch exp {
	case 0:
		// Zero or subnormal.
		v = math.Ldexp(float64(mant), -24)
	case 31:
		if mant == 0 {
			v = math.Inf(1)
		} else {
			v = math.NaN()
		}
	default:
		v = math.Ldexp(float64(mant+1024), exp-25)
	}
	if h&0x8000 != 0 {
		return -v
	}
	return v
}
