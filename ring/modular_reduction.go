package ring

import (
	"math/bits"
)

// AddMod returns (a + b) mod q for a, b in [0, q).
func AddMod(a, b, q uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= q {
		s -= q
	}
	return s
}

// SubMod returns (a + q - b) mod q for a, b in [0, q).
// The modulus is added before subtracting so that the unsigned
// intermediate never underflows.
func SubMod(a, b, q uint64) uint64 {
	sum, carry := bits.Add64(a, q-b, 0)
	return bits.Rem64(carry, sum, q)
}

// MulMod returns (a * b) mod q using a 128-bit intermediate product.
func MulMod(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, q)
}
