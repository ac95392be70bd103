package rlwe

import (
	"fmt"

	"github.com/YanivDan/bgv/ring"
)

// Ciphertext is a pair of polynomials (C0, C1) such that C0 + C1*s decrypts to the plaintext.
// Ciphertexts always have exactly two components, including after multiplication.
type Ciphertext struct {
	C0, C1 ring.Poly
}

// NewCiphertext returns a new Ciphertext with zero values.
func NewCiphertext(params Parameters) (ct *Ciphertext) {
	return &Ciphertext{
		C0: params.RingQ().NewPoly(),
		C1: params.RingQ().NewPoly(),
	}
}

// N returns the ring degree of the ciphertext.
func (ct Ciphertext) N() int {
	return ct.C0.N()
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return other != nil && ct.C0.Equal(other.C0) && ct.C1.Equal(other.C1)
}

func (ct Ciphertext) String() string {
	return fmt.Sprintf("(%s, %s)", ct.C0, ct.C1)
}
