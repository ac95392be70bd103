// Package ring implements modular arithmetic over the cyclic polynomial ring Z_q[x]/(x^n - 1),
// including integer and fixed-point encodings and uniform and small-set sampling.
//
// Multiplication wraps around with index (i+j) mod n and no sign flip. This is NOT the
// negacyclic ring Z_q[x]/(x^n + 1) used by production R-LWE schemes.
package ring

import (
	"fmt"

	"github.com/YanivDan/bgv/utils"
)

// Ring is the context of a polynomial ring: the degree N and the coefficient modulus.
type Ring struct {
	n       int
	modulus uint64
	mask    uint64
}

// NewRing creates a new [Ring] with N coefficients and coefficient modulus Modulus.
// It returns a nil Ring and an error if N < 1 or Modulus < 2.
func NewRing(N int, Modulus uint64) (r *Ring, err error) {

	if N < 1 {
		return nil, fmt.Errorf("invalid ring degree: N=%d must be at least 1", N)
	}

	if Modulus < 2 {
		return nil, fmt.Errorf("invalid ring modulus: Modulus=%d must be at least 2", Modulus)
	}

	return &Ring{
		n:       N,
		modulus: Modulus,
		mask:    utils.BitMask(Modulus - 1),
	}, nil
}

// N returns the ring degree.
func (r Ring) N() int {
	return r.n
}

// Modulus returns the coefficient modulus.
func (r Ring) Modulus() uint64 {
	return r.modulus
}

// Mask returns the smallest value of the form 2^k-1 that is at least Modulus-1.
func (r Ring) Mask() uint64 {
	return r.mask
}

// NewPoly returns the zero polynomial of the ring.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.n, r.modulus)
}

// Contains returns true if p has the degree and modulus of the ring.
func (r Ring) Contains(p Poly) bool {
	return p.N() == r.n && p.Modulus() == r.modulus
}

// Equal returns true if both rings have the same degree and modulus.
func (r Ring) Equal(other *Ring) bool {
	return other != nil && r.n == other.n && r.modulus == other.modulus
}

func (r Ring) String() string {
	return fmt.Sprintf("Z_%d[x]/(x^%d - 1)", r.modulus, r.n)
}
