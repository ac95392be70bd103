package ring

import (
	"fmt"

	"github.com/YanivDan/bgv/utils"
)

// Poly is a polynomial of the ring Z_q[x]/(x^n - 1). Its coefficients are always
// the canonical representatives in [0, q). A Poly is an immutable value: every
// operation returns a new Poly and never modifies its operands.
type Poly struct {
	coeffs []uint64
	q      uint64
}

// NewPoly returns the zero polynomial with n coefficients modulo q.
// It panics if q is zero.
func NewPoly(n int, q uint64) Poly {
	checkModulus(q)
	return Poly{coeffs: make([]uint64, n), q: q}
}

// NewPolyFromUint64 returns a new polynomial with coefficients coeffs[i] mod q.
// The input slice is copied. It panics if q is zero.
func NewPolyFromUint64(coeffs []uint64, q uint64) Poly {
	checkModulus(q)
	p := Poly{coeffs: make([]uint64, len(coeffs)), q: q}
	for i, c := range coeffs {
		p.coeffs[i] = c % q
	}
	return p
}

func checkModulus(q uint64) {
	if q == 0 {
		panic(fmt.Errorf("invalid modulus: q must be non-zero"))
	}
}

// N returns the number of coefficients of the polynomial.
func (p Poly) N() int {
	return len(p.coeffs)
}

// Modulus returns the coefficient modulus of the polynomial.
func (p Poly) Modulus() uint64 {
	return p.q
}

// Coeff returns the i-th coefficient.
func (p Poly) Coeff(i int) uint64 {
	return p.coeffs[i]
}

// Coeffs returns a copy of the coefficients.
func (p Poly) Coeffs() []uint64 {
	coeffs := make([]uint64, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// IsZero returns true if all coefficients are zero.
func (p Poly) IsZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal returns true if both polynomials have the same modulus and the same coefficients.
func (p Poly) Equal(other Poly) bool {
	return p.q == other.q && utils.EqualSlice(p.coeffs, other.coeffs)
}

func (p Poly) String() string {
	return fmt.Sprintf("%v mod %d", p.coeffs, p.q)
}
