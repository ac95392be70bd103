package ring

import (
	"github.com/YanivDan/bgv/utils"
)

// Add returns p + other. The result has max(p.N(), other.N()) coefficients, the missing
// coefficients of the shorter operand being treated as zero. Coefficients of other are
// interpreted modulo the modulus of p.
func (p Poly) Add(other Poly) Poly {
	return p.binaryOp(other, AddMod)
}

// Sub returns p - other, computed as (p[i] + q - other[i]) mod q, with the same
// padding rule as [Poly.Add].
func (p Poly) Sub(other Poly) Poly {
	return p.binaryOp(other, SubMod)
}

func (p Poly) binaryOp(other Poly, op func(a, b, q uint64) uint64) Poly {
	q := p.q
	out := Poly{coeffs: make([]uint64, utils.Max(p.N(), other.N())), q: q}
	for i := range out.coeffs {
		var a, b uint64
		if i < p.N() {
			a = p.coeffs[i]
		}
		if i < other.N() {
			b = other.coeffs[i] % q
		}
		out.coeffs[i] = op(a, b, q)
	}
	return out
}

// Mul returns p * other in Z_q[x]/(x^n - 1), i.e. the cyclic convolution
//
//	out[(i+j) mod n] = sum p[i] * other[j] mod q.
//
// Both operands must have the same number of coefficients, otherwise a
// [*LengthMismatchError] is returned.
func (p Poly) Mul(other Poly) (Poly, error) {

	n := p.N()

	if other.N() != n {
		return Poly{}, &LengthMismatchError{Left: n, Right: other.N()}
	}

	q := p.q
	out := Poly{coeffs: make([]uint64, n), q: q}

	b := other.coeffs
	if other.q != q {
		b = make([]uint64, n)
		for j, c := range other.coeffs {
			b[j] = c % q
		}
	}

	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j := range b {
			k := i + j
			if k >= n {
				k -= n
			}
			out.coeffs[k] = AddMod(out.coeffs[k], MulMod(a, b[j], q), q)
		}
	}

	return out, nil
}

// Neg returns -p, i.e. (q - p[i]) mod q.
func (p Poly) Neg() Poly {
	out := Poly{coeffs: make([]uint64, p.N()), q: p.q}
	for i, c := range p.coeffs {
		out.coeffs[i] = SubMod(0, c, p.q)
	}
	return out
}

// MulScalar returns c * p.
func (p Poly) MulScalar(c uint64) Poly {
	out := Poly{coeffs: make([]uint64, p.N()), q: p.q}
	c %= p.q
	for i, a := range p.coeffs {
		out.coeffs[i] = MulMod(a, c, p.q)
	}
	return out
}

// ModReduce returns the polynomial whose coefficients are p[i] mod t.
// The modulus of the result stays q, so the output can be compared with
// and combined with other elements of the same ring.
// It panics if t is zero.
func (p Poly) ModReduce(t uint64) Poly {
	checkModulus(t)
	out := Poly{coeffs: make([]uint64, p.N()), q: p.q}
	for i, c := range p.coeffs {
		out.coeffs[i] = c % t
	}
	return out
}
