package ring

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/YanivDan/bgv/utils/bignum"
)

// Encode returns a polynomial with one coefficient per input value, coefficient k
// being values[k] mod q. Negative values are mapped to their canonical representative
// in [0, q). It panics if q is zero.
func Encode[T constraints.Integer](values []T, q uint64) Poly {
	checkModulus(q)
	p := Poly{coeffs: make([]uint64, len(values)), q: q}
	for i, v := range values {
		if v < 0 {
			// |v| computed without overflowing on the minimum value of T.
			mag := uint64(-(v + 1)) + 1
			if r := mag % q; r != 0 {
				p.coeffs[i] = q - r
			}
		} else {
			p.coeffs[i] = uint64(v) % q
		}
	}
	return p
}

// Decode returns the coefficients of p as values of type T.
// It returns a [*RangeError] if a coefficient does not fit in T. Values are never truncated.
func Decode[T constraints.Integer](p Poly) ([]T, error) {
	values := make([]T, p.N())
	for i, c := range p.coeffs {
		v := T(c)
		if v < 0 || uint64(v) != c {
			return nil, &RangeError{Index: i, Value: c, Type: fmt.Sprintf("%T", v)}
		}
		values[i] = v
	}
	return values, nil
}

// Decode returns the coefficients of p as uint64 values.
func (p Poly) Decode() ([]uint64, error) {
	return Decode[uint64](p)
}

// EncodeReal encodes the magnitude of value as a fixed-point number with precision decimal
// digits, i.e. as the single coefficient round(|value| * 10^precision) mod q.
// The sign of value is discarded. It returns an error if value is NaN or infinite.
func EncodeReal(value float64, precision uint, q uint64) (Poly, error) {

	checkModulus(q)

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Poly{}, fmt.Errorf("cannot EncodeReal: value must be finite but is %v", value)
	}

	scale := bignum.Pow10(precision)

	// 1088 bits cover the whole float64 exponent range.
	x := bignum.NewFloat(math.Abs(value), scale.Prec()+1088)
	x.Mul(x, scale)

	xInt, _ := bignum.Round(x).Int(nil)
	xInt.Mod(xInt, new(big.Int).SetUint64(q))

	return Poly{coeffs: []uint64{xInt.Uint64()}, q: q}, nil
}

// DecodeReal returns the first coefficient divided by 10^precision.
// It returns 0 if the polynomial has no coefficients.
func (p Poly) DecodeReal(precision uint) float64 {

	if p.N() == 0 {
		return 0
	}

	scale := bignum.Pow10(precision)

	x := bignum.NewFloat(p.coeffs[0], scale.Prec())
	x.Quo(x, scale)

	f, _ := x.Float64()
	return f
}
