package bgv

import (
	"fmt"

	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/schemes"
	"github.com/YanivDan/bgv/utils"
)

var _ schemes.Encoder = (*Encoder)(nil)

// Encoder is a structure that maps integer vectors to plaintext polynomials, one value per
// coefficient. Values are taken modulo the plaintext modulus t and lifted into Z_Q.
type Encoder struct {
	parameters Parameters
}

// NewEncoder creates a new [Encoder] from the provided parameters.
func NewEncoder(parameters Parameters) *Encoder {
	return &Encoder{parameters: parameters}
}

// GetParameters returns the underlying parameters of the [Encoder].
func (ecd Encoder) GetParameters() *Parameters {
	return &ecd.parameters
}

// Encode encodes a []uint64, []int64 or []int of at most N values on a new plaintext of N coefficients.
// Missing values are zero. Negative values are mapped to their representative in [0, t).
func (ecd Encoder) Encode(values interface{}) (pt ring.Poly, err error) {

	var inT ring.Poly

	switch values := values.(type) {
	case []uint64:
		inT = ring.Encode(values, ecd.parameters.PlaintextModulus())
	case []int64:
		inT = ring.Encode(values, ecd.parameters.PlaintextModulus())
	case []int:
		inT = ring.Encode(values, ecd.parameters.PlaintextModulus())
	default:
		return ring.Poly{}, fmt.Errorf("cannot Encode: values.(type) must be []uint64, []int64 or []int but is %T", values)
	}

	if N := ecd.parameters.N(); inT.N() > N {
		return ring.Poly{}, fmt.Errorf("cannot Encode: len(values)=%d > N=%d", inT.N(), N)
	}

	return ecd.parameters.RingQ().NewPoly().Add(ring.NewPolyFromUint64(inT.Coeffs(), ecd.parameters.Q())), nil
}

// Decode decodes a plaintext on a []uint64, []int64 or []int of at most N values. Coefficients are first
// reduced modulo t; []int64 and []int receive the centered representative,
// i.e. c - t whenever c >= ceil(t/2).
func (ecd Encoder) Decode(pt ring.Poly, values interface{}) (err error) {

	t := ecd.parameters.PlaintextModulus()

	inT := ring.NewPolyFromUint64(pt.Coeffs(), t)

	coeffs := inT.Coeffs()

	switch values := values.(type) {
	case []uint64:
		copy(values, coeffs)
	case []int64:
		for i := range values[:utils.Min(len(values), len(coeffs))] {
			values[i] = center(coeffs[i], t)
		}
	case []int:
		for i := range values[:utils.Min(len(values), len(coeffs))] {
			values[i] = int(center(coeffs[i], t))
		}
	default:
		return fmt.Errorf("cannot Decode: values.(type) must be []uint64, []int64 or []int but is %T", values)
	}

	return
}

func center(c, t uint64) int64 {
	if c >= (t+1)>>1 {
		return -int64(t - c)
	}
	return int64(c)
}
