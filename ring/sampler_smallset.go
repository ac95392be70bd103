package ring

import (
	"github.com/YanivDan/bgv/utils"
	"github.com/YanivDan/bgv/utils/sampling"
)

// SmallSetSampler samples polynomials whose coefficients are drawn uniformly from a small set.
type SmallSetSampler struct {
	baseSampler
	values []uint64
	mask   uint64
}

// NewSmallSetSampler creates a new instance of SmallSetSampler from a PRNG, a ring definition
// and the set parameters. It returns an error if the set is invalid for the ring modulus.
func NewSmallSetSampler(prng sampling.PRNG, baseRing *Ring, X SmallSet) (s *SmallSetSampler, err error) {

	q := baseRing.Modulus()

	if err = X.Validate(q); err != nil {
		return nil, err
	}

	// Values are stored as their canonical representatives in [0, q).
	values := Encode(X.Values, q).Coeffs()

	return &SmallSetSampler{
		baseSampler: baseSampler{prng: prng, baseRing: baseRing},
		values:      values,
		mask:        utils.BitMask(uint64(len(values) - 1)),
	}, nil
}

// ReadNew generates a new polynomial whose coefficients are drawn uniformly from the set.
// Each coefficient picks an index in the set with the same rejection rule as [UniformSampler].
func (s *SmallSetSampler) ReadNew() (pol Poly, err error) {

	pol = s.baseRing.NewPoly()

	size := uint64(len(s.values))

	var idx uint64
	for i := range pol.coeffs {
		if idx, err = sampling.RandUniform(s.prng, size, s.mask); err != nil {
			return Poly{}, err
		}
		pol.coeffs[i] = s.values[idx]
	}

	return
}
