package ring

import (
	"github.com/YanivDan/bgv/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and represents the state of a sampler of uniform polynomials.
type UniformSampler struct {
	baseSampler
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and ring definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) (u *UniformSampler) {
	return &UniformSampler{baseSampler{prng: prng, baseRing: baseRing}}
}

// ReadNew generates a new polynomial with coefficients following a uniform distribution over [0, q-1].
// Each coefficient consumes 8 bytes of the PRNG per attempt; attempts that exceed q-1 after
// masking are rejected.
func (u *UniformSampler) ReadNew() (pol Poly, err error) {

	q := u.baseRing.Modulus()
	mask := u.baseRing.Mask()

	pol = u.baseRing.NewPoly()

	for i := range pol.coeffs {
		if pol.coeffs[i], err = sampling.RandUniform(u.prng, q, mask); err != nil {
			return Poly{}, err
		}
	}

	return
}

// WithPRNG returns a new UniformSampler over the same ring that reads from prng.
func (u *UniformSampler) WithPRNG(prng sampling.PRNG) *UniformSampler {
	return NewUniformSampler(prng, u.baseRing)
}
