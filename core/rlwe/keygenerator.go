package rlwe

import (
	"fmt"

	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
// Every key it generates draws from the PRNG it was given, in the order s, a, e.
type KeyGenerator struct {
	params         Parameters
	uniformSampler *ring.UniformSampler
	xsSampler      ring.Sampler
	xeSampler      ring.Sampler
}

// NewKeyGenerator creates a new [KeyGenerator], from which the secret and public keys can be generated.
// All randomness is read from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {

	xsSampler, err := ring.NewSampler(prng, params.RingQ(), params.Xs())

	// Sanity check, this error should not happen since the parameters are checked.
	if err != nil {
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	xeSampler, err := ring.NewSampler(prng, params.RingQ(), params.Xe())

	// Sanity check, this error should not happen since the parameters are checked.
	if err != nil {
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	return &KeyGenerator{
		params:         params,
		uniformSampler: ring.NewUniformSampler(prng, params.RingQ()),
		xsSampler:      xsSampler,
		xeSampler:      xeSampler,
	}
}

// GenSecretKeyNew generates a new [SecretKey] with coefficients sampled from the secret set Xs.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey, err error) {

	var s ring.Poly
	if s, err = kgen.xsSampler.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot GenSecretKeyNew: %w", err)
	}

	return NewSecretKey(s), nil
}

// GenPublicKeyNew generates a new [PublicKey] from the provided [SecretKey]:
// a is sampled uniformly, e is sampled from the error set Xe, and b = -a*s + t*e.
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey, err error) {

	if !kgen.params.RingQ().Contains(sk.Value) {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: secret key is not an element of %s", kgen.params.RingQ())
	}

	var a, e, as ring.Poly

	if a, err = kgen.uniformSampler.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	if e, err = kgen.xeSampler.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	if as, err = a.Mul(sk.Value); err != nil {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	b := as.Neg().Add(e.MulScalar(kgen.params.T()))

	return &PublicKey{A: a, B: b}, nil
}

// GenKeyPairNew generates a new [SecretKey] and a corresponding [PublicKey].
func (kgen KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey, err error) {

	if sk, err = kgen.GenSecretKeyNew(); err != nil {
		return nil, nil, err
	}

	if pk, err = kgen.GenPublicKeyNew(sk); err != nil {
		return nil, nil, err
	}

	return
}
