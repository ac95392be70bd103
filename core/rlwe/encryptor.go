package rlwe

import (
	"fmt"

	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/utils/sampling"
)

// Encryptor is a structure used to encrypt plaintexts under a [PublicKey].
type Encryptor struct {
	ringQ          *ring.Ring
	pk             *PublicKey
	uniformSampler *ring.UniformSampler
}

// NewEncryptor creates a new [Encryptor] from a public key. The mask of every
// encryption is read from prng.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {

	if err := checkPk(params.RingQ(), pk); err != nil {
		// Sanity check, this error should not happen with keys from a KeyGenerator of the same parameters.
		panic(fmt.Errorf("cannot NewEncryptor: %w", err))
	}

	return newEncryptor(params.RingQ(), pk, prng)
}

// NewEncryptorFromPublicKey creates a new [Encryptor] whose ring is read from the public key itself.
// It returns an error if the two components of the key do not share a ring.
func NewEncryptorFromPublicKey(pk *PublicKey, prng sampling.PRNG) (enc *Encryptor, err error) {

	if pk == nil {
		return nil, fmt.Errorf("cannot NewEncryptorFromPublicKey: public key is nil")
	}

	var ringQ *ring.Ring
	if ringQ, err = ring.NewRing(pk.N(), pk.Modulus()); err != nil {
		return nil, fmt.Errorf("cannot NewEncryptorFromPublicKey: %w", err)
	}

	if err = checkPk(ringQ, pk); err != nil {
		return nil, fmt.Errorf("cannot NewEncryptorFromPublicKey: %w", err)
	}

	return newEncryptor(ringQ, pk, prng), nil
}

func newEncryptor(ringQ *ring.Ring, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		ringQ:          ringQ,
		pk:             pk,
		uniformSampler: ring.NewUniformSampler(prng, ringQ),
	}
}

// EncryptNew encrypts the plaintext pt and returns a newly allocated [Ciphertext]:
//
//	c0 = a*r + pt
//	c1 = b*r
//
// where (a, b) is the public key and r is a uniform polynomial sampled afresh on every call.
// The plaintext must have N coefficients, otherwise a [*ring.LengthMismatchError] is returned.
// A failure of the PRNG is returned as a [*sampling.RandomnessError].
func (enc Encryptor) EncryptNew(pt ring.Poly) (ct *Ciphertext, err error) {

	if pt.N() != enc.ringQ.N() {
		return nil, fmt.Errorf("cannot EncryptNew: %w", &ring.LengthMismatchError{Left: pt.N(), Right: enc.ringQ.N()})
	}

	var r, ar, br ring.Poly

	if r, err = enc.uniformSampler.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	if ar, err = enc.pk.A.Mul(r); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	if br, err = enc.pk.B.Mul(r); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	return &Ciphertext{C0: ar.Add(pt), C1: br}, nil
}

// WithPRNG returns a shallow copy of the [Encryptor] that samples its masks from prng.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		ringQ:          enc.ringQ,
		pk:             enc.pk,
		uniformSampler: enc.uniformSampler.WithPRNG(prng),
	}
}

// WithKey returns a shallow copy of the [Encryptor] that encrypts under pk.
func (enc Encryptor) WithKey(pk *PublicKey) *Encryptor {

	if err := checkPk(enc.ringQ, pk); err != nil {
		panic(fmt.Errorf("cannot WithKey: %w", err))
	}

	return &Encryptor{
		ringQ:          enc.ringQ,
		pk:             pk,
		uniformSampler: enc.uniformSampler,
	}
}

func checkPk(ringQ *ring.Ring, pk *PublicKey) (err error) {
	if pk == nil {
		return fmt.Errorf("public key is nil")
	}
	if !ringQ.Contains(pk.A) || !ringQ.Contains(pk.B) {
		return fmt.Errorf("public key is not an element of %s", ringQ)
	}
	return nil
}
