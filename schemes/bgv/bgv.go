// Package bgv implements a demonstration-grade BGV-like scheme over the cyclic ring
// Z_Q[x]/(x^N - 1): key generation, public-key encryption, decryption modulo the
// plaintext modulus and a non-relinearized homomorphic multiplication.
//
// The functions of this file form the flat interface used by drivers. They build the
// [rlwe] objects they need on the fly.
package bgv

import (
	"fmt"

	"github.com/YanivDan/bgv/core/rlwe"
	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/utils/sampling"
)

// GenerateKeys samples a key pair for the ring degree n, the coefficient modulus q and the plaintext
// modulus t, with secrets and errors in [rlwe.DefaultXs] and [rlwe.DefaultXe].
// Randomness failures are returned as [*sampling.RandomnessError].
func GenerateKeys(n int, q, t uint64, prng sampling.PRNG) (pk *rlwe.PublicKey, sk *rlwe.SecretKey, err error) {

	var params Parameters
	if params, err = NewParametersFromLiteral(ParametersLiteral{N: n, Q: q, PlaintextModulus: t}); err != nil {
		return nil, nil, fmt.Errorf("cannot GenerateKeys: %w", err)
	}

	return GenerateKeysFromParameters(params, prng)
}

// GenerateKeysFromParameters samples a key pair for the given parameters, drawing s from
// the secret set and e from the error set of params.
func GenerateKeysFromParameters(params Parameters, prng sampling.PRNG) (pk *rlwe.PublicKey, sk *rlwe.SecretKey, err error) {

	if sk, pk, err = rlwe.NewKeyGenerator(params.Parameters, prng).GenKeyPairNew(); err != nil {
		return nil, nil, fmt.Errorf("cannot GenerateKeys: %w", err)
	}

	return
}

// Encrypt encrypts the plaintext pt under pk with a fresh mask read from prng.
// pt must have as many coefficients as the key.
func Encrypt(pt ring.Poly, pk *rlwe.PublicKey, prng sampling.PRNG) (ct *rlwe.Ciphertext, err error) {

	var enc *rlwe.Encryptor
	if enc, err = rlwe.NewEncryptorFromPublicKey(pk, prng); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	if ct, err = enc.EncryptNew(pt); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	return
}

// Decrypt returns (c0 + c1*s) mod t. The output keeps the coefficient modulus of the key and
// its coefficients are in [0, t). Noise is never checked.
func Decrypt(ct *rlwe.Ciphertext, sk *rlwe.SecretKey, t uint64) (pt ring.Poly, err error) {

	var params rlwe.Parameters
	if params, err = rlwe.NewParameters(sk.N(), sk.Modulus(), t, rlwe.DefaultXs, rlwe.DefaultXe); err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Decrypt: %w", err)
	}

	if pt, err = rlwe.NewDecryptor(params, sk).DecryptNew(ct); err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Decrypt: %w", err)
	}

	return
}

// HomomorphicAdd returns (c0+d0, c1+d1). Both ciphertexts must be non-nil.
// Operands of different degrees are zero-padded, use [Evaluator.AddNew] to have them checked.
func HomomorphicAdd(ct0, ct1 *rlwe.Ciphertext) *rlwe.Ciphertext {
	return add(ct0, ct1)
}

// HomomorphicMultiply returns (c0*d0, c0*d1 + c1*d0), see [Evaluator.MulNew].
// It returns a [*ring.LengthMismatchError] if the operands do not share a ring degree.
func HomomorphicMultiply(ct0, ct1 *rlwe.Ciphertext) (ct *rlwe.Ciphertext, err error) {
	if ct, err = mul(ct0, ct1); err != nil {
		return nil, fmt.Errorf("cannot HomomorphicMultiply: %w", err)
	}
	return
}
