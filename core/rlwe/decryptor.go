package rlwe

import (
	"fmt"

	"github.com/YanivDan/bgv/ring"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the secret-key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk == nil || !params.RingQ().Contains(sk.Value) {
		panic(fmt.Errorf("cannot NewDecryptor: secret key is not an element of %s", params.RingQ()))
	}

	return &Decryptor{
		params: params,
		sk:     sk,
	}
}

// GetRLWEParameters returns the underlying [Parameters].
func (d Decryptor) GetRLWEParameters() *Parameters {
	return &d.params
}

// Phase returns c0 + c1*s mod q, i.e. the plaintext plus the encryption noise.
// Both components of ct must have the degree of the secret key.
func (d Decryptor) Phase(ct *Ciphertext) (phase ring.Poly, err error) {

	n := d.params.N()
	for _, c := range []ring.Poly{ct.C0, ct.C1} {
		if c.N() != n {
			return ring.Poly{}, fmt.Errorf("cannot Phase: %w", &ring.LengthMismatchError{Left: c.N(), Right: n})
		}
	}

	var c1s ring.Poly
	if c1s, err = ct.C1.Mul(d.sk.Value); err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Phase: %w", err)
	}

	return ct.C0.Add(c1s), nil
}

// DecryptNew decrypts the [Ciphertext] and returns the plaintext (c0 + c1*s) mod t, whose
// coefficients are in [0, t). The noise is not checked: if it exceeds q/(2t) the result is
// silently wrong. The only error is a ring degree mismatch between ct and the secret key.
func (d Decryptor) DecryptNew(ct *Ciphertext) (pt ring.Poly, err error) {

	var phase ring.Poly
	if phase, err = d.Phase(ct); err != nil {
		return ring.Poly{}, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	return phase.ModReduce(d.params.T()), nil
}

// WithKey creates a shallow copy of [Decryptor] with a new decryption key.
func (d Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return NewDecryptor(d.params, sk)
}
