package rlwe

import (
	"github.com/YanivDan/bgv/ring"
)

// SecretKey is a type for generic secret keys.
// Value is the secret polynomial s, with coefficients in the secret set.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey returns a new [SecretKey] holding the given secret polynomial.
func NewSecretKey(s ring.Poly) *SecretKey {
	return &SecretKey{Value: s}
}

// Modulus returns the coefficient modulus of the key.
func (sk SecretKey) Modulus() uint64 {
	return sk.Value.Modulus()
}

// N returns the ring degree of the key.
func (sk SecretKey) N() int {
	return sk.Value.N()
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return other != nil && sk.Value.Equal(other.Value)
}

// PublicKey is a type for generic public keys.
// A is uniform and B = -A*s + T*e for a secret s and a small error e.
type PublicKey struct {
	A, B ring.Poly
}

// Modulus returns the coefficient modulus of the key.
func (pk PublicKey) Modulus() uint64 {
	return pk.A.Modulus()
}

// N returns the ring degree of the key.
func (pk PublicKey) N() int {
	return pk.A.N()
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.A.Equal(other.A) && pk.B.Equal(other.B)
}
