package rlwe

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/YanivDan/bgv/ring"
)

// Noise summarizes the centered error of a polynomial that should be a small multiple of zero.
// It is a diagnostic: decryption never consults it.
type Noise struct {
	// Std is the standard deviation of the centered coefficients.
	Std float64
	// Max is the largest absolute value of the centered coefficients.
	Max float64
	// WithinBound reports whether Max stays below q/(2t).
	WithinBound bool
}

func (n Noise) String() string {
	return fmt.Sprintf("std=%.4f max=%.0f within-bound=%t", n.Std, n.Max, n.WithinBound)
}

// NoiseStats returns the [Noise] of c0 + c1*s - pt, where pt is the encoded plaintext
// that ct is expected to encrypt.
func NoiseStats(params Parameters, ct *Ciphertext, sk *SecretKey, pt ring.Poly) (noise Noise, err error) {

	var phase ring.Poly
	if phase, err = NewDecryptor(params, sk).Phase(ct); err != nil {
		return Noise{}, fmt.Errorf("cannot NoiseStats: %w", err)
	}

	if noise, err = measure(params, phase.Sub(pt)); err != nil {
		return Noise{}, fmt.Errorf("cannot NoiseStats: %w", err)
	}

	return
}

// NoisePublicKey returns the [Noise] of b + a*s = t*e for the key pair (sk, pk).
func NoisePublicKey(pk *PublicKey, sk *SecretKey, params Parameters) (noise Noise, err error) {

	var as ring.Poly
	if as, err = pk.A.Mul(sk.Value); err != nil {
		return Noise{}, fmt.Errorf("cannot NoisePublicKey: %w", err)
	}

	if noise, err = measure(params, pk.B.Add(as)); err != nil {
		return Noise{}, fmt.Errorf("cannot NoisePublicKey: %w", err)
	}

	return
}

func measure(params Parameters, p ring.Poly) (noise Noise, err error) {

	centered := Centered(p)

	abs := make([]float64, len(centered))
	for i, v := range centered {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}

	if noise.Std, err = stats.StandardDeviation(centered); err != nil {
		return Noise{}, err
	}

	if noise.Max, err = stats.Max(abs); err != nil {
		return Noise{}, err
	}

	noise.WithinBound = noise.Max < params.NoiseBound()

	return
}

// Centered returns the coefficients of p mapped to (-q/2, q/2].
func Centered(p ring.Poly) (values []float64) {
	q := p.Modulus()
	values = make([]float64, p.N())
	for i, c := range p.Coeffs() {
		if c > q>>1 {
			values[i] = -float64(q - c)
		} else {
			values[i] = float64(c)
		}
	}
	return
}
