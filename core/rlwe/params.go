package rlwe

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/YanivDan/bgv/ring"
)

// DefaultXs is the default secret distribution.
var DefaultXs = ring.BinarySet

// DefaultXe is the default error distribution.
var DefaultXe = ring.BinarySet

// ParametersLiteral is a literal representation of the scheme parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual checked parameters
// from the literal representation.
//
// Users must set the ring degree N, the coefficient modulus Q and the plaintext modulus T.
// Optionally, users may specify the secret (Xs) and error (Xe) sets; if left empty,
// [DefaultXs] and [DefaultXe] are substituted at parameter creation.
type ParametersLiteral struct {
	N  int
	Q  uint64
	T  uint64
	Xs ring.SmallSet
	Xe ring.SmallSet
}

// Parameters represents a set of checked scheme parameters. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	t     uint64
	xs    ring.SmallSet
	xe    ring.SmallSet
	ringQ *ring.Ring
}

// NewParameters returns a new set of parameters from the ring degree n, the coefficient modulus q,
// the plaintext modulus t and the secret and error sets xs and xe. It returns the empty
// parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParameters(n int, q, t uint64, xs, xe ring.SmallSet) (params Parameters, err error) {

	var ringQ *ring.Ring
	if ringQ, err = ring.NewRing(n, q); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParameters: %w", err)
	}

	if t < 2 || t >= q {
		return Parameters{}, fmt.Errorf("cannot NewParameters: plaintext modulus T=%d must be in [2, Q=%d)", t, q)
	}

	if err = xs.Validate(q); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParameters: secret distribution: %w", err)
	}

	if err = xe.Validate(q); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParameters: error distribution: %w", err)
	}

	return Parameters{
		t:     t,
		xs:    copySet(xs),
		xe:    copySet(xe),
		ringQ: ringQ,
	}, nil
}

// NewParametersFromLiteral instantiates a set of parameters from a [ParametersLiteral] specification.
// It returns the empty parameters Parameters{} and a non-nil error if the specified parameters are invalid.
//
// If the secret or error sets are left empty, [DefaultXs] and [DefaultXe] are used.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {

	if len(paramDef.Xs.Values) == 0 {
		paramDef.Xs = DefaultXs
	}

	if len(paramDef.Xe.Values) == 0 {
		paramDef.Xe = DefaultXe
	}

	return NewParameters(paramDef.N, paramDef.Q, paramDef.T, paramDef.Xs, paramDef.Xe)
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:  p.N(),
		Q:  p.Q(),
		T:  p.T(),
		Xs: p.Xs(),
		Xe: p.Xe(),
	}
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.ringQ.N()
}

// Q returns the coefficient modulus.
func (p Parameters) Q() uint64 {
	return p.ringQ.Modulus()
}

// T returns the plaintext modulus.
func (p Parameters) T() uint64 {
	return p.t
}

// Xs returns the secret distribution.
func (p Parameters) Xs() ring.SmallSet {
	return copySet(p.xs)
}

// Xe returns the error distribution.
func (p Parameters) Xe() ring.SmallSet {
	return copySet(p.xe)
}

// RingQ returns the ring Z_Q[x]/(x^N - 1).
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// NoiseBound returns Q/(2T), the largest phase error magnitude for which decryption
// is correct. It is informative only: decryption never checks it.
func (p Parameters) NoiseBound() float64 {
	return float64(p.Q()) / float64(2*p.T())
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other *Parameters) (res bool) {
	if other == nil {
		return false
	}
	if p.ringQ == nil || other.ringQ == nil {
		return p.ringQ == other.ringQ
	}
	res = p.ringQ.Equal(other.ringQ)
	res = res && p.t == other.t
	res = res && cmp.Equal(p.xs.Values, other.xs.Values)
	res = res && cmp.Equal(p.xe.Values, other.xe.Values)
	return
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

func (p Parameters) String() string {
	return fmt.Sprintf("N=%d/Q=%d/T=%d/Xs=%s/Xe=%s", p.N(), p.Q(), p.T(), p.xs, p.xe)
}

func copySet(s ring.SmallSet) ring.SmallSet {
	values := make([]int64, len(s.Values))
	copy(values, s.Values)
	return ring.SmallSet{Values: values}
}
