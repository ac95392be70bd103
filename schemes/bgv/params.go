package bgv

import (
	"encoding/json"
	"fmt"

	"github.com/YanivDan/bgv/core/rlwe"
	"github.com/YanivDan/bgv/ring"
)

// ParametersLiteral is a literal representation of BGV parameters. It has public
// fields and is used to express unchecked user-defined parameters literally into
// Go programs. The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// Users must set the ring degree (N), the coefficient modulus (Q) and the plaintext
// modulus (PlaintextModulus). Optionally, users may specify the secret (Xs) and error (Xe)
// sets. If left unset, [rlwe.DefaultXs] and [rlwe.DefaultXe] are substituted at parameter creation.
type ParametersLiteral struct {
	N                int
	Q                uint64
	Xs               ring.SmallSet
	Xe               ring.SmallSet
	PlaintextModulus uint64
}

// GetRLWEParametersLiteral returns the [rlwe.ParametersLiteral] from the target [bgv.ParametersLiteral].
func (p ParametersLiteral) GetRLWEParametersLiteral() rlwe.ParametersLiteral {
	return rlwe.ParametersLiteral{
		N:  p.N,
		Q:  p.Q,
		T:  p.PlaintextModulus,
		Xs: p.Xs,
		Xe: p.Xe,
	}
}

// Parameters represents a parameter set for the BGV cryptosystem. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	rlwe.Parameters
	ringT *ring.Ring
}

// NewParameters instantiates a set of BGV parameters from the generic RLWE parameters.
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParameters(rlweParams rlwe.Parameters) (p Parameters, err error) {

	if rlweParams.RingQ() == nil {
		return Parameters{}, fmt.Errorf("provided RLWE parameters are invalid")
	}

	var ringT *ring.Ring
	if ringT, err = ring.NewRing(rlweParams.N(), rlweParams.T()); err != nil {
		return Parameters{}, fmt.Errorf("provided plaintext modulus t is invalid: %w", err)
	}

	return Parameters{
		Parameters: rlweParams,
		ringT:      ringT,
	}, nil
}

// NewParametersFromLiteral instantiates a set of BGV parameters from a [ParametersLiteral] specification.
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {
	rlweParams, err := rlwe.NewParametersFromLiteral(pl.GetRLWEParametersLiteral())
	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}
	return NewParameters(rlweParams)
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:                p.N(),
		Q:                p.Q(),
		Xs:               p.Xs(),
		Xe:               p.Xe(),
		PlaintextModulus: p.PlaintextModulus(),
	}
}

// GetRLWEParameters returns a pointer to the underlying RLWE parameters.
func (p Parameters) GetRLWEParameters() *rlwe.Parameters {
	return &p.Parameters
}

// PlaintextModulus returns the plaintext coefficient modulus t.
func (p Parameters) PlaintextModulus() uint64 {
	return p.T()
}

// RingT returns a pointer to the plaintext ring Z_t[x]/(x^N - 1).
func (p Parameters) RingT() *ring.Ring {
	return p.ringT
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return other != nil && p.Parameters.Equal(&other.Parameters)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
