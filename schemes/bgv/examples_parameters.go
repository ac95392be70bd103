package bgv

import (
	"github.com/YanivDan/bgv/ring"
)

var (
	// ExampleParameters is the toy parameter set N=4, Q=97 with a binary plaintext space.
	// It offers no security and is only meant for demonstrations and tests.
	ExampleParameters = ParametersLiteral{
		N:                4,
		Q:                97,
		PlaintextModulus: 2,
	}

	// ExampleParametersTernary is [ExampleParameters] with secrets and errors sampled in {-1, 0, 1}.
	ExampleParametersTernary = ParametersLiteral{
		N:                4,
		Q:                97,
		Xs:               ring.TernarySet,
		Xe:               ring.TernarySet,
		PlaintextModulus: 2,
	}

	// ExampleParametersLogN4 is a larger insecure parameter set with a 16-bit plaintext modulus.
	ExampleParametersLogN4 = ParametersLiteral{
		N:                16,
		Q:                0x3ee0001,
		PlaintextModulus: 0x10001,
	}
)
