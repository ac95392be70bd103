package rlwe

import (
	"github.com/YanivDan/bgv/ring"
)

var (
	// ExampleParameters is the toy parameter set N=4, Q=97, T=2 with secrets and errors in {0, 1}.
	// It offers no security.
	ExampleParameters = ParametersLiteral{
		N: 4,
		Q: 97,
		T: 2,
	}

	// ExampleParametersTernary is [ExampleParameters] with secrets and errors in {-1, 0, 1}.
	ExampleParametersTernary = ParametersLiteral{
		N:  4,
		Q:  97,
		T:  2,
		Xs: ring.TernarySet,
		Xe: ring.TernarySet,
	}
)
