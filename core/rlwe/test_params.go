package rlwe

var (
	// testInsecure are insecure parameters used for the sole purpose of fast testing.
	testInsecure = []ParametersLiteral{
		ExampleParameters,
		ExampleParametersTernary,
		{
			N: 16,
			Q: 0x3ee0001,
			T: 65537,
		},
	}
)
