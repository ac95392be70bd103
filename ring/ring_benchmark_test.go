package ring

import (
	"testing"
)

func BenchmarkRing(b *testing.B) {

	var err error

	for _, p := range testParameters {

		var tc *testParams
		if tc, err = genTestParams(p.N, p.Q); err != nil {
			b.Fatal(err)
		}

		benchSampling(tc, b)
		benchArithmetic(tc, b)
		benchModularReduction(tc, b)
	}
}

func benchSampling(tc *testParams, b *testing.B) {

	b.Run(testString("Sampling/Uniform", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.uniformSampler.ReadNew(); err != nil {
				b.Fatal(err)
			}
		}
	})

	for _, set := range []SmallSet{BinarySet, TernarySet} {

		sampler, err := NewSampler(tc.prng, tc.ringQ, set)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(testString("Sampling/SmallSet/"+set.String(), tc.ringQ), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := sampler.ReadNew(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchArithmetic(tc *testParams, b *testing.B) {

	p0, err := tc.uniformSampler.ReadNew()
	if err != nil {
		b.Fatal(err)
	}

	p1, err := tc.uniformSampler.ReadNew()
	if err != nil {
		b.Fatal(err)
	}

	b.Run(testString("Add", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p0.Add(p1)
		}
	})

	b.Run(testString("Sub", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p0.Sub(p1)
		}
	})

	b.Run(testString("Mul", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := p0.Mul(p1); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString("MulScalar", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p0.MulScalar(3)
		}
	})
}

func benchModularReduction(tc *testParams, b *testing.B) {

	q := tc.ringQ.Modulus()
	x, y := q-1, q>>1

	b.Run(testString("MulMod", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = MulMod(x, y, q)
		}
	})

	b.Run(testString("SubMod", tc.ringQ), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = SubMod(y, x, q)
		}
	})
}
