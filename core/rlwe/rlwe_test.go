package rlwe

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/utils/sampling"
)

var testKey = []byte("rlwe/test")

func testString(params Parameters, opname string) string {
	return fmt.Sprintf("%s/N=%d/Q=%d/T=%d/Xs=%s", opname, params.N(), params.Q(), params.T(), params.Xs())
}

// words returns a PRNG that yields exactly the given 64-bit words, big-endian.
func words(w ...uint64) sampling.PRNG {
	buf := make([]byte, 8*len(w))
	for i, v := range w {
		binary.BigEndian.PutUint64(buf[8*i:], v)
	}
	return bytes.NewReader(buf)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

type TestContext struct {
	params Parameters
	kgen   *KeyGenerator
	enc    *Encryptor
	dec    *Decryptor
	sk     *SecretKey
	pk     *PublicKey
}

func NewTestContext(params Parameters) (tc *TestContext, err error) {

	prng, err := sampling.NewKeyedPRNG(testKey)
	if err != nil {
		return nil, err
	}

	tc = &TestContext{params: params}
	tc.kgen = NewKeyGenerator(params, prng)

	if tc.sk, tc.pk, err = tc.kgen.GenKeyPairNew(); err != nil {
		return nil, err
	}

	tc.enc = NewEncryptor(params, tc.pk, prng)
	tc.dec = NewDecryptor(params, tc.sk)

	return
}

func TestRLWE(t *testing.T) {

	for _, paramsLit := range testInsecure {

		params, err := NewParametersFromLiteral(paramsLit)
		require.NoError(t, err)

		tc, err := NewTestContext(params)
		require.NoError(t, err)

		testParameters(tc, t)
		testKeyGenerator(tc, t)
		testEncryptor(tc, t)
	}

	testUserDefinedParameters(t)
	testScriptedKeys(t)
	testRandomnessFailure(t)
}

func testParameters(tc *TestContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Parameters/NewParametersFromLiteral"), func(t *testing.T) {
		p, err := NewParametersFromLiteral(params.ParametersLiteral())
		require.NoError(t, err)
		require.True(t, params.Equal(&p))
	})

	t.Run(testString(params, "Parameters/MarshalJSON"), func(t *testing.T) {
		data, err := json.Marshal(params)
		require.NoError(t, err)

		var p Parameters
		require.NoError(t, json.Unmarshal(data, &p))
		require.True(t, params.Equal(&p))
	})

	t.Run(testString(params, "Parameters/Equal"), func(t *testing.T) {
		require.False(t, params.Equal(nil))
		require.False(t, params.Equal(&Parameters{}))
		require.True(t, tc.dec.GetRLWEParameters().Equal(&params))
	})

	t.Run(testString(params, "Parameters/NoiseBound"), func(t *testing.T) {
		require.Equal(t, float64(params.Q())/float64(2*params.T()), params.NoiseBound())
	})
}

func testUserDefinedParameters(t *testing.T) {

	t.Run("Parameters/UnmarshalJSON/Defaults", func(t *testing.T) {
		var p Parameters
		require.NoError(t, json.Unmarshal([]byte(`{"N":4,"Q":97,"T":2}`), &p))
		require.Equal(t, 4, p.N())
		require.Equal(t, uint64(97), p.Q())
		require.Equal(t, uint64(2), p.T())
		require.True(t, p.Xs().Equal(DefaultXs)) // Omitting Xs should result in Default being used
		require.True(t, p.Xe().Equal(DefaultXe)) // Omitting Xe should result in Default being used
	})

	t.Run("Parameters/UnmarshalJSON/Ternary", func(t *testing.T) {
		var p Parameters
		require.NoError(t, json.Unmarshal([]byte(`{"N":4,"Q":97,"T":2,"Xs":{"Values":[-1,0,1]}}`), &p))
		require.True(t, p.Xs().Equal(ring.TernarySet))
		require.True(t, p.Xe().Equal(ring.BinarySet))
	})

	t.Run("Parameters/Invalid", func(t *testing.T) {
		for _, lit := range []ParametersLiteral{
			{N: 0, Q: 97, T: 2},
			{N: 4, Q: 1, T: 2},
			{N: 4, Q: 97, T: 1},
			{N: 4, Q: 97, T: 97},
			{N: 4, Q: 97, T: 2, Xs: ring.SmallSet{Values: []int64{0, 97}}},
			{N: 4, Q: 97, T: 2, Xe: ring.SmallSet{Values: []int64{-97}}},
		} {
			_, err := NewParametersFromLiteral(lit)
			require.Error(t, err, "%+v", lit)
		}

		_, err := NewParameters(4, 97, 2, ring.SmallSet{}, ring.BinarySet)
		require.Error(t, err)
	})

	t.Run("Parameters/Immutable", func(t *testing.T) {
		p, err := NewParametersFromLiteral(ExampleParameters)
		require.NoError(t, err)
		xs := p.Xs()
		xs.Values[0] = 5
		require.True(t, p.Xs().Equal(ring.BinarySet))
	})
}

func testKeyGenerator(tc *TestContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "KeyGenerator/GenSecretKeyNew"), func(t *testing.T) {
		require.True(t, params.RingQ().Contains(tc.sk.Value))
		xs, err := ring.Decode[uint64](ring.Encode(params.Xs().Values, params.Q()))
		require.NoError(t, err)
		for _, c := range tc.sk.Value.Coeffs() {
			require.Contains(t, xs, c)
		}
	})

	t.Run(testString(params, "KeyGenerator/GenPublicKeyNew"), func(t *testing.T) {
		require.True(t, params.RingQ().Contains(tc.pk.A))
		require.True(t, params.RingQ().Contains(tc.pk.B))

		// b + a*s = t*e with e in Xe
		noise, err := NoisePublicKey(tc.pk, tc.sk, params)
		require.NoError(t, err)
		require.LessOrEqual(t, noise.Max, float64(params.T()))
	})

	t.Run(testString(params, "KeyGenerator/Reproducible"), func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		sk, pk, err := NewKeyGenerator(params, prng).GenKeyPairNew()
		require.NoError(t, err)
		require.True(t, sk.Equal(tc.sk))
		require.True(t, pk.Equal(tc.pk))
	})
}

func testEncryptor(tc *TestContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Encryptor/FreshMask"), func(t *testing.T) {
		pt := ring.Encode([]uint64{1, 0, 1, 1}, params.Q())
		pt = ring.NewPoly(params.N(), params.Q()).Add(pt)

		ct0, err := tc.enc.EncryptNew(pt)
		require.NoError(t, err)
		ct1, err := tc.enc.EncryptNew(pt)
		require.NoError(t, err)

		require.Equal(t, params.N(), ct0.N())
		require.False(t, ct0.Equal(ct1))
	})

	t.Run(testString(params, "Encryptor/LengthMismatch"), func(t *testing.T) {
		_, err := tc.enc.EncryptNew(ring.NewPoly(params.N()+1, params.Q()))
		var lme *ring.LengthMismatchError
		require.True(t, errors.As(err, &lme))
	})

	t.Run(testString(params, "Decryptor/LengthMismatch"), func(t *testing.T) {
		ct := &Ciphertext{
			C0: ring.NewPoly(params.N()+1, params.Q()),
			C1: ring.NewPoly(params.N()+1, params.Q()),
		}
		_, err := tc.dec.DecryptNew(ct)
		var lme *ring.LengthMismatchError
		require.True(t, errors.As(err, &lme))

		// c0 alone has the wrong degree
		ct.C0 = ring.NewPoly(params.N()+2, params.Q())
		ct.C1 = params.RingQ().NewPoly()
		_, err = tc.dec.DecryptNew(ct)
		require.True(t, errors.As(err, &lme))
		require.Equal(t, params.N()+2, lme.Left)
		require.Equal(t, params.N(), lme.Right)
	})

	t.Run(testString(params, "Decryptor/ZeroCiphertext"), func(t *testing.T) {
		pt, err := tc.dec.DecryptNew(NewCiphertext(params))
		require.NoError(t, err)
		require.True(t, pt.Equal(params.RingQ().NewPoly()))
	})

	t.Run(testString(params, "Decryptor/OutputRange"), func(t *testing.T) {
		ct, err := tc.enc.EncryptNew(params.RingQ().NewPoly())
		require.NoError(t, err)
		pt, err := tc.dec.DecryptNew(ct)
		require.NoError(t, err)
		require.Equal(t, params.Q(), pt.Modulus())
		for _, c := range pt.Coeffs() {
			require.Less(t, c, params.T())
		}
	})

	t.Run(testString(params, "Encryptor/Panics"), func(t *testing.T) {
		require.Panics(t, func() { NewEncryptor(params, nil, failingReader{}) })
		require.Panics(t, func() { NewDecryptor(params, NewSecretKey(ring.NewPoly(params.N()+1, params.Q()))) })
	})
}

// testScriptedKeys draws every key and mask from chosen words so that s = 1.
// Under the textbook formulas c0 + c1*s = m + a*r*(1 - s^2) + t*e*r*s, which is
// only m + t*e*r for such keys.
func testScriptedKeys(t *testing.T) {

	params, err := NewParametersFromLiteral(ExampleParameters)
	require.NoError(t, err)

	q := params.Q()

	genKeys := func(t *testing.T, e ...uint64) (*SecretKey, *PublicKey) {
		script := append([]uint64{1, 0, 0, 0, 10, 20, 30, 40}, e...)
		sk, pk, err := NewKeyGenerator(params, words(script...)).GenKeyPairNew()
		require.NoError(t, err)
		return sk, pk
	}

	m := ring.Encode([]uint64{1, 0, 1, 1}, q)

	t.Run("KeyGenerator/Scripted", func(t *testing.T) {
		sk, pk := genKeys(t, 0, 1, 0, 0)
		require.Empty(t, cmp.Diff([]uint64{1, 0, 0, 0}, sk.Value.Coeffs()))
		require.Empty(t, cmp.Diff([]uint64{10, 20, 30, 40}, pk.A.Coeffs()))
		// b = -a*s + 2e
		require.Empty(t, cmp.Diff([]uint64{87, 79, 67, 57}, pk.B.Coeffs()))

		noise, err := NoisePublicKey(pk, sk, params)
		require.NoError(t, err)
		require.Equal(t, 2.0, noise.Max)
		require.InDelta(t, math.Sqrt(0.75), noise.Std, 1e-12)
		require.True(t, noise.WithinBound)
	})

	t.Run("Encryptor/Scripted", func(t *testing.T) {
		_, pk := genKeys(t, 0, 0, 0, 0)
		enc := NewEncryptor(params, pk, failingReader{}).WithPRNG(words(1, 0, 0, 0))
		ct, err := enc.EncryptNew(m)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]uint64{11, 20, 31, 41}, ct.C0.Coeffs()))
		require.Empty(t, cmp.Diff([]uint64{87, 77, 67, 57}, ct.C1.Coeffs()))
	})

	t.Run("Encryptor/FromPublicKey", func(t *testing.T) {
		_, pk := genKeys(t, 0, 0, 0, 0)
		enc, err := NewEncryptorFromPublicKey(pk, words(1, 0, 0, 0))
		require.NoError(t, err)
		ct, err := enc.EncryptNew(m)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]uint64{11, 20, 31, 41}, ct.C0.Coeffs()))

		_, err = NewEncryptorFromPublicKey(&PublicKey{A: pk.A, B: ring.NewPoly(3, q)}, words())
		require.Error(t, err)

		_, err = NewEncryptorFromPublicKey(nil, words())
		require.Error(t, err)
	})

	t.Run("Decryptor/Exact", func(t *testing.T) {
		sk, pk := genKeys(t, 0, 0, 0, 0)
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		enc := NewEncryptor(params, pk, prng)
		dec := NewDecryptor(params, sk)

		for _, values := range [][]uint64{{0, 0, 0, 0}, {1, 1, 1, 1}, {1, 0, 1, 1}, {0, 1, 0, 1}} {
			ct, err := enc.EncryptNew(ring.Encode(values, q))
			require.NoError(t, err)
			pt, err := dec.DecryptNew(ct)
			require.NoError(t, err)
			have, err := pt.Decode()
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(values, have))
		}
	})

	t.Run("Decryptor/SmallNoise", func(t *testing.T) {
		sk, pk := genKeys(t, 1, 0, 0, 0)
		ct, err := NewEncryptor(params, pk, words(10, 0, 0, 0)).EncryptNew(m)
		require.NoError(t, err)

		pt, err := NewDecryptor(params, sk).DecryptNew(ct)
		require.NoError(t, err)
		require.True(t, pt.Equal(m))

		// phase error 2*e*r*s = [20, 0, 0, 0]
		noise, err := NoiseStats(params, ct, sk, m)
		require.NoError(t, err)
		require.Equal(t, 20.0, noise.Max)
		require.True(t, noise.WithinBound)
	})

	t.Run("Decryptor/NoiseAboveBound", func(t *testing.T) {
		sk, pk := genKeys(t, 1, 0, 0, 0)

		ct, err := NewEncryptor(params, pk, words(20, 0, 0, 0)).EncryptNew(m)
		require.NoError(t, err)
		noise, err := NoiseStats(params, ct, sk, m)
		require.NoError(t, err)
		require.Equal(t, 40.0, noise.Max)
		require.False(t, noise.WithinBound)

		// 1 + 2*60 wraps modulo 97 and flips the parity of the first coefficient.
		ct, err = NewEncryptor(params, pk, words(60, 0, 0, 0)).EncryptNew(m)
		require.NoError(t, err)
		pt, err := NewDecryptor(params, sk).DecryptNew(ct)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]uint64{0, 0, 1, 1}, pt.Coeffs()))
	})

	t.Run("Encryptor/WithKey", func(t *testing.T) {
		sk0, pk0 := genKeys(t, 0, 0, 0, 0)
		sk1, pk1 := genKeys(t, 1, 0, 0, 0)

		enc := NewEncryptor(params, pk0, words(10, 0, 0, 0)).WithKey(pk1)
		ct, err := enc.EncryptNew(m)
		require.NoError(t, err)

		pt, err := NewDecryptor(params, sk0).WithKey(sk1).DecryptNew(ct)
		require.NoError(t, err)
		require.True(t, pt.Equal(m))

		// the error of pk1 shows up in the phase, pk0 has none
		noise, err := NoiseStats(params, ct, sk1, m)
		require.NoError(t, err)
		require.Equal(t, 20.0, noise.Max)

		require.Panics(t, func() { enc.WithKey(&PublicKey{A: ring.NewPoly(3, q), B: ring.NewPoly(3, q)}) })
		require.Panics(t, func() { NewDecryptor(params, sk0).WithKey(nil) })
	})

	t.Run("KeyGenerator/Ternary", func(t *testing.T) {
		ternary, err := NewParametersFromLiteral(ExampleParametersTernary)
		require.NoError(t, err)

		// TernarySet indexes: 0 -> -1, 1 -> 0, 2 -> 1
		sk, pk, err := NewKeyGenerator(ternary, words(2, 1, 1, 1, 10, 20, 30, 40, 1, 1, 1, 1)).GenKeyPairNew()
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]uint64{1, 0, 0, 0}, sk.Value.Coeffs()))

		ct, err := NewEncryptor(ternary, pk, words(5, 6, 7, 8)).EncryptNew(m)
		require.NoError(t, err)
		pt, err := NewDecryptor(ternary, sk).DecryptNew(ct)
		require.NoError(t, err)
		require.True(t, pt.Equal(m))
	})
}

func testRandomnessFailure(t *testing.T) {

	params, err := NewParametersFromLiteral(ExampleParameters)
	require.NoError(t, err)

	var re *sampling.RandomnessError

	t.Run("KeyGenerator/RandomnessError", func(t *testing.T) {
		_, err := NewKeyGenerator(params, failingReader{}).GenSecretKeyNew()
		require.True(t, errors.As(err, &re))

		// the source runs dry while sampling a
		_, _, err = NewKeyGenerator(params, words(1, 0, 0, 0, 10)).GenKeyPairNew()
		require.True(t, errors.As(err, &re))
	})

	t.Run("Encryptor/RandomnessError", func(t *testing.T) {
		_, pk, err := NewKeyGenerator(params, words(1, 0, 0, 0, 10, 20, 30, 40, 0, 0, 0, 0)).GenKeyPairNew()
		require.NoError(t, err)

		_, err = NewEncryptor(params, pk, failingReader{}).EncryptNew(params.RingQ().NewPoly())
		require.True(t, errors.As(err, &re))
	})
}
