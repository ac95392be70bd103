package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/schemes/bgv"
	"github.com/YanivDan/bgv/utils/sampling"
)

type options struct {
	n          int
	q          uint64
	t          uint64
	secretSet  string
	paramsFile string
	seed       string
	debug      bool

	logger *zap.SugaredLogger
}

func (o *options) registerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.IntVar(&o.n, "n", bgv.ExampleParameters.N, "ring degree")
	flags.Uint64Var(&o.q, "q", bgv.ExampleParameters.Q, "coefficient modulus")
	flags.Uint64Var(&o.t, "t", bgv.ExampleParameters.PlaintextModulus, "plaintext modulus")
	flags.StringVar(&o.secretSet, "secret-set", "binary", "set of the secret and error coefficients: binary or ternary")
	flags.StringVar(&o.paramsFile, "params", "", "JSON parameters file, overrides --n, --q, --t and --secret-set")
	flags.StringVar(&o.seed, "seed", "", "derive all randomness from this seed instead of the system source")
	flags.BoolVar(&o.debug, "debug", false, "enable debug logging")
}

// parameters resolves the parameters from the JSON file if one is given, or from the flags.
func (o *options) parameters() (params bgv.Parameters, err error) {

	if o.paramsFile != "" {

		var data []byte
		if data, err = os.ReadFile(o.paramsFile); err != nil {
			return bgv.Parameters{}, fmt.Errorf("cannot read parameters: %w", err)
		}

		var lit bgv.ParametersLiteral
		if err = json.Unmarshal(data, &lit); err != nil {
			return bgv.Parameters{}, fmt.Errorf("cannot decode parameters file %s: %w", o.paramsFile, err)
		}

		return bgv.NewParametersFromLiteral(lit)
	}

	var set ring.SmallSet
	switch strings.ToLower(o.secretSet) {
	case "binary":
		set = ring.BinarySet
	case "ternary":
		set = ring.TernarySet
	default:
		return bgv.Parameters{}, fmt.Errorf("invalid secret set %q: must be binary or ternary", o.secretSet)
	}

	return bgv.NewParametersFromLiteral(bgv.ParametersLiteral{
		N:                o.n,
		Q:                o.q,
		Xs:               set,
		Xe:               set,
		PlaintextModulus: o.t,
	})
}

// prng returns a keyed PRNG if a seed was given and the system source otherwise.
func (o *options) prng() (sampling.PRNG, error) {
	if o.seed != "" {
		o.logger.Debugw("using seeded randomness", "seed", o.seed)
		return sampling.NewKeyedPRNG(sampling.KeyFromSeed([]byte(o.seed)))
	}
	return sampling.NewPRNG()
}

// parseIntegers parses the list of integers, skipping and logging the entries that are not unsigned integers.
func parseIntegers(values []string, logger *zap.SugaredLogger) (integers []uint64) {
	for _, v := range values {
		x, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			logger.Warnw("skipping invalid integer", "value", v, "error", err)
			continue
		}
		integers = append(integers, x)
	}
	return
}
