package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YanivDan/bgv/core/rlwe"
	"github.com/YanivDan/bgv/ring"
	"github.com/YanivDan/bgv/schemes/bgv"
	"github.com/YanivDan/bgv/utils/sampling"
)

const (
	opAdd      = "add"
	opMultiply = "multiply"
)

func newRunCmd(opts *options) *cobra.Command {

	var integers, ops []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encrypt integers and evaluate operations over them",
		Long: `Encrypt every integer of --integers, then for each operation of --ops fold all
ciphertexts with it (add or multiply) and print the decrypted coefficients.`,
		Example: `  bgv run --integers 1,2 --ops add,multiply
  bgv run --integers 1,0,1 --ops add --secret-set ternary --seed demo`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			var params bgv.Parameters
			if params, err = opts.parameters(); err != nil {
				return
			}

			var prng sampling.PRNG
			if prng, err = opts.prng(); err != nil {
				return
			}

			return run(params, parseIntegers(integers, opts.logger), ops, prng, opts.logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVarP(&integers, "integers", "i", []string{"1", "2"}, "comma-separated list of integers to encrypt")
	cmd.Flags().StringSliceVar(&ops, "ops", []string{opAdd, opMultiply}, "comma-separated list of operations to evaluate: add, multiply")

	return cmd
}

// run encrypts each integer in the first coefficient of its own plaintext and, for each operation,
// folds the ciphertexts from left to right before decrypting the result to out.
func run(params bgv.Parameters, integers []uint64, ops []string, prng sampling.PRNG, logger *zap.SugaredLogger, out io.Writer) (err error) {

	if len(integers) == 0 {
		return fmt.Errorf("no integer to encrypt")
	}

	for _, op := range ops {
		if op != opAdd && op != opMultiply {
			return fmt.Errorf("invalid operation %q: choose %s or %s", op, opAdd, opMultiply)
		}
	}

	logger.Infow("generating keys", "params", params.String())

	var pk *rlwe.PublicKey
	var sk *rlwe.SecretKey
	if pk, sk, err = bgv.GenerateKeysFromParameters(params, prng); err != nil {
		return
	}

	pts := make([]ring.Poly, len(integers))
	cts := make([]*rlwe.Ciphertext, len(integers))

	for i, v := range integers {

		pts[i] = params.RingQ().NewPoly().Add(ring.Encode([]uint64{v}, params.Q()))

		if cts[i], err = bgv.Encrypt(pts[i], pk, prng); err != nil {
			return
		}

		logger.Debugw("encrypted", "value", v, "ciphertext", cts[i].String())
	}

	for _, op := range ops {

		ct, want := cts[0], pts[0]

		for i := 1; i < len(cts); i++ {
			switch op {
			case opAdd:
				ct = bgv.HomomorphicAdd(ct, cts[i])
				want = want.Add(pts[i])
			case opMultiply:
				if ct, err = bgv.HomomorphicMultiply(ct, cts[i]); err != nil {
					return
				}
				if want, err = want.Mul(pts[i]); err != nil {
					return
				}
			}
		}

		var noise rlwe.Noise
		if noise, err = rlwe.NoiseStats(*params.GetRLWEParameters(), ct, sk, want); err != nil {
			return
		}

		logger.Debugw("evaluated", "op", op, "noise", noise.String())

		if !noise.WithinBound {
			logger.Warnw("noise above q/(2t), the decrypted result is likely wrong", "op", op, "max", noise.Max, "bound", params.NoiseBound())
		}

		var pt ring.Poly
		if pt, err = bgv.Decrypt(ct, sk, params.PlaintextModulus()); err != nil {
			return
		}

		var coeffs []uint64
		if coeffs, err = pt.Decode(); err != nil {
			return
		}

		switch op {
		case opAdd:
			fmt.Fprintf(out, "Decrypted Sum: %v\n", coeffs)
		case opMultiply:
			fmt.Fprintf(out, "Decrypted Product: %v\n", coeffs)
		}
	}

	return
}
