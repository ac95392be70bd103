// Command bgv encrypts a list of integers, folds them with homomorphic additions
// and multiplications, and prints the decrypted results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	opts := new(options)

	rootCmd := &cobra.Command{
		Use:   "bgv",
		Short: "BGV demo - homomorphic addition and multiplication of integers",
		Long: `bgv generates a key pair, encrypts each integer in the first coefficient of its own
plaintext, and evaluates the requested operations over all ciphertexts before decrypting.

The parameters are toy values: they offer no security.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.debug, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	opts.logger = zap.NewNop().Sugar()
	opts.registerFlags(rootCmd)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newParamsCmd(opts))

	return rootCmd
}
