package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YanivDan/bgv/schemes/bgv"
)

func newParamsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the resolved parameters as JSON",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			var params bgv.Parameters
			if params, err = opts.parameters(); err != nil {
				return
			}

			var data []byte
			if data, err = json.MarshalIndent(params.ParametersLiteral(), "", "  "); err != nil {
				return
			}

			opts.logger.Debugw("resolved parameters", "params", params.String(), "noise-bound", params.NoiseBound())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return
		},
	}
}
