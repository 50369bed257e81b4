package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"silvertiger.com/go/nkncrypto/crypto"
)

type hashOptions struct {
	text bool
}

var hashFuncs = map[string]func([]byte) []byte{ //nolint:gochecknoglobals // fixed lookup table
	"sha256":    crypto.Sha256,
	"dsha256":   crypto.DoubleSha256,
	"ripemd160": crypto.Ripemd160,
}

// AddHashCommand adds the hash command to root.
func AddHashCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &hashOptions{}

	cmd := &cobra.Command{
		Use:   "hash <sha256|dsha256|ripemd160> <data>",
		Short: "Print the digest of hex (or --text) data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := hashFuncs[strings.ToLower(args[0])]
			if !ok {
				return errors.Wrapf(ErrInvalidArgument, "unknown hash %q", args[0])
			}
			data, err := messageArg(args[1], opts.text)
			if err != nil {
				return err
			}

			digest := fn(data)
			logger := GetLogger()
			logger.Debug().Str("algorithm", args[0]).Int("input_len", len(data)).Msg("hashed")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encode(flags.Output, digest))
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.text, "text", false, "treat data as UTF-8 text instead of hex")

	root.AddCommand(cmd)
}
