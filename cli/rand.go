package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"silvertiger.com/go/nkncrypto/crypto"
)

// AddRandCommand adds the rand command to root.
func AddRandCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "rand <n>",
		Short: "Print n secure random bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(ErrInvalidArgument, "byte count %q", args[0])
			}
			b, err := crypto.RandomBytes(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encode(flags.Output, b))
			return err
		},
	})
}
