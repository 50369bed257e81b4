package cli

import (
	"github.com/spf13/cobra"

	"silvertiger.com/go/nkncrypto/poc"
)

// AddDemoCommand adds the demo command to root.
func AddDemoCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the signing and sealed message scenarios",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return poc.RunCryptographyDemo(GetLogger())
		},
	})
}
