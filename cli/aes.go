package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"silvertiger.com/go/nkncrypto/crypto"
)

type aesOptions struct {
	key string
	iv  string
}

// AddAESCommand adds the aes command group to root.
func AddAESCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &aesOptions{}

	cmd := &cobra.Command{
		Use:   "aes",
		Short: "AES-CBC over block aligned data, without padding",
	}
	cmd.PersistentFlags().StringVar(&opts.key, "key", "", "hex AES key (16, 24 or 32 bytes)")
	cmd.PersistentFlags().StringVar(&opts.iv, "iv", "", "hex IV (16 bytes)")
	_ = cmd.MarkPersistentFlagRequired("key")
	_ = cmd.MarkPersistentFlagRequired("iv")

	cmd.AddCommand(newAESRunCmd("encrypt", "Encrypt hex data", opts, flags, crypto.AESEncryptAligned))
	cmd.AddCommand(newAESRunCmd("decrypt", "Decrypt hex data", opts, flags, crypto.AESDecryptAligned))

	root.AddCommand(cmd)
}

func newAESRunCmd(use, short string, opts *aesOptions, flags *GlobalFlags, run func(data, key, iv []byte) ([]byte, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <data>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := decodeHex("key", opts.key)
			if err != nil {
				return err
			}
			iv, err := decodeHex("iv", opts.iv)
			if err != nil {
				return err
			}
			data, err := decodeHex("data", args[0])
			if err != nil {
				return err
			}

			out, err := run(data, key, iv)
			if err != nil {
				return err
			}
			logger := GetLogger()
			logger.Debug().Str("op", use).Int("blocks", len(out)/16).Msg("aes done")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encode(flags.Output, out))
			return err
		},
	}
}
