package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"silvertiger.com/go/nkncrypto/crypto"
)

type keygenOptions struct {
	sigType string
	json    bool
}

// keygenOutput is the --json form of a generated key pair.
type keygenOutput struct {
	Public  json.RawMessage `json:"public"`
	Private string          `json:"private"`
}

// AddKeygenCommand adds the keygen command to root.
func AddKeygenCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &keygenOptions{}

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sigType, err := parseSignatureType(opts.sigType)
			if err != nil {
				return err
			}
			keyPair, err := crypto.GenerateSignatureKeyPair(sigType)
			if err != nil {
				return err
			}

			pub, priv, err := keyPairBytes(keyPair)
			if err != nil {
				return err
			}
			logger := GetLogger()
			logger.Debug().Str("type", sigType.String()).Msg("generated key pair")

			out := cmd.OutOrStdout()
			if !opts.json {
				_, err = fmt.Fprintf(out, "public  %s\nprivate %s\n", encode(flags.Output, pub), encode(flags.Output, priv))
				return err
			}

			serialized, err := crypto.SerializeSignaturePublicKey(keyPair)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(keygenOutput{Public: serialized, Private: encode(flags.Output, priv)})
		},
	}
	cmd.Flags().StringVar(&opts.sigType, "type", "ecdsa", "signature type (ecdsa|ed25519)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the public key in its JSON export form")

	root.AddCommand(cmd)
}

func keyPairBytes(keyPair *crypto.SignatureKeyPair) (pub, priv []byte, err error) {
	if keyPair.Type == crypto.Ed25519 {
		if pub, err = keyPair.Ed25519Pub.MarshalBinary(); err != nil {
			return nil, nil, err
		}
		if priv, err = keyPair.Ed25519Priv.MarshalBinary(); err != nil {
			return nil, nil, err
		}
		return pub, priv, nil
	}
	return crypto.PublicKeyToBytes(keyPair.ECDSAPub), crypto.PrivateKeyToBytes(keyPair.ECDSAPriv), nil
}

type signOptions struct {
	sigType string
	key     string
	text    bool
}

// AddSignCommand adds the sign command to root.
func AddSignCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &signOptions{}

	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message; ECDSA signatures are printed as raw r||s",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := signerFromFlag(opts.sigType)
			if err != nil {
				return err
			}
			key, err := decodeHex("key", opts.key)
			if err != nil {
				return err
			}
			message, err := messageArg(args[0], opts.text)
			if err != nil {
				return err
			}

			sig, err := signer.Sign(message, key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encode(flags.Output, sig))
			return err
		},
	}
	cmd.Flags().StringVar(&opts.sigType, "type", "ecdsa", "signature type (ecdsa|ed25519)")
	cmd.Flags().StringVar(&opts.key, "key", "", "hex private key")
	cmd.Flags().BoolVar(&opts.text, "text", false, "treat the message as UTF-8 text instead of hex")
	_ = cmd.MarkFlagRequired("key")

	root.AddCommand(cmd)
}

type verifyOptions struct {
	sigType string
	pub     string
	sig     string
	text    bool
}

// AddVerifyCommand adds the verify command to root. It prints "valid" or
// "invalid"; malformed keys or signatures are reported as errors.
func AddVerifyCommand(root *cobra.Command) {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Verify a raw r||s or DER signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := signerFromFlag(opts.sigType)
			if err != nil {
				return err
			}
			pub, err := decodeHex("pub", opts.pub)
			if err != nil {
				return err
			}
			sig, err := decodeHex("sig", opts.sig)
			if err != nil {
				return err
			}
			message, err := messageArg(args[0], opts.text)
			if err != nil {
				return err
			}

			ok, err := signer.Verify(message, sig, pub)
			if err != nil {
				return err
			}
			result := "invalid"
			if ok {
				result = "valid"
			}
			logger := GetLogger()
			logger.Debug().Int("signature_len", len(sig)).Bool("valid", ok).Msg("verified")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.sigType, "type", "ecdsa", "signature type (ecdsa|ed25519)")
	cmd.Flags().StringVar(&opts.pub, "pub", "", "hex public key (65 or 33 byte point for ecdsa)")
	cmd.Flags().StringVar(&opts.sig, "sig", "", "hex signature")
	cmd.Flags().BoolVar(&opts.text, "text", false, "treat the message as UTF-8 text instead of hex")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")

	root.AddCommand(cmd)
}

//nolint:ireturn
func signerFromFlag(s string) (crypto.Signer, error) {
	sigType, err := parseSignatureType(s)
	if err != nil {
		return nil, err
	}
	return crypto.SignerFor(sigType)
}
