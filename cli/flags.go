package cli

import (
	"encoding/base64"
	"encoding/hex"
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/nkncrypto/crypto"
)

// Exit codes for the CLI.
const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitInvalidInput = 2
)

// Output encodings for binary results.
const (
	OutputHex    = "hex"
	OutputBase64 = "base64"
)

var (
	// ErrInvalidOutputFormat indicates an unknown --output value.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates a command argument that could not be parsed.
	ErrInvalidArgument = errors.New("invalid argument")
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output selects the encoding of binary results (hex or base64).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses everything below warn level.
	Quiet bool
}

// AddGlobalFlags adds the persistent flags to cmd.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputHex, "output encoding (hex|base64)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds the global flags to Viper so they can also be set
// through NKNCRYPTO_ prefixed environment variables.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("NKNCRYPTO")
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the accepted --output values.
func ValidOutputFormats() []string {
	return []string{OutputHex, OutputBase64}
}

// IsValidOutputFormat checks if format is an accepted --output value.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError maps err to a process exit code: ExitInvalidInput for
// rejected arguments or crypto input, ExitError for anything else.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case stderrors.Is(err, ErrInvalidOutputFormat),
		stderrors.Is(err, ErrInvalidArgument),
		stderrors.Is(err, crypto.ErrInvalidInput):
		return ExitInvalidInput
	case isFlagError(err.Error()):
		return ExitInvalidInput
	}
	return ExitError
}

// isFlagError catches cobra's own argument and flag validation errors.
func isFlagError(msg string) bool {
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"flag needs an argument",
		"invalid argument",
		"accepts ",
		"requires at least",
		"required flag",
		"if any flags in the group",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// encode renders b in the selected output encoding.
func encode(format string, b []byte) string {
	if format == OutputBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

// decodeHex parses a hex command argument named name.
func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: %v", name, err)
	}
	return b, nil
}

// messageArg returns the message argument, either as UTF-8 text or hex.
func messageArg(arg string, text bool) ([]byte, error) {
	if text {
		return []byte(arg), nil
	}
	return decodeHex("message", arg)
}

// parseSignatureType maps a --type value to a signature type.
func parseSignatureType(s string) (crypto.SignatureType, error) {
	switch strings.ToLower(s) {
	case "ecdsa", "ecdsa-p256", "p256":
		return crypto.ECDSAP256, nil
	case "ed25519":
		return crypto.Ed25519, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown signature type %q", s)
}
