// Package cli provides the nkncrypto command-line interface.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalLogger is set in PersistentPreRunE and read through GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the logger configured by the root command. Before the
// root command has run it returns a zero logger that discards output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func newRootCmd(flags *GlobalFlags) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "nkncrypto",
		Short: "Hashing, AES-CBC and P-256 signatures for NKN style clients",
		Long: `nkncrypto exposes the client crypto primitives for manual use:
SHA-256, double SHA-256 and RIPEMD-160 digests, block aligned AES-CBC,
ECDSA P-256 signatures in raw r||s form and secure random bytes.

Binary inputs are hex encoded. Outputs follow --output (hex|base64).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			flags.Output = v.GetString("output")
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := InitLogger(flags.Verbose, flags.Quiet, cmd.ErrOrStderr())
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddHashCommand(cmd, flags)
	AddAESCommand(cmd, flags)
	AddKeygenCommand(cmd, flags)
	AddSignCommand(cmd, flags)
	AddVerifyCommand(cmd)
	AddRandCommand(cmd, flags)
	AddDemoCommand(cmd)

	return cmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags)
	return cmd.ExecuteContext(ctx)
}
