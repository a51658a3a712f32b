// Package cli implements the php-type-resolver command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	jsonOutput bool

	// log is replaced in PersistentPreRunE; the no-op default keeps
	// commands usable when run without the root command.
	log = zap.NewNop()
)

// RootCmd is the php-type-resolver command.
var RootCmd = &cobra.Command{
	Use:   "php-type-resolver",
	Short: "Resolve PHP declaration types from native types, doc comments and imports",
	Long: `Resolve the effective types of PHP properties, method parameters and
method return values.

A type written in the doc comment (@var, @param, @return) wins over the
native type. Union types produce one type per member. Short names are
resolved through the file's use statements, then the current namespace.

Input files are YAML fixtures describing namespaces, use statements and
declarations (see "resolve --help").`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose, jsonOutput)
		if err != nil {
			return err
		}

		log = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log resolution diagnostics")
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "log-json", false, "Log as JSON")

	RootCmd.AddCommand(ResolveCmd, CheckCmd, TypeCmd)
}

// newLogger logs to stderr so command output on stdout stays parseable.
func newLogger(verbose, jsonOutput bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.OutputPaths = []string{"stderr"}

		return config.Build()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zap.DebugLevel,
	)), nil
}
