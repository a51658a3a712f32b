package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/fixture"
	"php-class-diagram/internal/report"
)

var (
	resolveOutput    string
	resolveNormalize string
)

// ResolveCmd resolves every declaration of a fixture file.
var ResolveCmd = &cobra.Command{
	Use:   "resolve <fixture.yaml>",
	Short: "Resolve all declarations of a fixture file",
	Long: `Resolve all properties, parameters and return types of a fixture file
and print the result as YAML.

Fixture format:

  version: "1"
  files:
    - path: src/Product.php
      namespace: hoge\fuga\product
      uses:
        - hoge\fuga\product\bar\Boo
      classes:
        - name: Product
          properties:
            - name: price
              type: "?int"
              doc: "/** @var Price */"
          methods:
            - name: relate
              doc: "/** @param Boo|null $boo */"
              params:
                - name: boo
                  type: object
              return: void`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ff, _, err := loadFixture(args[0])
		if err != nil {
			return err
		}

		if resolveNormalize != "" {
			if err := fixture.WriteFile(ff, resolveNormalize); err != nil {
				return err
			}

			log.Info("normalized fixture written", zap.String("path", resolveNormalize))
		}

		r, err := resolveFixture(args[0], ff)
		if err != nil {
			return err
		}

		data, err := report.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		if resolveOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(resolveOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write report %s: %w", resolveOutput, err)
		}

		log.Info("report written", zap.String("path", resolveOutput))

		return nil
	},
}

func init() {
	ResolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "Output file (default: stdout)")
	ResolveCmd.Flags().StringVar(&resolveNormalize, "normalize", "",
		"Also write the fixture with defaults applied (version, file paths) to this file")
}

// generate loads, validates and resolves a fixture file. Validation
// diagnostics are returned separately from the report's own.
func generate(path string) (*report.Report, *diagnostic.Diagnostics, error) {
	ff, validation, err := loadFixture(path)
	if err != nil {
		return nil, validation, err
	}

	r, err := resolveFixture(path, ff)
	if err != nil {
		return nil, validation, err
	}

	return r, validation, nil
}

// loadFixture loads a fixture file and fails on validation errors.
func loadFixture(path string) (*fixture.FixtureFile, *diagnostic.Diagnostics, error) {
	ff, err := fixture.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	validation := fixture.Validate(ff)
	logDiagnostics(validation)

	if validation.HasErrors() {
		return nil, validation, fmt.Errorf("invalid fixture %s: %w", path, validation.Error())
	}

	return ff, validation, nil
}

func resolveFixture(path string, ff *fixture.FixtureFile) (*report.Report, error) {
	files, err := fixture.Build(ff)
	if err != nil {
		return nil, err
	}

	r, err := report.Generate(files)
	if err != nil {
		return nil, err
	}

	logDiagnostics(&r.Diagnostics)
	log.Debug("resolved fixture",
		zap.String("path", path),
		zap.Int("files", len(r.Files)),
		zap.Int("unresolved", len(r.Unresolved())))

	return r, nil
}

func logDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("declaration", d.Declaration),
			zap.String("candidate", d.Candidate),
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			log.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			log.Warn(d.Message, fields...)
		default:
			log.Debug(d.Message, fields...)
		}
	}
}
