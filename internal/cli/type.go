package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
	"php-class-diagram/internal/resolve"
)

var (
	typeTarget    string
	typeNamespace string
	typeUses      []string
	typeDoc       string
	typeNative    string
	typeParam     string
)

// TypeCmd resolves a single declaration given on the command line.
var TypeCmd = &cobra.Command{
	Use:   "type",
	Short: "Resolve a single declaration",
	Example: `  php-type-resolver type --native '?string'
  php-type-resolver type --namespace 'a\b\c' --doc '/** @var Boo|int */' --use 'a\b\c\bar\Boo'
  php-type-resolver type --target param --param boo --doc '/** @param Boo $boo */' --native object`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, ok := resolve.ParseTarget(typeTarget)
		if !ok {
			return fmt.Errorf("%w: %q (want var, param or return)", resolve.ErrInvalidTarget, typeTarget)
		}

		native, err := phpast.Parse(typeNative)
		if err != nil {
			return err
		}

		uses := make(phptype.Uses, 0, len(typeUses))
		for _, stmt := range typeUses {
			uses = append(uses, phptype.ParseUse(stmt))
		}

		var decl phpast.Declaration
		switch target {
		case resolve.TargetReturn:
			decl = &phpast.Method{ReturnType: native, Doc: typeDoc}
		case resolve.TargetParam:
			decl = &phpast.Param{Name: typeParam, Type: native}
		default:
			decl = &phpast.Property{Type: native, Doc: typeDoc}
		}

		types, err := resolve.Resolve(decl, target, phptype.ParseNamespace(typeNamespace), typeDoc, uses, typeParam)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range types {
			fmt.Fprintf(out, "%s\t%s\n", t, t.Kind)
		}

		return nil
	},
}

func init() {
	flags := TypeCmd.Flags()
	flags.StringVarP(&typeTarget, "target", "t", "var", "Declaration kind: var, param or return")
	flags.StringVarP(&typeNamespace, "namespace", "n", "", `Current namespace, e.g. a\b\c`)
	flags.StringSliceVarP(&typeUses, "use", "u", nil, `Use statement body, e.g. a\b\Boo (repeatable)`)
	flags.StringVarP(&typeDoc, "doc", "d", "", "Raw doc comment text")
	flags.StringVar(&typeNative, "native", "", "Native type expression, e.g. ?string or int|string")
	flags.StringVarP(&typeParam, "param", "p", "", "Parameter name without $ (required for --target param)")
}
