package resolve

import (
	"errors"
	"fmt"
	"strings"

	"php-class-diagram/internal/common"
	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/docblock"
	"php-class-diagram/internal/match"
	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
)

var (
	// ErrInvalidTarget is returned for a Target outside var/param/return.
	ErrInvalidTarget = errors.New("invalid resolve target")
	// ErrMissingParamName is returned for TargetParam without a parameter name.
	ErrMissingParamName = errors.New("parameter name is required")
)

const maxSuggestions = 3

// Option configures a single resolution.
type Option func(*resolver)

// WithLabel sets the declaration label used in diagnostics,
// e.g. "Product::$price".
func WithLabel(label string) Option {
	return func(r *resolver) {
		r.label = label
	}
}

// Resolve returns the effective types of decl for the given target.
//
// doc is the raw doc comment text to search for the target's tag: the
// declaration's own comment for TargetVar and TargetReturn, the enclosing
// method's comment for TargetParam. paramName (without "$") is required
// for TargetParam and ignored otherwise.
//
// The result is never empty.
func Resolve(
	decl phpast.Declaration,
	target Target,
	namespace phptype.Namespace,
	doc string,
	uses phptype.Uses,
	paramName string,
	opts ...Option,
) ([]phptype.Type, error) {
	expr, err := resolve(decl, target, namespace, doc, uses, paramName, opts)
	if err != nil {
		return nil, err
	}

	return expr.types, nil
}

// resolver holds the per-call state of one resolution.
type resolver struct {
	namespace phptype.Namespace
	uses      phptype.Uses
	label     string
	diags     diagnostic.Diagnostics
	reported  map[string]bool
}

func resolve(
	decl phpast.Declaration,
	target Target,
	namespace phptype.Namespace,
	doc string,
	uses phptype.Uses,
	paramName string,
	opts []Option,
) (*Expression, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}

	if target == TargetParam && paramName == "" {
		return nil, fmt.Errorf("%w for target %s", ErrMissingParamName, target)
	}

	r := &resolver{
		namespace: namespace,
		uses:      uses,
		label:     defaultLabel(target, paramName),
		reported:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}

	native := nativeSlot(decl, target)
	typeString := docType(target, doc, paramName)

	var types []phptype.Type

	switch {
	case typeString != "":
		if native != nil {
			r.diags.AddInfo(diagnostic.CodeDocOverridesNative,
				fmt.Sprintf("doc comment type %q overrides native type %q", typeString, phpast.Format(native)),
				r.label, typeString)
		}

		for candidate := range strings.SplitSeq(typeString, "|") {
			types = append(types, r.resolveString(candidate))
		}
	case phpast.KindOf(native) == phpast.NodeUnion:
		for _, member := range native.(*phpast.Union).Types {
			types = append(types, r.resolveNode(member))
		}
	default:
		types = append(types, r.resolveNode(native))
	}

	return &Expression{types: types, diagnostics: r.diags}, nil
}

// nativeSlot returns the annotation slot target reads from decl.
func nativeSlot(decl phpast.Declaration, target Target) phpast.TypeNode {
	if decl == nil {
		return nil
	}

	if target == TargetReturn {
		return decl.ReturnTypeSlot()
	}

	return decl.TypeSlot()
}

// docType extracts the doc comment type expression for target.
func docType(target Target, doc, paramName string) string {
	switch target {
	case TargetVar:
		return docblock.VarType(doc)
	case TargetParam:
		return docblock.ParamType(doc, paramName)
	case TargetReturn:
		return docblock.ReturnType(doc)
	default:
		return ""
	}
}

func defaultLabel(target Target, paramName string) string {
	if target == TargetParam {
		return "param $" + paramName
	}

	return target.String()
}

// resolveString resolves one member of a doc comment type expression.
// Doc types are never nullable; "?T" and "null" are taken literally.
func (r *resolver) resolveString(candidate string) phptype.Type {
	var parts []string

	switch {
	case candidate == "":
		// empty union member, e.g. "int|"
	case phptype.IsPrimitive(candidate):
		parts = []string{candidate}
	case strings.HasPrefix(candidate, phptype.Separator):
		parts = strings.Split(candidate[len(phptype.Separator):], phptype.Separator)
	default:
		local := strings.Split(candidate, phptype.Separator)
		parts = r.qualify(local, candidate)
	}

	return r.finish(phptype.NewType(parts, phptype.KindDoc, false), candidate)
}

// resolveNode resolves one native type node. Union nodes are expected to
// be expanded by the caller.
func (r *resolver) resolveNode(node phpast.TypeNode) phptype.Type {
	nullable := false
	if wrapper, ok := node.(*phpast.Nullable); ok {
		node = wrapper.Type
		nullable = true
	}

	var (
		parts []string
		kind  = phptype.KindUnknown
	)

	switch n := node.(type) {
	case nil:
	case *phpast.Identifier:
		parts, kind = []string{n.Name}, phptype.KindIdentifier
	case *phpast.FullyQualified:
		parts, kind = n.Parts, phptype.KindFullyQualified
	case *phpast.Name:
		parts, kind = r.qualify(n.Parts, n.String()), phptype.KindName
	case *phpast.Nullable, *phpast.Union:
		r.diags.AddWarning(diagnostic.CodeInvalidNativeType,
			fmt.Sprintf("%s type cannot be nested here", n.Kind()),
			r.label, n.String())
	}

	return r.finish(phptype.NewType(parts, kind, nullable), phpast.Format(node))
}

// qualify turns a relative name into a full path: through the import
// table by its last segment, otherwise below the current namespace.
func (r *resolver) qualify(local []string, candidate string) []string {
	short, _ := common.Last(local)

	if ns, ok := r.lookup(short); ok {
		return ns.Append(short)
	}

	if !r.namespace.IsGlobal() {
		r.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticInfo,
			Code:        diagnostic.CodeNamespaceFallback,
			Message:     fmt.Sprintf("no import for %q, resolved in namespace %s", short, r.namespace),
			Declaration: r.label,
			Candidate:   candidate,
			Suggestions: r.suggest(short),
		})
	}

	return r.namespace.Append(local...)
}

func (r *resolver) lookup(short string) (phptype.Namespace, bool) {
	ns, ok := r.uses.Lookup(short)
	if !ok {
		return nil, false
	}

	if !r.reported[short] && r.isDuplicate(short) {
		r.reported[short] = true
		r.diags.AddWarning(diagnostic.CodeDuplicateUse,
			fmt.Sprintf("%q is imported more than once, using %s", short, ns.Append(short)),
			r.label, short)
	}

	return ns, true
}

// suggest returns imported short names close to short.
func (r *resolver) suggest(short string) []string {
	if len(r.uses) == 0 {
		return nil
	}

	names := make([]string, len(r.uses))
	for i, use := range r.uses {
		names[i] = use.Name
	}

	return match.Names(match.Suggest(short, names, match.DefaultThreshold, maxSuggestions))
}

func (r *resolver) isDuplicate(short string) bool {
	count := 0

	for _, use := range r.uses {
		if use.Name == short {
			count++
		}
	}

	return count > 1
}

func (r *resolver) finish(t phptype.Type, candidate string) phptype.Type {
	if !t.IsResolved() {
		r.diags.AddWarning(diagnostic.CodeUnresolvedType,
			"type could not be determined", r.label, candidate)
	}

	return t
}
