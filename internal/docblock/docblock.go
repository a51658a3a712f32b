// Package docblock extracts type expressions from @var, @param and @return
// tags of a raw doc comment. Only the first matching tag is used; the rest
// of the comment is ignored.
package docblock

import (
	"regexp"
)

// The type token must end at a word boundary or whitespace, so a bare
// "@var */" has no type and "@var int*/" yields "int".
var (
	varTag    = regexp.MustCompile(`@var\s+(\S+)(\b|\s)`)
	returnTag = regexp.MustCompile(`@return\s+(\S+)(\b|\s)`)
)

// VarType returns the type of the first @var tag, or "" if there is none.
func VarType(doc string) string {
	return firstGroup(varTag, doc)
}

// ReturnType returns the type of the first @return tag, or "" if there is none.
func ReturnType(doc string) string {
	return firstGroup(returnTag, doc)
}

// ParamType returns the type of the first `@param <type> $<name>` tag.
// The parameter name must match exactly; "$id" does not match "$identifier".
func ParamType(doc, name string) string {
	if doc == "" || name == "" {
		return ""
	}

	re, err := regexp.Compile(`@param\s+(\S+)(\b|\s)\s*\$` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return ""
	}

	return firstGroup(re, doc)
}

func firstGroup(re *regexp.Regexp, doc string) string {
	if doc == "" {
		return ""
	}

	m := re.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}

	return m[1]
}
