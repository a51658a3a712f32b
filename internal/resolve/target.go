package resolve

//go:generate go tool stringer -type=Target -linecomment -output=target_string.go

// Target selects which annotation of a declaration is resolved.
type Target int

const (
	_ Target = iota // skip zero value, use it as a default (invalid) value for Target

	TargetVar    // var
	TargetParam  // param
	TargetReturn // return

	// TargetTotal is a constant that represents the total number of targets defined
	TargetTotal = int(iota)
)

// IsValid returns true for the defined targets.
func (t Target) IsValid() bool {
	return t > 0 && int(t) < TargetTotal
}

// ParseTarget returns the Target named by s ("var", "param" or "return").
func ParseTarget(s string) (Target, bool) {
	for t := TargetVar; int(t) < TargetTotal; t++ {
		if t.String() == s {
			return t, true
		}
	}

	return 0, false
}
