package common

// Last returns the last element of the slice and true, or the zero value and false if empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[len(s)-1], true
}

// SplitLast splits a slice into everything but the last element and the last element.
// The returned head is a fresh copy.
func SplitLast[S ~[]E, E any](s S) (S, E) {
	if len(s) == 0 {
		var zero E
		return S{}, zero
	}

	head := make(S, len(s)-1)
	copy(head, s[:len(s)-1])

	return head, s[len(s)-1]
}
