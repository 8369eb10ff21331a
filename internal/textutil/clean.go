package textutil

import "strings"

// Canonicalize lowercases s, replaces every character outside [a-z0-9 /+-]
// with a space, collapses runs of whitespace and trims the edges. Every
// keyword membership test in the pipeline goes through this so matching is
// stable against casing, punctuation and HTML noise. Idempotent.
func Canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '/', r == '+', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContainsAny reports whether canonicalized text contains any of the given
// needles as a substring. Needles are canonicalized too, so configured
// keywords match regardless of how they were written.
func ContainsAny(text string, needles []string) bool {
	for _, n := range needles {
		n = Canonicalize(n)
		if n == "" {
			continue
		}
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
