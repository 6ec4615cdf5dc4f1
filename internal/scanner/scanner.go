// Package scanner implements the byte-level state machines that the codec
// composes on top of: number, string, array framing, object framing, and
// skip-value. Every scanner walks a byte slice from offset 0 and reports how
// many leading bytes it consumed; it never looks past what it consumed and
// never allocates unless it must produce decoded text (string unescaping).
package scanner

// isWhitespace reports whether b is one of the four JSON insignificant
// whitespace bytes (RFC 8259 section 2).
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SkipWhitespace returns the number of leading whitespace bytes in b.
func SkipWhitespace(b []byte) int {
	n := 0
	for n < len(b) && isWhitespace(b[n]) {
		n++
	}
	return n
}

// isNumberTerminator reports whether b is a byte that may legally follow a
// JSON number: a structural closer, a separator, or whitespace.
func isNumberTerminator(b byte) bool {
	switch b {
	case ']', ',', ' ', '\n', '\r', '\t', '}':
		return true
	default:
		return false
	}
}

// HasPrefixNull reports whether b begins with the four bytes "null".
func HasPrefixNull(b []byte) bool {
	return len(b) >= 4 && b[0] == 'n' && b[1] == 'u' && b[2] == 'l' && b[3] == 'l'
}
