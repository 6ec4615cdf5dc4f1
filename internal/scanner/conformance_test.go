package scanner_test

import (
	"testing"

	goccyjson "github.com/goccy/go-json"

	"github.com/reoring/jsoncodec/internal/scanner"
)

// TestNumberConformsToGoccyGoJson cross-checks that numbers ScanNumber
// accepts, on the RFC 8259 grammar subset (no `+`/uppercase-`E` extensions),
// are also accepted by goccy/go-json's own number parsing. This gives the pack's
// alternate JSON driver a real, exercised home rather than an unused
// go.mod line, per SPEC_FULL.md's DOMAIN STACK section.
func TestNumberConformsToGoccyGoJson(t *testing.T) {
	cases := []string{
		"0", "-0", "0.0", "123456789000", "12.34e-5", "-123",
		"1.5e10", "0.001", "-0.0",
	}
	for _, c := range cases {
		n, ok := scanner.ScanNumber([]byte(c))
		if !ok || n != len(c) {
			t.Fatalf("ScanNumber(%q) = (%d, %v), want full match", c, n, ok)
		}
		var v float64
		if err := goccyjson.Unmarshal([]byte(c), &v); err != nil {
			t.Fatalf("goccy/go-json rejected %q that ScanNumber accepted: %v", c, err)
		}
	}
}

func TestStringConformsToGoccyGoJson(t *testing.T) {
	cases := []string{
		`"plain"`,
		`"h\"ello\n"`,
		`"Röc Lang"`,
		`"tab\there"`,
		`"escaped\/slash"`,
	}
	for _, c := range cases {
		n, ok := scanner.ScanString([]byte(c))
		if !ok || n != len(c) {
			t.Fatalf("ScanString(%q) = (%d, %v), want full match", c, n, ok)
		}
		raw := []byte(c)[1 : n-1]
		decoded, ok := scanner.DecodeStringContents(raw)
		if !ok {
			t.Fatalf("DecodeStringContents(%q) failed", raw)
		}
		var want string
		if err := goccyjson.Unmarshal([]byte(c), &want); err != nil {
			t.Fatalf("goccy/go-json rejected %q: %v", c, err)
		}
		if string(decoded) != want {
			t.Fatalf("decoded %q, goccy/go-json decoded %q", decoded, want)
		}
	}
}
