package jsoncodec

import "github.com/reoring/jsoncodec/internal/scanner"

// EncodeJSONString appends the quoted, escaped encoding of s to buf. Shared
// by EncodeTag (tag names are never case-mapped), package dsl's string and
// record codecs (mapped field names), and any host code that needs to emit
// a bare JSON string.
func EncodeJSONString(buf []byte, s string) []byte {
	return scanner.EncodeString(buf, []byte(s))
}

// appendJSONString is the unexported alias used within this package.
func appendJSONString(buf []byte, s string) []byte {
	return EncodeJSONString(buf, s)
}
