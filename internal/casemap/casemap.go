// Package casemap implements the bidirectional field-name transforms of
// spec.md §4.8. All transforms operate on ASCII bytes only; internal field
// names are always assumed to be camelCase.
package casemap

import "strings"

// toggleASCIICase flips A-Z <-> a-z and passes every other byte through.
func toggleASCIICase(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 32
	case c >= 'a' && c <= 'z':
		return c - 32
	default:
		return c
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

// SnakeToCamel decodes an external snake_case key into an internal camelCase
// field name: split on '_', uppercase the first byte of every non-head
// segment.
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteByte(upper(p[0]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// CamelToSnake encodes an internal camelCase field name into snake_case:
// prepend '_' + lowercase before every uppercase byte.
func CamelToSnake(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(lower(c))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// KebabToCamel is SnakeToCamel's sibling for '-' instead of '_'.
func KebabToCamel(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteByte(upper(p[0]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// CamelToKebab encodes camelCase into kebab-case.
func CamelToKebab(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(lower(c))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// PascalToCamel toggles the case of the first byte only.
func PascalToCamel(s string) string {
	if s == "" {
		return s
	}
	return string(toggleASCIICase(s[0])) + s[1:]
}

// CamelToPascal is PascalToCamel's own inverse: toggling the first byte's
// case is a self-inverse operation.
func CamelToPascal(s string) string {
	return PascalToCamel(s)
}
