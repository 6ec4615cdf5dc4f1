package scanner

// skipState names the states from spec.md §4.6. The scanner does not need a
// call stack to track arbitrary nesting: because SkipValue never needs to
// tell an object apart from an array (it only needs to know when the
// bracket balance returns to the depth it started at), a single integer
// depth counter plays the role of the per-nesting-level states
// (InsideAnArray{index,nesting}/InsideAnObject{index,nesting}) that spec.md
// describes. String interiors and their escape handling get their own flag
// pair regardless of whether the surrounding container is an array or an
// object, matching StringInArray/StringInObject having identical behavior.
type skipState int

const (
	skipFieldValue skipState = iota
	skipInsideString
	skipEscaped
	skipAggregate // InsideAnArray or InsideAnObject, indistinguishable by design
	skipStringInAggregate
	skipEscapedStringInAggregate
	skipFieldValueEnd
	skipInvalidObject
)

// SkipValue consumes exactly one JSON value from the start of b — the
// counterpart to spec.md §4.6 — without invoking any value decoder. It
// stops at (without consuming) the byte that ends the value: an unescaped
// top-level ',', '}' or ']'. It never recurses; depth is bounded only by a plain
// counter, so arbitrarily nested input cannot overflow the call stack.
//
// ok is false if b runs out before the value's structure closes (TooShort
// in the caller's terms — SkipValue itself has no notion of Config or
// errors, it only reports whether it made progress).
func SkipValue(b []byte) (n int, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	state := skipFieldValue
	depth := 0
	i := 0
	for i < len(b) {
		c := b[i]
		switch state {
		case skipFieldValue, skipAggregate:
			switch c {
			case '"':
				if depth == 0 {
					state = skipInsideString
				} else {
					state = skipStringInAggregate
				}
			case '[', '{':
				depth++
				state = skipAggregate
			case ']', '}':
				if depth == 0 {
					if i == 0 {
						return 0, false // no value precedes the terminator
					}
					return i, true
				}
				depth--
				if depth == 0 {
					state = skipFieldValue
				}
			case ',':
				if depth == 0 {
					if i == 0 {
						return 0, false
					}
					return i, true
				}
			}
			i++
		case skipInsideString:
			switch c {
			case '\\':
				state = skipEscaped
			case '"':
				state = skipFieldValue
			}
			i++
		case skipEscaped:
			state = skipInsideString
			i++
		case skipStringInAggregate:
			switch c {
			case '\\':
				state = skipEscapedStringInAggregate
			case '"':
				state = skipAggregate
			}
			i++
		case skipEscapedStringInAggregate:
			state = skipStringInAggregate
			i++
		default:
			return 0, false
		}
	}
	// Ran off the end of the input without seeing a terminator: depth > 0,
	// or a top-level string/aggregate never closed.
	if state == skipFieldValue && depth == 0 {
		// A bare scalar (number/true/false/null) that simply ran to the end
		// of the buffer with no trailing terminator byte still counts as
		// fully consumed.
		return i, true
	}
	return 0, false
}
