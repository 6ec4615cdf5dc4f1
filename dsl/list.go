package dsl

import (
	jsoncodec "github.com/reoring/jsoncodec"
	"github.com/reoring/jsoncodec/internal/scanner"
)

// List builds the list decoder of spec.md §4.3: a two-phase scanner that
// consumes the opening '[', then repeatedly decodes an element (applying
// null-as-empty rewriting per §4.7) until it sees ']'. Whitespace between
// any structural token and the empty-array shortcut (`[ ]`) are both
// recognized explicitly.
func List[T any](elem jsoncodec.Decoder[T]) jsoncodec.Decoder[[]T] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) ([]T, []byte, error) {
		n, ok := scanner.ArrayOpen(input)
		if !ok {
			return nil, input, jsoncodec.ErrTooShort
		}
		rest := input[n:]
		if m, ok := scanner.ArrayEmpty(rest); ok {
			return []T{}, rest[m:], nil
		}
		var out []T
		for {
			ws := scanner.SkipWhitespace(rest)
			rest = rest[ws:]
			v, r2, err := jsoncodec.DecodeNullAsEmpty(elem, rest, cfg)
			if err != nil {
				return nil, input, err
			}
			out = append(out, v)
			rest = r2
			m, comma, closed := scanner.ArrayCloseOrComma(rest)
			if !comma && !closed {
				return nil, input, jsoncodec.ErrTooShort
			}
			rest = rest[m:]
			if closed {
				return out, rest, nil
			}
		}
	})
}

// ListEncoder builds the symmetric encoder, applying
// cfg.EmptyEncodeAsNull().List to each element's output before deciding
// whether to keep it, rewrite it to `null`, or drop it (and its comma)
// entirely, per spec.md §4.3.
func ListEncoder[T any](elem jsoncodec.Encoder[T]) jsoncodec.Encoder[[]T] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, values []T, cfg jsoncodec.Config) []byte {
		buf = append(buf, '[')
		allow := cfg.EmptyEncodeAsNull().List
		first := true
		for _, v := range values {
			scratch := elem.Encode(nil, v, cfg)
			scratch = jsoncodec.EncodeEmptyAsNull(scratch, allow)
			if len(scratch) == 0 {
				continue
			}
			if !first {
				buf = append(buf, ',')
			}
			buf = append(buf, scratch...)
			first = false
		}
		buf = append(buf, ']')
		return buf
	})
}
