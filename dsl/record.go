package dsl

import (
	jsoncodec "github.com/reoring/jsoncodec"
	"github.com/reoring/jsoncodec/internal/scanner"
)

// FieldStep is what a RecordSpec's Step function returns for a field this
// record wants to keep: the decoder for that field's type (boxed as any)
// and a function that folds the decoded value into the accumulated state.
type FieldStep[S any] struct {
	Decoder jsoncodec.Decoder[any]
	Apply   func(state S, fieldName string, value any) S
}

// RecordSpec is the caller-supplied stepping contract of spec.md §4.5: an
// initial state, a function that, given the accumulated state and an
// internal (already case-mapped) field name, returns either a FieldStep to
// keep or keep=false to skip, and a finalizer that assembles the record
// value (its error propagates as-is).
type RecordSpec[S, T any] struct {
	Init     func() S
	Step     func(state S, internalFieldName string) (step FieldStep[S], keep bool)
	Finalize func(state S, cfg jsoncodec.Config) (T, error)
}

// Record builds a record (object) decoder from a RecordSpec, implementing
// the object scanner states of spec.md §4.5
// (BeforeOpeningBrace/AfterOpeningBrace/ObjectFieldNameStart/BeforeColon/
// AfterColon/AfterObjectValue/AfterComma/AfterClosingBrace) as a flat loop.
// Unknown fields are discarded with the skip-value scanner when
// cfg.SkipMissingProperties() is true, and fail the decode otherwise.
// Duplicate keys are not detected; the last occurrence wins, since each
// Step/Apply call simply overwrites whatever the previous occurrence wrote
// into state.
func Record[S, T any](spec RecordSpec[S, T]) jsoncodec.Decoder[T] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (T, []byte, error) {
		var zero T
		n, ok := scanner.ObjectOpen(input) // BeforeOpeningBrace -> AfterOpeningBrace
		if !ok {
			return zero, input, jsoncodec.ErrTooShort
		}
		rest := input[n:]
		state := spec.Init()
		if m, ok := scanner.ObjectEmpty(rest); ok {
			v, err := spec.Finalize(state, cfg)
			if err != nil {
				return zero, input, err
			}
			return v, rest[m:], nil
		}
		for {
			key, kn, kok := scanner.ObjectKey(rest) // ObjectFieldNameStart
			if !kok {
				return zero, input, jsoncodec.ErrTooShort
			}
			rest = rest[kn:]
			cn, cok := scanner.ObjectColon(rest) // BeforeColon -> AfterColon
			if !cok {
				return zero, input, jsoncodec.ErrTooShort
			}
			rest = rest[cn:]
			internalName := cfg.DecodeFieldName(string(key))
			ws := scanner.SkipWhitespace(rest)
			rest = rest[ws:]

			step, keep := spec.Step(state, internalName)
			if keep {
				v, r2, err := jsoncodec.DecodeNullAsEmpty(step.Decoder, rest, cfg)
				if err != nil {
					return zero, input, err
				}
				state = step.Apply(state, internalName, v)
				rest = r2
			} else {
				if !cfg.SkipMissingProperties() {
					return zero, input, jsoncodec.ErrTooShort
				}
				sn, sok := scanner.SkipValue(rest)
				if !sok {
					return zero, input, jsoncodec.ErrTooShort
				}
				rest = rest[sn:]
			}

			m, comma, closed := scanner.ObjectCommaOrClose(rest) // AfterObjectValue
			if !comma && !closed {
				return zero, input, jsoncodec.ErrTooShort
			}
			rest = rest[m:]
			if closed { // AfterClosingBrace
				v, err := spec.Finalize(state, cfg)
				if err != nil {
					return zero, input, err
				}
				return v, rest, nil
			}
			// AfterComma: loop back to ObjectFieldNameStart.
		}
	})
}

// RecordField is one already-encoded field: an internal camelCase name and
// its pre-encoded value bytes (possibly empty, meaning "omit unless
// rewritten to null").
type RecordField struct {
	Name  string
	Bytes []byte
}

// EncodeRecord appends the JSON object encoding of fields in the given
// order, applying cfg.EmptyEncodeAsNull().Record and cfg's field-name
// mapping to each, per spec.md §4.5.
func EncodeRecord(buf []byte, fields []RecordField, cfg jsoncodec.Config) []byte {
	buf = append(buf, '{')
	allow := cfg.EmptyEncodeAsNull().Record
	first := true
	for _, f := range fields {
		v := jsoncodec.EncodeEmptyAsNull(f.Bytes, allow)
		if len(v) == 0 {
			continue
		}
		if !first {
			buf = append(buf, ',')
		}
		buf = jsoncodec.EncodeJSONString(buf, cfg.EncodeFieldName(f.Name))
		buf = append(buf, ':')
		buf = append(buf, v...)
		first = false
	}
	buf = append(buf, '}')
	return buf
}
