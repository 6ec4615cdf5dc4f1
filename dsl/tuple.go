package dsl

import (
	jsoncodec "github.com/reoring/jsoncodec"
	"github.com/reoring/jsoncodec/internal/scanner"
)

// TupleStep is what a TupleSpec's Step function returns for a live
// position: the decoder for that slot's element type (boxed as any, since
// each position may have a distinct Go type) and a function that folds the
// decoded value into the accumulated state.
type TupleStep[S any] struct {
	Decoder jsoncodec.Decoder[any]
	Apply   func(state S, index int, value any) S
}

// TupleSpec is the caller-supplied stepping contract of spec.md §4.4: an
// initial state, a function that returns either a TupleStep for index i or
// tooLong=true once the tuple's arity is exceeded, and a finalizer that
// converts the accumulated state into T (its error, if any, propagates
// as-is rather than becoming ErrTooShort).
type TupleSpec[S, T any] struct {
	Init     func() S
	Step     func(state S, index int) (step TupleStep[S], tooLong bool)
	Finalize func(state S, cfg jsoncodec.Config) (T, error)
}

// Tuple builds a tuple decoder from a TupleSpec. Positions beyond the
// tuple's declared arity are consumed and discarded with the skip-value
// scanner (spec.md §4.6) rather than decoded, so trailing extra elements
// don't fail the whole tuple.
func Tuple[S, T any](spec TupleSpec[S, T]) jsoncodec.Decoder[T] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (T, []byte, error) {
		var zero T
		n, ok := scanner.ArrayOpen(input)
		if !ok {
			return zero, input, jsoncodec.ErrTooShort
		}
		rest := input[n:]
		state := spec.Init()
		if m, ok := scanner.ArrayEmpty(rest); ok {
			v, err := spec.Finalize(state, cfg)
			if err != nil {
				return zero, input, err
			}
			return v, rest[m:], nil
		}
		index := 0
		for {
			ws := scanner.SkipWhitespace(rest)
			rest = rest[ws:]
			step, tooLong := spec.Step(state, index)
			if tooLong {
				sn, sok := scanner.SkipValue(rest)
				if !sok {
					return zero, input, jsoncodec.ErrTooShort
				}
				rest = rest[sn:]
			} else {
				v, r2, err := jsoncodec.DecodeNullAsEmpty(step.Decoder, rest, cfg)
				if err != nil {
					return zero, input, err
				}
				state = step.Apply(state, index, v)
				rest = r2
			}
			m, comma, closed := scanner.ArrayCloseOrComma(rest)
			if !comma && !closed {
				return zero, input, jsoncodec.ErrTooShort
			}
			rest = rest[m:]
			index++
			if closed {
				v, err := spec.Finalize(state, cfg)
				if err != nil {
					return zero, input, err
				}
				return v, rest, nil
			}
		}
	})
}

// EncodeTuple appends the JSON array encoding of a fixed set of
// already-encoded element byte spans, applying
// cfg.EmptyEncodeAsNull().Tuple exactly as ListEncoder applies its List
// flag. Elements are pre-encoded by the caller because, unlike a
// homogeneous list, each tuple position may carry a distinct Go type that
// generics cannot express as a single Encoder[T].
func EncodeTuple(buf []byte, elems [][]byte, cfg jsoncodec.Config) []byte {
	buf = append(buf, '[')
	allow := cfg.EmptyEncodeAsNull().Tuple
	first := true
	for _, e := range elems {
		v := jsoncodec.EncodeEmptyAsNull(e, allow)
		if len(v) == 0 {
			continue
		}
		if !first {
			buf = append(buf, ',')
		}
		buf = append(buf, v...)
		first = false
	}
	buf = append(buf, ']')
	return buf
}
