package dsl

import jsoncodec "github.com/reoring/jsoncodec"

// Boxed adapts a typed Decoder[T] into a Decoder[any], so it can sit inside
// a TupleStep or FieldStep alongside sibling decoders of different element
// types. This is the Go realization of spec.md §9's "box the inner
// decoder" guidance for recursive/heterogeneous decoder composition.
func Boxed[T any](d jsoncodec.Decoder[T]) jsoncodec.Decoder[any] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (any, []byte, error) {
		v, rest, err := d.Decode(input, cfg)
		return v, rest, err
	})
}
