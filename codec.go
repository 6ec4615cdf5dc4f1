package jsoncodec

// Decoder consumes a prefix of input and produces a T plus the unconsumed
// suffix. This is the host-collaborator contract spec.md §6 requires: a
// composable decoder that record/tuple/list machinery can box and nest
// without knowing what concrete type produced it.
type Decoder[T any] interface {
	Decode(input []byte, cfg Config) (T, []byte, error)
}

// DecoderFunc adapts a plain function to Decoder.
type DecoderFunc[T any] func(input []byte, cfg Config) (T, []byte, error)

// Decode implements Decoder.
func (f DecoderFunc[T]) Decode(input []byte, cfg Config) (T, []byte, error) {
	return f(input, cfg)
}

// NewCustomDecoder is the `custom-decoder` constructor spec.md §6 asks the
// host runtime to expose: it takes a function (bytes, handle) -> (result,
// rest) and yields a composable Decoder.
func NewCustomDecoder[T any](fn func(input []byte, cfg Config) (T, []byte, error)) Decoder[T] {
	return DecoderFunc[T](fn)
}

// Encoder appends the encoding of value to buf and returns the grown
// buffer. Encoding is total: it cannot fail (spec.md §3 invariants).
type Encoder[T any] interface {
	Encode(buf []byte, value T, cfg Config) []byte
}

// EncoderFunc adapts a plain function to Encoder.
type EncoderFunc[T any] func(buf []byte, value T, cfg Config) []byte

// Encode implements Encoder.
func (f EncoderFunc[T]) Encode(buf []byte, value T, cfg Config) []byte {
	return f(buf, value, cfg)
}

// NewCustomEncoder is the `custom-encoder` constructor spec.md §6 asks the
// host runtime to expose: it takes a function (outputBuffer, handle) ->
// outputBuffer and yields a composable Encoder.
func NewCustomEncoder[T any](fn func(buf []byte, value T, cfg Config) []byte) Encoder[T] {
	return EncoderFunc[T](fn)
}

// Decode is the top-level caller-facing decode operation of spec.md §6: it
// hands bytes and a Config to a Decoder and returns the parsed value plus
// the unconsumed tail. Failures are carried in err, and rest is always the
// original input on failure (an invariant every Decoder in this module is
// required to uphold).
func Decode[T any](dec Decoder[T], input []byte, cfg Config) (T, []byte, error) {
	return dec.Decode(input, cfg)
}

// Encode is the top-level caller-facing encode operation of spec.md §6.
func Encode[T any](enc Encoder[T], value T, cfg Config) []byte {
	return enc.Encode(nil, value, cfg)
}

// DecodeNullAsEmpty implements the null-as-empty rewriting of spec.md §4.7.
// If cfg.NullDecodeAsEmpty() is true and input begins with the four bytes
// "null", dec is invoked with an empty slice instead, and the returned tail
// is always input[4:] regardless of what dec reports as its own rest. If
// the flag is false or input does not begin with "null", dec sees input
// unchanged.
func DecodeNullAsEmpty[T any](dec Decoder[T], input []byte, cfg Config) (T, []byte, error) {
	if cfg.NullDecodeAsEmpty() && hasNullPrefix(input) {
		v, _, err := dec.Decode(nil, cfg)
		return v, input[4:], err
	}
	return dec.Decode(input, cfg)
}

func hasNullPrefix(b []byte) bool {
	return len(b) >= 4 && b[0] == 'n' && b[1] == 'u' && b[2] == 'l' && b[3] == 'l'
}

// EncodeEmptyAsNull implements the symmetric emit side of spec.md §4.7: if
// valueBytes is empty and allow is true, it returns the literal `null`;
// otherwise valueBytes is returned unchanged (possibly still empty, which
// tells the caller to omit the element/field entirely).
func EncodeEmptyAsNull(valueBytes []byte, allow bool) []byte {
	if len(valueBytes) == 0 && allow {
		return []byte("null")
	}
	return valueBytes
}
