package dsl

import jsoncodec "github.com/reoring/jsoncodec"

// Nullable wraps a value that may be textually absent (rewritten from
// `null`) rather than simply invalid. It is the composition this module
// offers on top of jsoncodec.DecodeNullAsEmpty for the pattern spec.md §8
// scenario 6 describes: a field configured to treat null as empty ends up
// absent from the finalized record rather than failing the whole decode.
// spec.md's core leaves building such an "optional" wrapper to the host
// runtime (§9, "record/tuple composition... is the host's responsibility");
// this is this module's version of that, grounded on how goskema's own
// object builder applies defaults for a missing field via handleMissingField.
type Nullable[T any] struct {
	Present bool
	Value   T
}

// NullableOf builds a Decoder[Nullable[T]] around inner. When
// cfg.NullDecodeAsEmpty() is true and the input begins with `null`, the
// result is Present=false and the tail is positioned right after the four
// bytes `null` — inner is never invoked in that case, since an empty slice
// is not itself decodable as most element types (spec.md §4.7 only
// specifies the rewrite; it is silent on what a sub-decoder does with an
// empty slice, so treating "would decode empty" as "absent" is this
// module's decision, recorded in DESIGN.md). An empty input under the same
// flag is also Present=false: that is what a parent record/list/tuple hands
// over after jsoncodec.DecodeNullAsEmpty has already rewritten `null`.
func NullableOf[T any](inner jsoncodec.Decoder[T]) jsoncodec.Decoder[Nullable[T]] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (Nullable[T], []byte, error) {
		if cfg.NullDecodeAsEmpty() && hasNullPrefix(input) {
			return Nullable[T]{}, input[4:], nil
		}
		if cfg.NullDecodeAsEmpty() && len(input) == 0 {
			return Nullable[T]{}, input, nil
		}
		v, rest, err := inner.Decode(input, cfg)
		if err != nil {
			return Nullable[T]{}, input, err
		}
		return Nullable[T]{Present: true, Value: v}, rest, nil
	})
}

func hasNullPrefix(b []byte) bool {
	return len(b) >= 4 && b[0] == 'n' && b[1] == 'u' && b[2] == 'l' && b[3] == 'l'
}

// NullableEncoder encodes a Nullable[T] back to bytes: absent encodes to an
// empty span (letting the enclosing record/list apply its own
// empty-to-null policy), present delegates to inner.
func NullableEncoder[T any](inner jsoncodec.Encoder[T]) jsoncodec.Encoder[Nullable[T]] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v Nullable[T], cfg jsoncodec.Config) []byte {
		if !v.Present {
			return buf
		}
		return inner.Encode(buf, v.Value, cfg)
	})
}
