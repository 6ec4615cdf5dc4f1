// Package jsoncodec provides a configurable JSON codec: a pair of
// cooperating subsystems that serialize structured values into RFC 8259
// bytes and parse such bytes back into structured values, driven entirely
// by a schema the caller supplies through the composition helpers in
// package dsl.
//
// The hard engineering lives in two places: the byte-level state machines
// in internal/scanner (numbers, strings, array/object framing, and a
// skip-value scanner that discards unknown fields without invoking a value
// decoder), and the schema-driven composition protocol in package dsl that
// builds record and tuple decoders/encoders out of field/element
// sub-decoders through a stepping contract.
//
// Design policy, following this module's teacher:
//   - Keep only public API in the root package; detailed state machines
//     live under internal/.
//   - Composition helpers (records, tuples, lists, primitives) live under
//     dsl/, mirroring how the teacher separates its DSL from its core.
//
// Typical usage:
//
//	cfg := jsoncodec.Configure(jsoncodec.WithFieldNameMapping(jsoncodec.PascalCase))
//	value, rest, err := someDecoder.Decode(input, cfg)
//	out := someEncoder.Encode(nil, value, cfg)
package jsoncodec
