// Package dsl composes the primitive, string, collection, and record
// codecs of spec.md §4 out of the byte-level scanners in
// internal/scanner. It plays the role the teacher's own dsl/ package plays
// for goskema: the root package (jsoncodec) holds the Config, the
// Decoder[T]/Encoder[T] contracts, the two host-collaborator constructors,
// the null/empty rewriting helpers, and the tag encoder (EncodeTag); every
// other concrete codec a caller builds a schema out of lives here.
package dsl
