package jsoncodec

import "errors"

// ErrTooShort is the sole failure kind a decoder surfaces, per spec.md §7:
// "the current decoder cannot make progress on these bytes". Every decoder
// that fails returns this error (or, for records and tuples, the
// finalizer's own error, passed through unchanged) together with rest equal
// to the exact bytes it was given — it never consumes on failure.
var ErrTooShort = errors.New("jsoncodec: too short")
