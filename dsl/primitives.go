package dsl

import (
	"math/big"
	"strconv"
	"strings"

	jsoncodec "github.com/reoring/jsoncodec"
	"github.com/reoring/jsoncodec/internal/scanner"
)

// signedInt lists the fixed-width signed integer types this module gives a
// concrete decoder/encoder pair, per SPEC_FULL.md §4.10.
type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// unsignedInt is signedInt's unsigned counterpart.
type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func scanNumberSlice(input []byte) (norm []byte, n int, ok bool) {
	n, ok = scanner.ScanNumber(input)
	if !ok {
		return nil, 0, false
	}
	return scanner.NormalizeNumber(input[:n]), n, true
}

// scanNumberSliceUnbounded is scanNumberSlice without the 21-byte cap, for
// Int128Decoder/Uint128Decoder: a 128-bit integer's textual form can run to
// ~39 significant digits, well past the width scanNumberSlice's underlying
// scanner.ScanNumber is capped for.
func scanNumberSliceUnbounded(input []byte) (norm []byte, n int, ok bool) {
	n, ok = scanner.ScanNumberUnbounded(input)
	if !ok {
		return nil, 0, false
	}
	return scanner.NormalizeNumber(input[:n]), n, true
}

// IntDecoder builds a Decoder for any of the signed fixed-width integer
// types, using strconv.ParseInt with the matching bitSize as the "host's
// string->number primitive" spec.md §4.1 calls for.
func IntDecoder[T signedInt](bitSize int) jsoncodec.Decoder[T] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (T, []byte, error) {
		norm, n, ok := scanNumberSlice(input)
		if !ok {
			return 0, input, jsoncodec.ErrTooShort
		}
		v, err := strconv.ParseInt(string(norm), 10, bitSize)
		if err != nil {
			return 0, input, jsoncodec.ErrTooShort
		}
		return T(v), input[n:], nil
	})
}

// UintDecoder is IntDecoder's unsigned counterpart.
func UintDecoder[T unsignedInt](bitSize int) jsoncodec.Decoder[T] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (T, []byte, error) {
		norm, n, ok := scanNumberSlice(input)
		if !ok {
			return 0, input, jsoncodec.ErrTooShort
		}
		v, err := strconv.ParseUint(string(norm), 10, bitSize)
		if err != nil {
			return 0, input, jsoncodec.ErrTooShort
		}
		return T(v), input[n:], nil
	})
}

// IntEncoder emits the host's default decimal textual representation for
// any signed fixed-width integer type, per spec.md §4.1.
func IntEncoder[T signedInt]() jsoncodec.Encoder[T] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v T, cfg jsoncodec.Config) []byte {
		return strconv.AppendInt(buf, int64(v), 10)
	})
}

// UintEncoder is IntEncoder's unsigned counterpart.
func UintEncoder[T unsignedInt]() jsoncodec.Encoder[T] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v T, cfg jsoncodec.Config) []byte {
		return strconv.AppendUint(buf, uint64(v), 10)
	})
}

// Float32Decoder and Float64Decoder decode the two IEEE-754 widths spec.md
// §4.1 names.
func Float32Decoder() jsoncodec.Decoder[float32] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (float32, []byte, error) {
		norm, n, ok := scanNumberSlice(input)
		if !ok {
			return 0, input, jsoncodec.ErrTooShort
		}
		v, err := strconv.ParseFloat(string(norm), 32)
		if err != nil {
			return 0, input, jsoncodec.ErrTooShort
		}
		return float32(v), input[n:], nil
	})
}

func Float64Decoder() jsoncodec.Decoder[float64] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (float64, []byte, error) {
		norm, n, ok := scanNumberSlice(input)
		if !ok {
			return 0, input, jsoncodec.ErrTooShort
		}
		v, err := strconv.ParseFloat(string(norm), 64)
		if err != nil {
			return 0, input, jsoncodec.ErrTooShort
		}
		return v, input[n:], nil
	})
}

func Float32Encoder() jsoncodec.Encoder[float32] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v float32, cfg jsoncodec.Config) []byte {
		return strconv.AppendFloat(buf, float64(v), 'g', -1, 32)
	})
}

func Float64Encoder() jsoncodec.Encoder[float64] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v float64, cfg jsoncodec.Config) []byte {
		return strconv.AppendFloat(buf, v, 'g', -1, 64)
	})
}

// BoolDecoder recognizes the literals `true`/`false`.
func BoolDecoder() jsoncodec.Decoder[bool] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (bool, []byte, error) {
		if hasLiteralPrefix(input, "true") {
			return true, input[4:], nil
		}
		if hasLiteralPrefix(input, "false") {
			return false, input[5:], nil
		}
		return false, input, jsoncodec.ErrTooShort
	})
}

func BoolEncoder() jsoncodec.Encoder[bool] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v bool, cfg jsoncodec.Config) []byte {
		if v {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	})
}

func hasLiteralPrefix(b []byte, lit string) bool {
	if len(b) < len(lit) {
		return false
	}
	return string(b[:len(lit)]) == lit
}

// StrDecoder decodes a JSON string, applying the escape table and \uXXXX
// decoding policy of spec.md §4.2.
func StrDecoder() jsoncodec.Decoder[string] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (string, []byte, error) {
		n, ok := scanner.ScanString(input)
		if !ok {
			return "", input, jsoncodec.ErrTooShort
		}
		raw := input[1 : n-1]
		decoded, ok := scanner.DecodeStringContents(raw)
		if !ok {
			return "", input, jsoncodec.ErrTooShort
		}
		return string(decoded), input[n:], nil
	})
}

// StrEncoder encodes a Go string as a JSON string.
func StrEncoder() jsoncodec.Encoder[string] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v string, cfg jsoncodec.Config) []byte {
		return jsoncodec.EncodeJSONString(buf, v)
	})
}

// NullDecoder recognizes the literal `null` and produces struct{}{}. It
// exists for completeness with the primitive codec's null entry in
// SPEC_FULL.md §2 — most callers reach null handling through
// jsoncodec.DecodeNullAsEmpty instead of decoding null directly.
func NullDecoder() jsoncodec.Decoder[struct{}] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (struct{}, []byte, error) {
		if hasLiteralPrefix(input, "null") {
			return struct{}{}, input[4:], nil
		}
		return struct{}{}, input, jsoncodec.ErrTooShort
	})
}

func NullEncoder() jsoncodec.Encoder[struct{}] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, _ struct{}, cfg jsoncodec.Config) []byte {
		return append(buf, "null"...)
	})
}

// Int128Decoder and Uint128Decoder cover the 128-bit end of spec.md §4.1's
// width range using math/big.Int, since Go has no native 128-bit integer.
func Int128Decoder() jsoncodec.Decoder[*big.Int] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (*big.Int, []byte, error) {
		norm, n, ok := scanNumberSliceUnbounded(input)
		if !ok || strings.ContainsAny(string(norm), ".e") {
			return nil, input, jsoncodec.ErrTooShort
		}
		v, ok := new(big.Int).SetString(string(norm), 10)
		if !ok || v.BitLen() > 127 {
			return nil, input, jsoncodec.ErrTooShort
		}
		return v, input[n:], nil
	})
}

func Uint128Decoder() jsoncodec.Decoder[*big.Int] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (*big.Int, []byte, error) {
		norm, n, ok := scanNumberSliceUnbounded(input)
		if !ok || strings.ContainsAny(string(norm), ".e") || strings.HasPrefix(string(norm), "-") {
			return nil, input, jsoncodec.ErrTooShort
		}
		v, ok := new(big.Int).SetString(string(norm), 10)
		if !ok || v.BitLen() > 128 {
			return nil, input, jsoncodec.ErrTooShort
		}
		return v, input[n:], nil
	})
}

func Int128Encoder() jsoncodec.Encoder[*big.Int] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v *big.Int, cfg jsoncodec.Config) []byte {
		return v.Append(buf, 10)
	})
}

func Uint128Encoder() jsoncodec.Encoder[*big.Int] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, v *big.Int, cfg jsoncodec.Config) []byte {
		return v.Append(buf, 10)
	})
}

// Decimal is a fixed-point decimal: Unscaled * 10^-Scale. It backs the
// "fixed-point decimal" entry of the primitive codec share in SPEC_FULL.md
// §2; the wire form has no separate grammar from spec.md §4.3's number
// grammar, just a different post-processing of the scanned digits.
type Decimal struct {
	Unscaled int64
	Scale    int32
}

// DecimalDecoder decodes a JSON number into a Decimal. Exponent forms are
// rejected (TooShort): a fixed-point type has no representation for them.
func DecimalDecoder() jsoncodec.Decoder[Decimal] {
	return jsoncodec.NewCustomDecoder(func(input []byte, cfg jsoncodec.Config) (Decimal, []byte, error) {
		norm, n, ok := scanNumberSlice(input)
		if !ok {
			return Decimal{}, input, jsoncodec.ErrTooShort
		}
		d, ok := parseDecimal(string(norm))
		if !ok {
			return Decimal{}, input, jsoncodec.ErrTooShort
		}
		return d, input[n:], nil
	})
}

func DecimalEncoder() jsoncodec.Encoder[Decimal] {
	return jsoncodec.NewCustomEncoder(func(buf []byte, d Decimal, cfg jsoncodec.Config) []byte {
		return appendDecimal(buf, d)
	})
}

func parseDecimal(s string) (Decimal, bool) {
	if strings.ContainsAny(s, "eE") {
		return Decimal{}, false
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	digits := intPart + fracPart
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Decimal{}, false
	}
	if neg {
		v = -v
	}
	return Decimal{Unscaled: v, Scale: int32(len(fracPart))}, true
}

func appendDecimal(buf []byte, d Decimal) []byte {
	u := d.Unscaled
	neg := u < 0
	if neg {
		u = -u
	}
	digits := strconv.FormatInt(u, 10)
	for int32(len(digits)) <= d.Scale {
		digits = "0" + digits
	}
	if neg {
		buf = append(buf, '-')
	}
	if d.Scale == 0 {
		return append(buf, digits...)
	}
	split := len(digits) - int(d.Scale)
	buf = append(buf, digits[:split]...)
	buf = append(buf, '.')
	buf = append(buf, digits[split:]...)
	return buf
}
