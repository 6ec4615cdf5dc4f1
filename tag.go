package jsoncodec

// EncodeTag appends the encoding of a discriminated tag `Name arg1 arg2 ...`
// as `{"Name":[arg1,arg2,...]}`, per spec.md §4.9. Each element of args is
// the already-encoded byte form of one tag argument (produced by whatever
// Encoder applies to that argument's type under the caller's Config); no
// case mapping is ever applied to the tag name itself. Decoding a tag is
// not part of this codec — spec.md specifies no inverse.
func EncodeTag(buf []byte, name string, args [][]byte) []byte {
	buf = append(buf, '{')
	buf = appendJSONString(buf, name)
	buf = append(buf, ':', '[')
	for i, a := range args {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, a...)
	}
	buf = append(buf, ']', '}')
	return buf
}
