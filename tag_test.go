package jsoncodec_test

import (
	"testing"

	jsoncodec "github.com/reoring/jsoncodec"
)

func TestEncodeTag(t *testing.T) {
	cases := []struct {
		name string
		args [][]byte
		want string
	}{
		{"Ok", [][]byte{[]byte("1"), []byte(`"two"`)}, `{"Ok":[1,"two"]}`},
		{"Empty", nil, `{"Empty":[]}`},
		{"Single", [][]byte{[]byte("true")}, `{"Single":[true]}`},
	}
	for _, c := range cases {
		got := string(jsoncodec.EncodeTag(nil, c.name, c.args))
		if got != c.want {
			t.Fatalf("EncodeTag(%q, %v) = %q, want %q", c.name, c.args, got, c.want)
		}
	}
}

func TestEncodeTagAppendsToExistingBuffer(t *testing.T) {
	buf := []byte(`[`)
	buf = jsoncodec.EncodeTag(buf, "Wrapped", [][]byte{[]byte("42")})
	buf = append(buf, ']')
	want := `[{"Wrapped":[42]}]`
	if string(buf) != want {
		t.Fatalf("got %q, want %q", buf, want)
	}
}
