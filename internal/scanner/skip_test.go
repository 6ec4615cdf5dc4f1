package scanner

import "testing"

func TestSkipValueScalar(t *testing.T) {
	n, ok := SkipValue([]byte(`123,"next":1}`))
	if !ok || n != 3 {
		t.Fatalf("got n=%d ok=%v", n, ok)
	}
}

func TestSkipValueEndOfObject(t *testing.T) {
	n, ok := SkipValue([]byte(`true}`))
	if !ok || n != 4 {
		t.Fatalf("got n=%d ok=%v", n, ok)
	}
}

func TestSkipValueNestedStructures(t *testing.T) {
	n, ok := SkipValue([]byte(`{"fieldA":6,"nested":{"nestField":"ab}}}}}cd"}},"ownerName":"Farmer Joe"}`))
	if !ok {
		t.Fatalf("expected ok")
	}
	want := len(`{"fieldA":6,"nested":{"nestField":"ab}}}}}cd"}}`)
	if n != want {
		t.Fatalf("got n=%d want=%d", n, want)
	}
}

func TestSkipValuePathologicalStrings(t *testing.T) {
	cases := []string{
		`"a}}}}b",`,
		`"a]]]]b",`,
		`"a\"b",`,
	}
	for _, c := range cases {
		n, ok := SkipValue([]byte(c))
		if !ok {
			t.Fatalf("SkipValue(%q): expected ok", c)
		}
		if c[n] != ',' {
			t.Fatalf("SkipValue(%q): expected to stop before comma, stopped at %q", c, c[n:])
		}
	}
}

func TestSkipValueArray(t *testing.T) {
	n, ok := SkipValue([]byte(`[1,[2,3],{"a":4}],"rest":true}`))
	if !ok {
		t.Fatalf("expected ok")
	}
	want := len(`[1,[2,3],{"a":4}]`)
	if n != want {
		t.Fatalf("got n=%d want=%d", n, want)
	}
}

func TestSkipValueTooShort(t *testing.T) {
	cases := []string{
		``,
		`{"a":1`,
		`[1,2`,
		`"unterminated`,
	}
	for _, c := range cases {
		if _, ok := SkipValue([]byte(c)); ok {
			t.Fatalf("SkipValue(%q): expected failure", c)
		}
	}
}
