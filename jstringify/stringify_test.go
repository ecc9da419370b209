package jstringify

import (
	"math"
	"testing"

	"github.com/vjson-dev/vjson/jparse"
	"github.com/vjson-dev/vjson/jvalue"
)

func stringify(t *testing.T, in string) string {
	t.Helper()
	v, status, err := jparse.Parse([]byte(in))
	if status != jparse.StatusOK {
		t.Fatalf("parse %q: %v (%v)", in, status, err)
	}
	out, err := Stringify(v)
	if err != nil {
		t.Fatalf("stringify %q: %v", in, err)
	}
	return string(out)
}

func TestStringifyLiterals(t *testing.T) {
	cases := map[string]string{"null": "null", "true": "true", "false": "false"}
	for in, want := range cases {
		if got := stringify(t, in); got != want {
			t.Fatalf("stringify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringifyWhitespaceRemoval(t *testing.T) {
	if got := stringify(t, `{ "a" : 1 }`); got != `{"a":1}` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyPreservesMemberOrder(t *testing.T) {
	if got := stringify(t, `{"z":3,"a":1}`); got != `{"z":3,"a":1}` {
		t.Fatalf("got %q, want insertion order preserved (not sorted)", got)
	}
}

func TestStringifyNamedEscapes(t *testing.T) {
	if got := stringify(t, `"\u0008\u0009\u000a\u000c\u000d"`); got != `"\b\t\n\f\r"` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyDecimalControlEscapeQuirk(t *testing.T) {
	// Byte 0x1F (31) has no named escape. leptjson's formula
	// ('0'+ch/10, '0'+ch%10) yields the literal digits "31", not
	// the conventional hex "1f" — this is deliberate, not a bug.
	got := stringify(t, `"\u001f"`)
	want := "\"\\u0031\""
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringifyLowByteDecimalEscapeMatchesHexBelowTen(t *testing.T) {
	// For ch < 10, decimal and hex digits coincide, so e.g. 0x01 still
	// renders as \u0001.
	got := stringify(t, `"\u0001"`)
	if got != `"\u0001"` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyPassesThroughUnescapedBytes(t *testing.T) {
	if got := stringify(t, `"<>&"`); got != `"<>&"` {
		t.Fatalf("got %q", got)
	}
	if got := stringify(t, `"a\/b"`); got != `"a/b"` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyArraysAndObjects(t *testing.T) {
	if got := stringify(t, `[ null , false , true , 123 , "abc" ]`); got != `[null,false,true,123,"abc"]` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyEmptyAggregates(t *testing.T) {
	if got := stringify(t, `[ ]`); got != `[]` {
		t.Fatalf("got %q", got)
	}
	if got := stringify(t, `{ }`); got != `{}` {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyNumberRoundTrips(t *testing.T) {
	cases := []string{
		"0", "123", "-1", "3.1416", "1e10", "1E10", "1e+10", "1e-10",
		"-1e10", "-1e-10", "1.234e+10", "1.234e-10",
		"1.0000000000000002",
		"4.9406564584124654e-324",
		"2.2250738585072014e-308",
		"1.7976931348623157e+308",
	}
	for _, in := range cases {
		v, status, err := jparse.Parse([]byte(in))
		if status != jparse.StatusOK {
			t.Fatalf("parse %q: %v (%v)", in, status, err)
		}
		out, err := Stringify(v)
		if err != nil {
			t.Fatalf("stringify %q: %v", in, err)
		}
		v2, status, err := jparse.Parse(out)
		if status != jparse.StatusOK {
			t.Fatalf("reparse %q (from %q): %v (%v)", out, in, status, err)
		}
		if !jvalue.IsEqual(v, v2) {
			t.Fatalf("round trip mismatch: %q -> %q -> different value", in, out)
		}
	}
}

func TestStringifyNegativeZero(t *testing.T) {
	var v jvalue.Value
	v.SetNumber(math.Copysign(0, -1))
	out, err := Stringify(&v)
	if err != nil {
		t.Fatalf("stringify: %v", err)
	}
	v2, status, err := jparse.Parse(out)
	if status != jparse.StatusOK {
		t.Fatalf("reparse %q: %v (%v)", out, status, err)
	}
	if !jvalue.IsEqual(&v, v2) {
		t.Fatalf("-0 round trip mismatch: got %q", out)
	}
}

func TestStringifyEndToEndScenario(t *testing.T) {
	in := `{"n":null,"f":false,"t":true,"i":123,"s":"abc","a":[1,2,3],"o":{"1":1,"2":2,"3":3}}`
	if got := stringify(t, in); got != in {
		t.Fatalf("got %q, want exact round trip %q", got, in)
	}
}
