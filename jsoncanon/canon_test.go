package jsoncanon

import (
	"testing"

	"github.com/vjson-dev/vjson/jparse"
)

func TestCanonicalizeSortsObjectMembers(t *testing.T) {
	v, status, err := jparse.Parse([]byte(`{"z":1,"a":2}`))
	if status != jparse.StatusOK {
		t.Fatalf("parse: %v (%v)", status, err)
	}
	out, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got, want := string(out), `{"a":2,"z":1}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCanonicalizeRemovesInsignificantWhitespace(t *testing.T) {
	v, status, _ := jparse.Parse([]byte(`{ "a" : [ 1 , 2 , 3 ] }`))
	if status != jparse.StatusOK {
		t.Fatalf("parse status: %v", status)
	}
	out, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got, want := string(out), `{"a":[1,2,3]}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCanonicalizeBytesMatchesValuePath(t *testing.T) {
	in := []byte(`{"b":true,"a":false}`)
	v, status, _ := jparse.Parse(in)
	if status != jparse.StatusOK {
		t.Fatalf("parse status: %v", status)
	}
	viaValue, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	viaBytes, err := CanonicalizeBytes(in)
	if err != nil {
		t.Fatalf("CanonicalizeBytes: %v", err)
	}
	if string(viaValue) != string(viaBytes) {
		t.Fatalf("divergent outputs: %q vs %q", viaValue, viaBytes)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	v, status, _ := jparse.Parse([]byte(`{"n":1.5,"s":"hi","a":[true,null]}`))
	if status != jparse.StatusOK {
		t.Fatalf("parse status: %v", status)
	}
	once, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	twice, err := CanonicalizeBytes(once)
	if err != nil {
		t.Fatalf("CanonicalizeBytes: %v", err)
	}
	if string(once) != string(twice) {
		t.Fatalf("not idempotent: %q -> %q", once, twice)
	}
}
