// Package jsoncanon exports a jvalue.Value tree as RFC 8785 JSON
// Canonicalization Scheme (JCS) text.
//
// This is deliberately a different output format than jstringify.Stringify:
// Stringify preserves insertion order and uses a %.17g-equivalent number
// format, matching this module's own data model. jsoncanon instead produces
// the UTF-16-sorted, ECMA-262-numbered byte sequence that other JCS-aware
// systems expect for interchange, by delegating the actual transform to the
// Cyberphone implementation (github.com/cyberphone/json-canonicalization)
// rather than re-deriving RFC 8785's number and sorting rules locally.
package jsoncanon

import (
	"fmt"

	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/vjson-dev/vjson/jstringify"
	"github.com/vjson-dev/vjson/jvalue"
)

// Error reports a failure to canonicalize a value tree.
type Error struct {
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsoncanon: %v", e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Canonicalize serializes v through jstringify and then rewrites that byte
// sequence into RFC 8785 canonical form: object members sorted by UTF-16
// code unit, numbers formatted per ECMA-262 Number::toString, and strings
// re-escaped per JCS's own rules.
//
// Canonicalize does not independently re-validate v. The parser rejects
// lone surrogate escapes but copies other string bytes through unchecked,
// and SetNumber/SetString accept any input, so v may hold NaN/Infinity or
// invalid UTF-8. Such values are passed through to the Cyberphone
// transform as jstringify renders them.
func Canonicalize(v *jvalue.Value) ([]byte, error) {
	raw, err := jstringify.Stringify(v)
	if err != nil {
		return nil, &Error{Cause: err}
	}
	out, err := cyberphone.Transform(raw)
	if err != nil {
		return nil, &Error{Cause: err}
	}
	return out, nil
}

// CanonicalizeBytes canonicalizes a raw JSON byte sequence directly, without
// requiring the caller to have already parsed it into a jvalue.Value. This
// is the shape cmd/vjson's "canon" subcommand uses when reading a file or
// stdin stream whole.
func CanonicalizeBytes(data []byte) ([]byte, error) {
	out, err := cyberphone.Transform(data)
	if err != nil {
		return nil, &Error{Cause: err}
	}
	return out, nil
}
