// Package jvalue implements the JSON value tree: a tagged union of the
// seven JSON value kinds plus the lifecycle, accessor, equality, copy,
// move, and swap operations that make up its contract.
//
// A zero-value Value is a valid NULL value. Mutating setters (SetBoolean,
// SetNumber, SetString) first release any existing owned payload; Free
// returns a Value to NULL and is safe to call more than once.
package jvalue

import "fmt"

// Tag identifies which of the seven JSON value kinds a Value currently
// holds.
type Tag int

const (
	Null Tag = iota
	False
	True
	Number
	String
	Array
	Object
)

func (t Tag) String() string {
	switch t {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("jvalue.Tag(%d)", int(t))
	}
}

// Member is a (key, Value) pair inside an OBJECT. The key is an owned byte
// sequence; it may contain any byte permitted in a JSON string, including
// embedded zero bytes, and is compared byte-exact with length.
type Member struct {
	Key   []byte
	Value Value
}

// Value is the polymorphic JSON node. Exactly one payload field is
// meaningful at a time, selected by tag; accessors panic if the tag does
// not match, the same assert-on-wrong-tag contract leptjson's lept_value
// accessors enforce.
type Value struct {
	tag Tag
	num float64
	str []byte
	arr []Value
	obj []Member
}

// New returns a Value already in the NULL state (equivalent to Init on a
// freshly declared Value).
func New() *Value {
	return &Value{}
}

// Init resets v to the NULL state without releasing anything (for use on
// storage that has never held an owned payload, e.g. a freshly allocated
// array/object element).
func (v *Value) Init() {
	*v = Value{}
}

// Type returns the value's current tag.
func (v *Value) Type() Tag {
	return v.tag
}

// Free recursively releases any owned storage and returns v to NULL. Safe
// to call on an already-NULL value, and safe to call more than once.
func (v *Value) Free() {
	switch v.tag {
	case Array:
		for i := range v.arr {
			v.arr[i].Free()
		}
	case Object:
		for i := range v.obj {
			v.obj[i].Value.Free()
		}
	}
	*v = Value{}
}

// SetNull releases any existing payload and leaves v in the NULL state.
func (v *Value) SetNull() {
	v.Free()
}

// Bool returns the boolean payload of a TRUE/FALSE value. It panics if v is
// not TRUE or FALSE.
func (v *Value) Bool() bool {
	if v.tag != True && v.tag != False {
		panic("jvalue: Bool called on non-boolean value")
	}
	return v.tag == True
}

// SetBoolean releases any existing payload and installs a TRUE/FALSE value.
func (v *Value) SetBoolean(b bool) {
	v.Free()
	if b {
		v.tag = True
	} else {
		v.tag = False
	}
}

// Number returns the numeric payload. It panics if v is not a NUMBER.
func (v *Value) Number() float64 {
	if v.tag != Number {
		panic("jvalue: Number called on non-number value")
	}
	return v.num
}

// SetNumber releases any existing payload and installs a NUMBER value.
func (v *Value) SetNumber(n float64) {
	v.Free()
	v.tag = Number
	v.num = n
}

// String returns a borrowed view of the STRING payload. It panics if v is
// not a STRING.
func (v *Value) String() []byte {
	if v.tag != String {
		panic("jvalue: String called on non-string value")
	}
	return v.str
}

// StringLen returns the byte length of the STRING payload. It panics if v
// is not a STRING.
func (v *Value) StringLen() int {
	if v.tag != String {
		panic("jvalue: StringLen called on non-string value")
	}
	return len(v.str)
}

// SetString releases any existing payload, copies s in, and installs a
// STRING value. leptjson's (pointer, length) pair must satisfy bytes==NULL
// iff len==0; a Go slice header enforces that automatically (a nil slice
// always reports len 0), so there is nothing further to assert here.
func (v *Value) SetString(s []byte) {
	v.Free()
	owned := make([]byte, len(s))
	copy(owned, s)
	v.tag = String
	v.str = owned
}

// ArrayLen returns the number of elements in an ARRAY value. It panics if v
// is not an ARRAY.
func (v *Value) ArrayLen() int {
	if v.tag != Array {
		panic("jvalue: ArrayLen called on non-array value")
	}
	return len(v.arr)
}

// ArrayElement returns a borrowed pointer to the i-th array element. It
// panics if v is not an ARRAY or i is out of bounds.
func (v *Value) ArrayElement(i int) *Value {
	if v.tag != Array {
		panic("jvalue: ArrayElement called on non-array value")
	}
	if i < 0 || i >= len(v.arr) {
		panic("jvalue: array index out of range")
	}
	return &v.arr[i]
}

// SetArray releases any existing payload and installs elems (copied by
// reference into the new Value's own backing slice) as an ARRAY.
func SetArray(v *Value, elems []Value) {
	v.Free()
	v.tag = Array
	if len(elems) > 0 {
		owned := make([]Value, len(elems))
		copy(owned, elems)
		v.arr = owned
	}
}

// ObjectLen returns the number of members in an OBJECT value. It panics if
// v is not an OBJECT.
func (v *Value) ObjectLen() int {
	if v.tag != Object {
		panic("jvalue: ObjectLen called on non-object value")
	}
	return len(v.obj)
}

// ObjectKey returns a borrowed view of the i-th member's key. It panics if
// v is not an OBJECT or i is out of bounds.
func (v *Value) ObjectKey(i int) []byte {
	if v.tag != Object {
		panic("jvalue: ObjectKey called on non-object value")
	}
	if i < 0 || i >= len(v.obj) {
		panic("jvalue: object index out of range")
	}
	return v.obj[i].Key
}

// ObjectKeyLen returns the byte length of the i-th member's key.
func (v *Value) ObjectKeyLen(i int) int {
	return len(v.ObjectKey(i))
}

// ObjectValue returns a borrowed pointer to the i-th member's value. It
// panics if v is not an OBJECT or i is out of bounds.
func (v *Value) ObjectValue(i int) *Value {
	if v.tag != Object {
		panic("jvalue: ObjectValue called on non-object value")
	}
	if i < 0 || i >= len(v.obj) {
		panic("jvalue: object index out of range")
	}
	return &v.obj[i].Value
}

// SetObject releases any existing payload and installs members (copied by
// reference into the new Value's own backing slice, preserving order and
// duplicates) as an OBJECT.
func SetObject(v *Value, members []Member) {
	v.Free()
	v.tag = Object
	if len(members) > 0 {
		owned := make([]Member, len(members))
		copy(owned, members)
		v.obj = owned
	}
}

// NotFound is the sentinel index returned by FindObjectIndex when no
// member has the requested key. It is distinct from any valid index.
const NotFound = -1

// FindObjectIndex returns the index of the first member whose key is
// byte-exact equal to key, or NotFound. It panics if v is not an OBJECT.
func FindObjectIndex(v *Value, key []byte) int {
	if v.tag != Object {
		panic("jvalue: FindObjectIndex called on non-object value")
	}
	for i := range v.obj {
		if bytesEqual(v.obj[i].Key, key) {
			return i
		}
	}
	return NotFound
}

// FindObjectValue is a convenience wrapper over FindObjectIndex. It returns
// a borrowed pointer to the found member's value and true, or (nil, false).
func FindObjectValue(v *Value, key []byte) (*Value, bool) {
	i := FindObjectIndex(v, key)
	if i == NotFound {
		return nil, false
	}
	return &v.obj[i].Value, true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsEqual reports whether a and b are structurally equal. Different tags
// are never equal. NUMBER compares with float64 == (so NaN != NaN, and
// -0 == 0, by design, following plain IEEE-754 semantics). OBJECT
// comparison is order-sensitive: members must match both key and value in
// index order, so {"a":1,"b":2} != {"b":2,"a":1}.
func IsEqual(a, b *Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case Null, True, False:
		return true
	case Number:
		return a.num == b.num
	case String:
		return bytesEqual(a.str, b.str)
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !IsEqual(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			if !bytesEqual(a.obj[i].Key, b.obj[i].Key) {
				return false
			}
			if !IsEqual(&a.obj[i].Value, &b.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Copy releases dst's existing payload and installs an independent deep
// copy of src: primitives and STRING copy directly, ARRAY and OBJECT
// recursively copy every element/member into freshly allocated storage, so
// mutating dst never affects src (and IsEqual(&dst, src) holds for all
// well-formed src).
func Copy(dst, src *Value) {
	switch src.tag {
	case Null, True, False:
		dst.Free()
		dst.tag = src.tag
	case Number:
		dst.SetNumber(src.num)
	case String:
		dst.SetString(src.str)
	case Array:
		elems := make([]Value, len(src.arr))
		for i := range src.arr {
			Copy(&elems[i], &src.arr[i])
		}
		dst.Free()
		dst.tag = Array
		dst.arr = elems
	case Object:
		members := make([]Member, len(src.obj))
		for i := range src.obj {
			key := make([]byte, len(src.obj[i].Key))
			copy(key, src.obj[i].Key)
			members[i].Key = key
			Copy(&members[i].Value, &src.obj[i].Value)
		}
		dst.Free()
		dst.tag = Object
		dst.obj = members
	}
}

// Move transfers ownership of src's payload to dst, releasing dst's
// existing payload first. After Move, src is NULL.
func Move(dst, src *Value) {
	dst.Free()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the contents of a and b in place.
func Swap(a, b *Value) {
	*a, *b = *b, *a
}
