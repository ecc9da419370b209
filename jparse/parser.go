// Package jparse implements the recursive-descent JSON parser: whitespace
// skipping, literal matching, number and string lexing, and array/object
// assembly via a per-kind jscratch.Stack, following the exact grammar and
// status taxonomy of the leptjson C parser.
package jparse

import (
	"github.com/vjson-dev/vjson/jscratch"
	"github.com/vjson-dev/vjson/jvalue"
)

// parser is a cursor over a read-only byte sequence, holding the three
// scratch stacks used to assemble in-progress strings, array elements, and
// object members.
type parser struct {
	data     []byte
	pos      int
	depth    int
	maxDepth int

	bytes jscratch.Stack[byte]
	elems jscratch.Stack[jvalue.Value]
	mems  jscratch.Stack[jvalue.Member]
}

// Parse parses data into a freshly allocated Value.
func Parse(data []byte) (*jvalue.Value, Status, error) {
	return ParseWithOptions(data, nil)
}

// ParseWithOptions is like Parse but accepts parser resource limits.
func ParseWithOptions(data []byte, opts *Options) (*jvalue.Value, Status, error) {
	v := jvalue.New()
	status, err := ParseInto(v, data, opts)
	return v, status, err
}

// ParseInto parses data into v: v is first reset to NULL, then populated on
// success. On any non-OK status, v is guaranteed to end in the NULL state
// and err is a *ParseError describing what was wrong.
func ParseInto(v *jvalue.Value, data []byte, opts *Options) (Status, error) {
	v.SetNull()

	p := &parser{data: data, maxDepth: opts.maxDepth()}
	p.skipWhitespace()

	status := p.parseValue(v)
	if status != StatusOK {
		v.SetNull()
		return status, p.err(status, "")
	}

	p.skipWhitespace()
	if p.pos != len(p.data) {
		v.SetNull()
		return StatusRootNotSingular, p.err(StatusRootNotSingular, "trailing content after JSON value")
	}
	return StatusOK, nil
}

func (p *parser) err(status Status, msg string) error {
	if msg == "" {
		msg = status.String()
	}
	return &ParseError{Status: status, Offset: p.pos, Msg: msg}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

func (p *parser) parseValue(v *jvalue.Value) Status {
	c, ok := p.peek()
	if !ok {
		return StatusExpectValue
	}
	switch c {
	case 'n':
		return p.parseLiteral(v, "null", jvalue.Null)
	case 't':
		return p.parseLiteral(v, "true", jvalue.True)
	case 'f':
		return p.parseLiteral(v, "false", jvalue.False)
	case '"':
		return p.parseString(v)
	case '[':
		return p.parseArray(v)
	case '{':
		return p.parseObject(v)
	default:
		return p.parseNumber(v)
	}
}

// parseLiteral matches an exact literal (null/true/false) starting at the
// cursor; any mismatch is StatusInvalidValue.
func (p *parser) parseLiteral(v *jvalue.Value, literal string, tag jvalue.Tag) Status {
	if p.pos+len(literal) > len(p.data) {
		return StatusInvalidValue
	}
	if string(p.data[p.pos:p.pos+len(literal)]) != literal {
		return StatusInvalidValue
	}
	p.pos += len(literal)
	switch tag {
	case jvalue.True:
		v.SetBoolean(true)
	case jvalue.False:
		v.SetBoolean(false)
	default:
		v.SetNull()
	}
	return StatusOK
}

func (p *parser) parseArray(v *jvalue.Value) Status {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return StatusInvalidValue
	}

	p.pos++ // consume '['
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		jvalue.SetArray(v, nil)
		return StatusOK
	}

	size := 0
	for {
		var e jvalue.Value
		status := p.parseValue(&e)
		if status != StatusOK {
			p.discardElems(size)
			return status
		}
		p.elems.PushOne(e)
		size++

		p.skipWhitespace()
		c, ok := p.peek()
		if !ok {
			p.discardElems(size)
			return StatusMissCommaOrSquareBracket
		}
		if c == ',' {
			p.pos++
			p.skipWhitespace()
			continue
		}
		if c == ']' {
			p.pos++
			elems := p.elems.Pop(size)
			jvalue.SetArray(v, elems)
			return StatusOK
		}
		p.discardElems(size)
		return StatusMissCommaOrSquareBracket
	}
}

func (p *parser) discardElems(size int) {
	popped := p.elems.Pop(size)
	for i := range popped {
		popped[i].Free()
	}
}

func (p *parser) parseObject(v *jvalue.Value) Status {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return StatusInvalidValue
	}

	p.pos++ // consume '{'
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		jvalue.SetObject(v, nil)
		return StatusOK
	}

	size := 0
	for {
		c, ok := p.peek()
		if !ok || c != '"' {
			p.discardMembers(size)
			return StatusMissKey
		}

		key, status := p.parseRawString()
		if status != StatusOK {
			p.discardMembers(size)
			return status
		}

		p.skipWhitespace()
		c, ok = p.peek()
		if !ok || c != ':' {
			p.discardMembers(size)
			return StatusMissColon
		}
		p.pos++
		p.skipWhitespace()

		var val jvalue.Value
		status = p.parseValue(&val)
		if status != StatusOK {
			p.discardMembers(size)
			return status
		}

		p.mems.PushOne(jvalue.Member{Key: key, Value: val})
		size++

		p.skipWhitespace()
		c, ok = p.peek()
		if !ok {
			p.discardMembers(size)
			return StatusMissCommaOrCurlyBracket
		}
		if c == ',' {
			p.pos++
			p.skipWhitespace()
			continue
		}
		if c == '}' {
			p.pos++
			members := p.mems.Pop(size)
			jvalue.SetObject(v, members)
			return StatusOK
		}
		p.discardMembers(size)
		return StatusMissCommaOrCurlyBracket
	}
}

func (p *parser) discardMembers(size int) {
	popped := p.mems.Pop(size)
	for i := range popped {
		popped[i].Value.Free()
	}
}
