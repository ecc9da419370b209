package jparse

import (
	"github.com/vjson-dev/vjson/jvalue"
)

// parseString parses a JSON string literal and installs it as v's STRING
// payload.
func (p *parser) parseString(v *jvalue.Value) Status {
	s, status := p.parseRawString()
	if status != StatusOK {
		return status
	}
	v.SetString(s)
	return StatusOK
}

// parseRawString parses a JSON string body (including the surrounding
// quotes) and returns an owned copy of the decoded bytes, without
// installing them on any Value — used both for string values and for
// object keys.
func (p *parser) parseRawString() ([]byte, Status) {
	p.pos++ // consume opening '"'
	base := p.bytes.Len()

	for {
		if p.pos >= len(p.data) {
			p.bytes.Pop(p.bytes.Len() - base)
			return nil, StatusMissQuotationMark
		}
		ch := p.data[p.pos]

		switch {
		case ch == '"':
			p.pos++
			n := p.bytes.Len() - base
			raw := p.bytes.Pop(n)
			owned := make([]byte, n)
			copy(owned, raw)
			return owned, StatusOK

		case ch == 0:
			p.bytes.Pop(p.bytes.Len() - base)
			return nil, StatusMissQuotationMark

		case ch == '\\':
			p.pos++
			status := p.parseEscape()
			if status != StatusOK {
				p.bytes.Pop(p.bytes.Len() - base)
				return nil, status
			}

		case ch < 0x20:
			p.bytes.Pop(p.bytes.Len() - base)
			return nil, StatusInvalidStringChar

		default:
			p.bytes.PushOne(ch)
			p.pos++
		}
	}
}

// parseEscape consumes the character(s) after a backslash and pushes the
// decoded byte(s) onto the byte stack.
func (p *parser) parseEscape() Status {
	if p.pos >= len(p.data) {
		return StatusInvalidStringEscape
	}
	esc := p.data[p.pos]
	p.pos++

	switch esc {
	case '"':
		p.bytes.PushOne('"')
	case '\\':
		p.bytes.PushOne('\\')
	case '/':
		p.bytes.PushOne('/')
	case 'b':
		p.bytes.PushOne('\b')
	case 'f':
		p.bytes.PushOne('\f')
	case 'n':
		p.bytes.PushOne('\n')
	case 'r':
		p.bytes.PushOne('\r')
	case 't':
		p.bytes.PushOne('\t')
	case 'u':
		return p.parseUnicodeEscape()
	default:
		return StatusInvalidStringEscape
	}
	return StatusOK
}

// parseUnicodeEscape parses \uXXXX, combining a valid high/low surrogate
// pair into a single supplementary-plane scalar, and encodes the result as
// UTF-8 onto the byte stack.
func (p *parser) parseUnicodeEscape() Status {
	hi, ok := p.readHex4()
	if !ok {
		return StatusInvalidUnicodeHex
	}

	scalar := hi
	if hi >= 0xD800 && hi <= 0xDBFF {
		if p.pos+1 >= len(p.data) || p.data[p.pos] != '\\' || p.data[p.pos+1] != 'u' {
			return StatusInvalidUnicodeSurrogate
		}
		p.pos += 2
		lo, ok := p.readHex4()
		if !ok {
			return StatusInvalidUnicodeHex
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return StatusInvalidUnicodeSurrogate
		}
		scalar = 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
	} else if hi >= 0xDC00 && hi <= 0xDFFF {
		// A lone low surrogate with no preceding high surrogate.
		return StatusInvalidUnicodeSurrogate
	}

	p.encodeUTF8(scalar)
	return StatusOK
}

// readHex4 reads exactly four case-insensitive hex digits and returns the
// decoded value.
func (p *parser) readHex4() (rune, bool) {
	if p.pos+4 > len(p.data) {
		return 0, false
	}
	var u rune
	for i := 0; i < 4; i++ {
		ch := p.data[p.pos+i]
		u <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			u += rune(ch - '0')
		case ch >= 'A' && ch <= 'F':
			u += rune(ch-'A') + 10
		case ch >= 'a' && ch <= 'f':
			u += rune(ch-'a') + 10
		default:
			return 0, false
		}
	}
	p.pos += 4
	return u, true
}

// encodeUTF8 encodes a Unicode scalar value as 1-4 UTF-8 bytes, pushing
// them onto the byte stack.
func (p *parser) encodeUTF8(u rune) {
	switch {
	case u <= 0x7F:
		p.bytes.PushOne(byte(u))
	case u <= 0x7FF:
		slot := p.bytes.Push(2)
		slot[0] = byte(0xC0 | ((u >> 6) & 0x1F))
		slot[1] = byte(0x80 | (u & 0x3F))
	case u <= 0xFFFF:
		slot := p.bytes.Push(3)
		slot[0] = byte(0xE0 | ((u >> 12) & 0x0F))
		slot[1] = byte(0x80 | ((u >> 6) & 0x3F))
		slot[2] = byte(0x80 | (u & 0x3F))
	default:
		slot := p.bytes.Push(4)
		slot[0] = byte(0xF0 | ((u >> 18) & 0x07))
		slot[1] = byte(0x80 | ((u >> 12) & 0x3F))
		slot[2] = byte(0x80 | ((u >> 6) & 0x3F))
		slot[3] = byte(0x80 | (u & 0x3F))
	}
}
