package jparse

import (
	"strconv"

	"github.com/vjson-dev/vjson/jvalue"
)

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isDigit1to9(ch byte) bool {
	return ch >= '1' && ch <= '9'
}

// parseNumber validates the number grammar by lookahead over the byte
// cursor before conversion, matching leptjson's lept_parse_number exactly:
// optional '-', then '0' or a [1-9][0-9]* integer part, optional
// '.'+digits, optional [eE][+-]?digits. A leading zero followed by more
// digits (0123) or an 'x' (0x0) only consumes the '0': the top-level driver
// then reports RootNotSingular for the unconsumed remainder.
func (p *parser) parseNumber(v *jvalue.Value) Status {
	start := p.pos

	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
	}

	c, ok := p.peek()
	if !ok {
		return StatusInvalidValue
	}
	if c == '0' {
		p.pos++
	} else if isDigit1to9(c) {
		p.pos++
		for {
			c, ok := p.peek()
			if !ok || !isDigit(c) {
				break
			}
			p.pos++
		}
	} else {
		return StatusInvalidValue
	}

	if c, ok := p.peek(); ok && c == '.' {
		p.pos++
		c, ok := p.peek()
		if !ok || !isDigit(c) {
			return StatusInvalidValue
		}
		for {
			c, ok := p.peek()
			if !ok || !isDigit(c) {
				break
			}
			p.pos++
		}
	}

	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		p.pos++
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		c, ok := p.peek()
		if !ok || !isDigit(c) {
			return StatusInvalidValue
		}
		for {
			c, ok := p.peek()
			if !ok || !isDigit(c) {
				break
			}
			p.pos++
		}
	}

	raw := string(p.data[start:p.pos])
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return StatusNumberTooBig
		}
		return StatusInvalidValue
	}
	v.SetNumber(n)
	return StatusOK
}
