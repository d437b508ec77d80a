// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

package ast

import (
	"errors"
	"io"
	"math"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hofstead/jot"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting depth bound applied by a Parser unless
// overridden with SetMaxDepth.
const DefaultMaxDepth = 10000

// Parse parses input, which must contain exactly one JSON value and
// optional surrounding whitespace. In case of error the returned error has
// concrete type [*jot.SyntaxError].
func Parse(input string) (Value, error) { return ParseSingle(strings.NewReader(input)) }

// ParseSingle parses a single JSON value from r. The input after the value
// must be empty except for whitespace; any further content is reported as
// an ExtraChars error rather than silently ignored. In case of error the
// returned error has concrete type [*jot.SyntaxError].
func ParseSingle(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// A Parser is a single-pass recursive-descent parser over one input
// stream. It owns its input for the duration of a Parse call; each value is
// parsed by one uninterrupted descent with no intermediate token stream.
type Parser struct {
	rd       *jot.Reader
	maxDepth int
	depth    int
}

// NewParser constructs a new Parser that consumes input from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{rd: jot.NewReader(r), maxDepth: DefaultMaxDepth}
}

// SetMaxDepth configures the nesting depth at which parsing fails with a
// DepthExceeded error instead of recursing further. Values n <= 0 restore
// DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Parse parses one complete value from the input and verifies that nothing
// but whitespace remains. Parsing is all-or-nothing: no value is returned
// with an error.
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	ch, err := p.rd.SkipSpace()
	if err == io.EOF {
		return v, nil
	} else if err != nil {
		return nil, err
	}

	// Report everything left on the stream, not just the first offender.
	var sb strings.Builder
	sb.WriteRune(ch)
	for {
		ch, err := p.rd.Next()
		if err != nil {
			break
		}
		sb.WriteRune(ch)
	}
	return nil, &jot.SyntaxError{Kind: jot.ExtraChars, Extra: sb.String()}
}

// parseValue dispatches on the first significant rune of a value.
func (p *Parser) parseValue() (Value, error) {
	if p.depth++; p.depth > p.maxDepth {
		return nil, &jot.SyntaxError{Kind: jot.DepthExceeded}
	}
	defer func() { p.depth-- }()

	ch, err := p.skip()
	if err != nil {
		return nil, err
	}
	switch {
	case ch == 'n':
		return p.parseKeyword("ull", Null{})
	case ch == 't':
		return p.parseKeyword("rue", Bool(true))
	case ch == 'f':
		return p.parseKeyword("alse", Bool(false))
	case ch == '[':
		a, err := p.parseArray()
		if err != nil {
			return nil, err
		}
		return a, nil
	case ch == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return s, nil
	case ch == '{':
		o, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		return o, nil
	case ch == '-' || isDigit(ch):
		n, err := p.parseNumber(ch)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, unexpected(ch)
	}
}

// parseKeyword consumes the tail of a true/false/null literal whose first
// rune has already been read, and returns v on an exact match. A mismatch,
// including running out of input, is UnexpectedKeyword.
func (p *Parser) parseKeyword(rest string, v Value) (Value, error) {
	buf := make([]byte, 0, 4)
	for len(buf) < len(rest) {
		ch, eof, err := p.next()
		if err != nil {
			return nil, err
		} else if eof {
			break
		}
		buf = utf8.AppendRune(buf, ch)
	}
	if !mem.B(buf).Equal(mem.S(rest)) {
		return nil, &jot.SyntaxError{Kind: jot.UnexpectedKeyword}
	}
	return v, nil
}

// parseObject consumes the members of an object whose open brace has
// already been read, including the closing brace.
func (p *Parser) parseObject() (Object, error) {
	obj := Object{}
	for {
		ch, err := p.skip()
		if err != nil {
			return nil, err
		}
		// A close brace ends the object only before the first member;
		// after a comma a key must follow.
		if ch == '}' && len(obj) == 0 {
			return obj, nil
		}
		if ch != '"' {
			return nil, unexpected(ch)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		if ch, err := p.skip(); err != nil {
			return nil, err
		} else if ch != ':' {
			return nil, unexpected(ch)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// No uniqueness check: duplicate keys are appended in order.
		obj = append(obj, &Member{Key: string(key), Value: val})

		ch, err = p.skip()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ',':
		case '}':
			return obj, nil
		default:
			return nil, unexpected(ch)
		}
	}
}

// parseArray consumes the elements of an array whose open bracket has
// already been read, including the closing bracket.
func (p *Parser) parseArray() (Array, error) {
	arr := Array{}
	for {
		v, err := p.parseValue()
		if err != nil {
			// A close bracket where the first element would begin closes an
			// empty array; the grammar has no other empty-array case.
			var serr *jot.SyntaxError
			if len(arr) == 0 && errors.As(err, &serr) &&
				serr.Kind == jot.UnexpectedChar && serr.Char == ']' {
				return arr, nil
			}
			return nil, err
		}
		arr = append(arr, v)

		ch, err := p.skip()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ',':
		case ']':
			return arr, nil
		default:
			return nil, unexpected(ch)
		}
	}
}

// parseString consumes a string whose opening quote has already been read,
// including the closing quote, and returns its decoded content.
func (p *Parser) parseString() (String, error) {
	var sb strings.Builder
	for {
		ch, eof, err := p.next()
		if err != nil {
			return "", err
		} else if eof {
			return "", earlyEOS()
		}
		switch ch {
		case '"':
			return String(sb.String()), nil
		case '\\':
			dec, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(dec)
		default:
			sb.WriteRune(ch)
		}
	}
}

// parseEscape decodes one escape sequence whose backslash has already been
// read.
func (p *Parser) parseEscape() (rune, error) {
	ch, eof, err := p.next()
	if err != nil {
		return 0, err
	} else if eof {
		return 0, earlyEOS()
	}
	switch ch {
	case '"', '\\', '/':
		return ch, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return p.parseUnicodeEscape()
	default:
		return 0, &jot.SyntaxError{Kind: jot.UnknownEscape, Char: ch}
	}
}

// parseUnicodeEscape decodes the XXXX tail of a \uXXXX escape. A code unit
// in the surrogate range must be the high half of a UTF-16 surrogate pair
// and be followed by a literal \u and the low half; the pair decodes to a
// single rune.
func (p *Parser) parseUnicodeEscape() (rune, error) {
	u1, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(u1) {
		return u1, nil
	}
	if u1 >= 0xDC00 {
		return 0, invalidUnicode() // low half with no preceding high half
	}
	for _, want := range "\\u" {
		ch, eof, err := p.next()
		if err != nil {
			return 0, err
		} else if eof {
			return 0, earlyEOS()
		} else if ch != want {
			return 0, invalidUnicode()
		}
	}
	u2, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if u2 < 0xDC00 || u2 > 0xDFFF {
		return 0, invalidUnicode()
	}
	return utf16.DecodeRune(u1, u2), nil
}

// readHex4 reads exactly 4 hexadecimal digits and returns their value.
func (p *Parser) readHex4() (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		ch, eof, err := p.next()
		if err != nil {
			return 0, err
		} else if eof {
			return 0, earlyEOS()
		}
		d := hexDigit(ch)
		if d < 0 {
			return 0, invalidUnicode()
		}
		v = v<<4 | rune(d)
	}
	return v, nil
}

// parseNumber consumes a numeric literal whose first rune (a digit or
// minus sign) has already been read. The rune that terminates the literal
// is unread so that the enclosing production can consume it.
func (p *Parser) parseNumber(first rune) (Number, error) {
	sign := 1.0
	if first == '-' {
		ch, eof, err := p.next()
		if err != nil {
			return 0, err
		} else if eof {
			return 0, earlyEOS()
		} else if !isDigit(ch) {
			return 0, unexpected(ch)
		}
		sign, first = -1, ch
	}

	var mant float64
	var ch rune
	var eof bool
	var err error
	if first == '0' {
		// A leading zero stands alone: only a fraction, an exponent, or the
		// end of the literal may follow.
		ch, eof, err = p.next()
		if err != nil {
			return 0, err
		}
		if !eof && isDigit(ch) {
			return 0, &jot.SyntaxError{Kind: jot.LeadingZero}
		}
	} else {
		mant = float64(first - '0')
		for {
			ch, eof, err = p.next()
			if err != nil {
				return 0, err
			}
			if eof || !isDigit(ch) {
				break
			}
			mant = mant*10 + float64(ch-'0')
		}
	}
	if eof {
		return Number(sign * mant), nil
	}

	if ch == '.' {
		var frac, scale float64 = 0, 1
		for {
			ch, eof, err = p.next()
			if err != nil {
				return 0, err
			}
			if eof || !isDigit(ch) {
				break
			}
			frac = frac*10 + float64(ch-'0')
			scale *= 10
		}
		mant += frac / scale
		if eof {
			return Number(sign * mant), nil
		}
	}

	if ch == 'e' || ch == 'E' {
		ch, eof, err = p.next()
		if err != nil {
			return 0, err
		} else if eof {
			return 0, earlyEOS()
		}
		expSign := 1
		if ch == '+' || ch == '-' {
			if ch == '-' {
				expSign = -1
			}
			ch, eof, err = p.next()
			if err != nil {
				return 0, err
			} else if eof {
				return 0, earlyEOS()
			}
		}
		if !isDigit(ch) {
			return 0, unexpected(ch)
		}
		exp := 0
		for {
			exp = exp*10 + int(ch-'0')
			if exp > 100000 {
				exp = 100000 // anything this large already over- or underflows
			}
			ch, eof, err = p.next()
			if err != nil {
				return 0, err
			}
			if eof || !isDigit(ch) {
				break
			}
		}
		mant *= math.Pow(10, float64(expSign*exp))
		if eof {
			return Number(sign * mant), nil
		}
	}

	p.rd.Unread()
	return Number(sign * mant), nil
}

// next returns the next rune of the input; eof is true at end of input.
func (p *Parser) next() (ch rune, eof bool, err error) {
	ch, err = p.rd.Next()
	if err == io.EOF {
		return 0, true, nil
	} else if err != nil {
		return 0, false, err
	}
	return ch, false, nil
}

// skip discards whitespace and returns the next significant rune, or
// EarlyEndOfStream if the input is exhausted.
func (p *Parser) skip() (rune, error) {
	ch, err := p.rd.SkipSpace()
	if err == io.EOF {
		return 0, earlyEOS()
	} else if err != nil {
		return 0, err
	}
	return ch, nil
}

func earlyEOS() error { return &jot.SyntaxError{Kind: jot.EarlyEndOfStream} }

func unexpected(ch rune) error { return &jot.SyntaxError{Kind: jot.UnexpectedChar, Char: ch} }

func invalidUnicode() error { return &jot.SyntaxError{Kind: jot.InvalidUnicode} }

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func hexDigit(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}
