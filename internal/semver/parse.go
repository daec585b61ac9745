package semver

import (
	"fmt"
	"strconv"

	"github.com/sol-lang/solc/internal/source"
)

// ParseError reports a malformed version requirement string. The caller
// (the parser, when it meets a version pragma) turns this into a
// SynPragmaVersionMalformed diagnostic anchored at Span.
type ParseError struct {
	Span source.Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Msg, e.Span)
}

// Parse parses a version pragma requirement body, e.g. "^0.8.0",
// ">=0.7.0 <0.9.0", "0.8.0 - 0.8.4 || ^0.5.0". base is the global source
// offset of s[0], used to anchor the spans recorded on the returned Req.
func Parse(s string, base uint32) (Req, error) {
	p := &parser{src: s, base: base}
	p.skipSpace()
	if p.atEnd() {
		return Req{}, p.errorf(p.pos, p.pos, "empty version requirement")
	}

	var dis []Con
	for {
		con, err := p.parseCon()
		if err != nil {
			return Req{}, err
		}
		dis = append(dis, con)
		p.skipSpace()
		if p.eatLiteral("||") {
			p.skipSpace()
			continue
		}
		break
	}

	if !p.atEnd() {
		return Req{}, p.errorf(p.pos, len(p.src), "unexpected trailing input %q", p.src[p.pos:])
	}
	return Req{Dis: dis}, nil
}

type parser struct {
	src  string
	base uint32
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) span(start, end int) source.Span {
	return source.Span{Lo: p.base + uint32(start), Hi: p.base + uint32(end)}
}

func (p *parser) errorf(start, end int, format string, args ...any) *ParseError {
	return &ParseError{Span: p.span(start, end), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() int {
	start := p.pos
	for !p.atEnd() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) eatLiteral(lit string) bool {
	if p.pos+len(lit) > len(p.src) {
		return false
	}
	if p.src[p.pos:p.pos+len(lit)] != lit {
		return false
	}
	p.pos += len(lit)
	return true
}

func (p *parser) peekLiteral(lit string) bool {
	return p.pos+len(lit) <= len(p.src) && p.src[p.pos:p.pos+len(lit)] == lit
}

// parseCon parses a whitespace-separated and-ed list of components,
// stopping before a "||" or the end of input.
func (p *parser) parseCon() (Con, error) {
	start := p.pos
	var comps []Component
	for {
		comp, err := p.parseComponent()
		if err != nil {
			return Con{}, err
		}
		comps = append(comps, comp)

		save := p.pos
		spaces := p.skipSpace()
		if p.atEnd() || p.peekLiteral("||") {
			p.pos = save
			break
		}
		if spaces == 0 {
			return Con{}, p.errorf(p.pos, p.pos, "expected whitespace or '||' after %q", p.src[start:p.pos])
		}
	}
	return Con{Span: p.span(start, p.pos), Components: comps}, nil
}

// parseComponent parses either a "lo - hi" range or an "[op]version" term.
func (p *parser) parseComponent() (Component, error) {
	start := p.pos
	op, hasOp := p.parseOp()
	lo, err := p.parseVersion()
	if err != nil {
		return Component{}, err
	}

	if !hasOp {
		afterLo := p.pos
		if p.skipSpace() > 0 && p.peekByte() == '-' {
			p.pos++
			if p.skipSpace() > 0 {
				if hi, err := p.parseVersion(); err == nil {
					return Component{
						Span: p.span(start, p.pos),
						Kind: ComponentKind{Range: true, Lo: lo, Hi: hi},
					}, nil
				}
			}
		}
		p.pos = afterLo
	}

	return Component{
		Span: p.span(start, p.pos),
		Kind: ComponentKind{HasOp: hasOp, Op: op, Lo: lo},
	}, nil
}

func (p *parser) parseOp() (Op, bool) {
	switch {
	case p.eatLiteral(">="):
		return OpGreaterEq, true
	case p.eatLiteral("<="):
		return OpLessEq, true
	case p.eatLiteral("^"):
		return OpCaret, true
	case p.eatLiteral("~"):
		return OpTilde, true
	case p.eatLiteral(">"):
		return OpGreater, true
	case p.eatLiteral("<"):
		return OpLess, true
	case p.eatLiteral("="):
		return OpExact, true
	default:
		return OpExact, false
	}
}

func (p *parser) parseVersion() (Version, error) {
	start := p.pos
	major, err := p.parseNumberPart()
	if err != nil {
		return Version{}, err
	}
	v := Version{Major: major}

	if p.peekByte() == '.' {
		p.pos++
		minor, err := p.parseNumberPart()
		if err != nil {
			return Version{}, err
		}
		v.Minor, v.HasMinor = minor, true

		if p.peekByte() == '.' {
			p.pos++
			patch, err := p.parseNumberPart()
			if err != nil {
				return Version{}, err
			}
			v.Patch, v.HasPatch = patch, true
		}
	}

	v.Span = p.span(start, p.pos)
	return v, nil
}

func (p *parser) parseNumberPart() (Number, error) {
	switch p.peekByte() {
	case 'x', 'X', '*':
		p.pos++
		return Wildcard, nil
	}

	start := p.pos
	for !p.atEnd() && isASCIIDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf(start, start, "expected a version number")
	}

	n, convErr := strconv.ParseUint(p.src[start:p.pos], 10, 32)
	if convErr != nil {
		return 0, p.errorf(start, p.pos, "version number %q out of range", p.src[start:p.pos])
	}
	return Number(n), nil
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
