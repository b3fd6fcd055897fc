package lexer

import (
	"dlint/internal/diag"
	"dlint/internal/token"
)

// scanNumber scans 0, 123, 0b..., 0x..., 1.0, 1e-3, 1.0e+10, with '_'
// separators. Literal suffixes (u, U, L, f, F, i and combinations) are
// consumed into Token.Text; Kind stays IntLit/FloatLit by shape.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// leading dot means ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		lx.eatDigitsAndUnderscores(isDec)
		lx.eatExponent(&kind)
		return lx.finishNumber(start, kind)
	}

	// leading 0 with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.eatDigitsAndUnderscores(func(b byte) bool { return b == '0' || b == '1' }) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected binary digit")
			}
			return lx.finishNumber(start, kind)
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.eatDigitsAndUnderscores(isHex) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit")
			}
			return lx.finishNumber(start, kind)
		}
		// plain decimal starting with 0; fall through
	}

	lx.eatDigitsAndUnderscores(isDec)

	// fraction: '.' followed by a digit (not '..' and not a member access)
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.eatDigitsAndUnderscores(isDec)
	}

	lx.eatExponent(&kind)
	return lx.finishNumber(start, kind)
}

// eatDigitsAndUnderscores consumes digits accepted by ok plus '_'.
// Reports whether at least one digit was consumed.
func (lx *Lexer) eatDigitsAndUnderscores(ok func(byte) bool) bool {
	any := false
	for {
		b := lx.cursor.Peek()
		if ok(b) {
			any = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		return any
	}
}

// eatExponent consumes [eE][+-]?digits if present and upgrades kind to float.
func (lx *Lexer) eatExponent(kind *token.Kind) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || (b0 != 'e' && b0 != 'E') {
		return
	}
	if !isDec(b1) && b1 != '+' && b1 != '-' {
		return
	}
	lx.cursor.Bump() // e/E
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	*kind = token.FloatLit
	lx.eatDigitsAndUnderscores(isDec)
}

// finishNumber consumes any literal suffix letters and emits the token.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	for {
		b := lx.cursor.Peek()
		if b == 'u' || b == 'U' || b == 'L' || b == 'f' || b == 'F' || b == 'i' {
			if b == 'f' || b == 'F' {
				kind = token.FloatLit
			}
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
