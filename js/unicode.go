package js

import "unicode"

// identifierStart and identifierContinue are the Unicode category tables
// admissible in identifiers, per ECMAScript's ID_Start/ID_Continue-derived
// grammar productions. Go's unicode package already stores each category as
// sorted, binary-searched range tables, which is exactly the opaque sorted
// span table this scanner treats as an external collaborator: it never
// builds or walks Unicode category data of its own.
var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// isWhitespace reports whether r is ECMAScript WhiteSpace: Zs plus the
// control whitespace characters and the byte-order mark.
func isWhitespace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\v' || r == '\f'
	}
	return r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r)
}

// isLineTerminator reports whether r is one of the four ECMAScript line
// terminators. \r\n counts as a single terminator; callers consume the
// optional following \n themselves.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isIdentifierStart reports whether r may begin an identifier. ASCII code
// points short-circuit to [A-Za-z_$]; non-ASCII code points fall through to
// the Unicode ID_Start-derived table.
func isIdentifierStart(r rune) bool {
	if r < 0x80 {
		return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.IsOneOf(identifierStart, r)
}

// isIdentifierPart reports whether r may continue an identifier begun by
// isIdentifierStart. ASCII code points short-circuit to [A-Za-z0-9_$]; it
// also admits the zero-width non-joiner/joiner, which ECMAScript allows in
// identifiers despite their Unicode category.
func isIdentifierPart(r rune) bool {
	if r < 0x80 {
		return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	return r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r)
}
