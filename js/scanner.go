package js

import "github.com/arwyn/ecma"

// Context disambiguates the two constructs the scanner cannot resolve from
// the current code point alone: whether a leading / starts a regular
// expression or a divide operator, and whether a leading } resumes a
// template literal. The caller (a parser) is the authority on grammatical
// position, so Context travels as a per-call argument rather than scanner
// state.
type Context uint8

const (
	Expression Context = iota
	Div
	TemplateString
)

// Span is the result of one Next call: the token's kind, its code-point
// offsets into the source, whether a line terminator was consumed since the
// previous non-comment token, and the two orthogonal error channels. Err
// forces Kind to Error; StrictErr never does — it flags a legacy construct
// that only a strict-mode-aware parser can decide to reject.
type Span struct {
	Kind          Kind
	Start         int
	End           int
	NewlineBefore bool
	Err           ErrorKind
	StrictErr     StrictErrorKind
}

// Scanner turns a Cursor into a stream of Spans. It holds no language value
// beyond the current Span: it is single-use, not safe for concurrent use,
// and consumes its Cursor in place.
type Scanner struct {
	c    *ecma.Cursor
	span Span
}

// NewScanner wraps a Cursor. The scanner starts at the cursor's current position.
func NewScanner(c *ecma.Cursor) *Scanner {
	return &Scanner{c: c}
}

// NewFromString is a convenience constructor over ecma.NewCursorString.
func NewFromString(src string) *Scanner {
	return NewScanner(ecma.NewCursorString(src))
}

// NewFromRunes is a convenience constructor over ecma.NewCursor.
func NewFromRunes(src []rune) *Scanner {
	return NewScanner(ecma.NewCursor(src))
}

// Span returns the most recently produced token.
func (s *Scanner) Span() Span {
	return s.span
}

// Text renders the current Span's source text.
func (s *Scanner) Text() string {
	return string(s.c.Slice(s.span.Start, s.span.End))
}

// Next returns the next non-whitespace token, using ctx to resolve / and }.
// It skips whitespace internally; comments are surfaced so the caller can
// choose to forward or drop them, and NewlineBefore is preserved across a
// run of comments rather than reset at each one.
func (s *Scanner) Next(ctx Context) Kind {
	if s.span.Kind != Comment {
		s.span.NewlineBefore = false
	}
	s.span.Start = s.c.Pos()
	s.span.Err = NoError
	s.span.StrictErr = NoStrictError
	for {
		kind := s.start(ctx)
		if s.span.Err != NoError {
			kind = Error
		}
		if kind != Whitespace {
			s.span.End = s.c.Pos()
			s.span.Kind = kind
			return kind
		}
	}
}

func (s *Scanner) start(ctx Context) Kind {
	if !s.c.CanShift() {
		return End
	}
	first := s.c.Shift()
	if first < 128 {
		switch startTable[first] {
		case catPunctuator:
			return MatchPunctuator(s.c, first)
		case catWhitespace:
			return Whitespace
		case catNewline:
			s.consumeNewline(first)
			return Whitespace
		case catString:
			return s.scanString(first)
		case catIdentifier:
			return s.scanIdentifier(first)
		case catDot:
			if s.c.PeekRange('0', '9') {
				return s.scanDecimalFraction()
			}
			return MatchPunctuator(s.c, first)
		case catSlash:
			return s.scanSlash(ctx)
		case catZero:
			return s.scanZero()
		case catDigit:
			return s.scanDecimalNumber()
		case catBacktick:
			return s.scanTemplate(true)
		case catRightBrace:
			if ctx == TemplateString {
				return s.scanTemplate(false)
			}
			return MatchPunctuator(s.c, first)
		}
		s.span.Err = UnexpectedCharacter
		return Error
	}
	if isLineTerminator(first) {
		s.consumeNewline(first)
		return Whitespace
	}
	if isWhitespace(first) {
		return Whitespace
	}
	if isIdentifierStart(first) {
		return s.scanIdentifier(first)
	}
	s.span.Err = UnexpectedCharacter
	return Error
}

// consumeNewline folds a raw \r\n pair into one terminator and marks the
// upcoming non-comment token as preceded by a newline.
func (s *Scanner) consumeNewline(first rune) {
	if first == '\r' && s.c.Peek() == '\n' {
		s.c.Advance()
	}
	s.span.NewlineBefore = true
}

// scanString consumes a 'single' or "double" quoted string literal, delim
// being the opening quote already consumed by the caller.
func (s *Scanner) scanString(delim rune) Kind {
	for {
		if !s.c.CanShift() {
			s.span.Err = UnterminatedString
			return String
		}
		r := s.c.Shift()
		if r == delim {
			return String
		}
		if isLineTerminator(r) {
			s.span.Err = UnterminatedString
			return String
		}
		if r == '\\' {
			s.scanEscape(true, UnterminatedString)
			continue
		}
	}
}

// scanIdentifier consumes an identifier or reserved word. first has already
// been consumed and verified as a valid identifier start. Any Unicode
// escape within the identifier downgrades the result to Identifier
// unconditionally: keyword spellings are only recognized literally.
func (s *Scanner) scanIdentifier(first rune) Kind {
	text := []rune{first}
	escaped := false
	for {
		p := s.c.Peek()
		if p == '\\' {
			s.c.Advance()
			if s.c.Peek() != 'u' {
				s.span.Err = InvalidIdentifierEscape
				return Identifier
			}
			s.c.Advance()
			value, ok := s.scanUnicodeEscape()
			if !ok || !isIdentifierPart(value) {
				s.span.Err = InvalidIdentifierEscape
				return Identifier
			}
			escaped = true
			continue
		}
		if isIdentifierPart(p) {
			text = append(text, p)
			s.c.Advance()
			continue
		}
		break
	}
	if escaped {
		return Identifier
	}
	if kind, ok := MatchKeyword(string(text)); ok {
		return kind
	}
	return Identifier
}

// scanSlash resolves the three things a leading / can start: a line
// comment, a block comment, or (depending on ctx) a divide punctuator or a
// regular-expression literal.
func (s *Scanner) scanSlash(ctx Context) Kind {
	if s.c.Peek() == '/' {
		s.c.Advance()
		return s.scanLineComment()
	}
	if s.c.Peek() == '*' {
		s.c.Advance()
		return s.scanBlockComment()
	}
	if ctx == Div {
		return MatchPunctuator(s.c, '/')
	}
	return s.scanRegexp()
}

func (s *Scanner) scanLineComment() Kind {
	for s.c.CanShift() && !isLineTerminator(s.c.Peek()) {
		s.c.Advance()
	}
	return Comment
}

func (s *Scanner) scanBlockComment() Kind {
	for {
		if !s.c.CanShift() {
			s.span.Err = UnterminatedComment
			return Comment
		}
		r := s.c.Shift()
		if isLineTerminator(r) {
			if r == '\r' && s.c.Peek() == '\n' {
				s.c.Advance()
			}
			s.span.NewlineBefore = true
			continue
		}
		if r == '*' && s.c.Peek() == '/' {
			s.c.Advance()
			return Comment
		}
	}
}

// scanRegexp consumes a /pattern/flags literal. The opening / has already
// been consumed; backslash escapes and bracketed character classes both
// suppress the closing-slash test.
func (s *Scanner) scanRegexp() Kind {
	inClass := false
	for {
		if !s.c.CanShift() {
			s.span.Err = UnterminatedRegexp
			return Regexp
		}
		r := s.c.Shift()
		if isLineTerminator(r) {
			s.span.Err = UnterminatedRegexp
			return Regexp
		}
		if r == '\\' {
			if !s.c.CanShift() || isLineTerminator(s.c.Peek()) {
				s.span.Err = UnterminatedRegexp
				return Regexp
			}
			s.c.Advance()
			continue
		}
		if r == '[' {
			inClass = true
			continue
		}
		if r == ']' {
			inClass = false
			continue
		}
		if r == '/' && !inClass {
			break
		}
	}
	for isIdentifierPart(s.c.Peek()) {
		s.c.Advance()
	}
	return Regexp
}

// scanTemplate consumes one template fragment. initial is true when opened
// by the backtick that begins a template; false when opened by the } that
// resumes one after an interpolation. A failed escape inside a template
// does not fail the token; only running off the end of input does.
func (s *Scanner) scanTemplate(initial bool) Kind {
	for {
		if !s.c.CanShift() {
			s.span.Err = UnterminatedTemplate
			if initial {
				return TemplateBasic
			}
			return TemplateTail
		}
		r := s.c.Shift()
		if r == '`' {
			if initial {
				return TemplateBasic
			}
			return TemplateTail
		}
		if r == '$' && s.c.Peek() == '{' {
			s.c.Advance()
			if initial {
				return TemplateHead
			}
			return TemplateMiddle
		}
		if r == '\\' {
			s.scanEscape(false, UnterminatedTemplate)
			s.span.Err = NoError
			continue
		}
		if r == '\r' {
			if s.c.Peek() == '\n' {
				s.c.Advance()
			}
			s.span.NewlineBefore = true
			continue
		}
		if r == '\n' || r == '\u2028' || r == '\u2029' {
			s.span.NewlineBefore = true
			continue
		}
	}
}

// scanEscape consumes the code point(s) following a backslash already
// consumed by the caller. allowLegacyOctal gates the legacy octal escape
// forms, valid in strings but not in templates. eofErr is the error to
// record if input runs out before the escape is complete; template callers
// overwrite it immediately since EOF there is detected again at the
// enclosing loop's own CanShift check.
func (s *Scanner) scanEscape(allowLegacyOctal bool, eofErr ErrorKind) {
	if !s.c.CanShift() {
		s.span.Err = eofErr
		return
	}
	r := s.c.Shift()
	switch {
	case r == 't' || r == 'b' || r == 'v' || r == 'f' || r == 'r' || r == 'n':
		// control character escape, nothing further to validate.
	case r == '\r':
		if s.c.Peek() == '\n' {
			s.c.Advance()
		}
	case r == '\n' || r == '\u2028' || r == '\u2029':
		// line continuation, yields nothing.
	case r == '0':
		if allowLegacyOctal && s.c.PeekRange('0', '7') {
			s.consumeOctalDigits(2)
			s.span.StrictErr = LegacyOctalEscape
		}
	case r >= '1' && r <= '3':
		if allowLegacyOctal {
			s.consumeOctalDigits(2)
			s.span.StrictErr = LegacyOctalEscape
		}
	case r >= '4' && r <= '7':
		if allowLegacyOctal {
			s.consumeOctalDigits(1)
			s.span.StrictErr = LegacyOctalEscape
		}
	case r == 'x':
		if !s.consumeHexDigits(2) {
			s.span.Err = InvalidHexEscape
		}
	case r == 'u':
		if _, ok := s.scanUnicodeEscape(); !ok {
			s.span.Err = InvalidUnicodeEscape
		}
	}
}

func (s *Scanner) consumeOctalDigits(max int) {
	for i := 0; i < max && s.c.PeekRange('0', '7'); i++ {
		s.c.Advance()
	}
}

func (s *Scanner) consumeHexDigits(n int) bool {
	for i := 0; i < n; i++ {
		if !isHexDigit(s.c.Peek()) {
			return false
		}
		s.c.Advance()
	}
	return true
}

// scanUnicodeEscape consumes \u{1-6 hex digits} or \uXXXX — the intro \u
// has already been consumed by the caller — and returns the decoded code
// point. ok is false for malformed digit runs, a missing closing brace, or
// a brace-form value above 0x10FFFF.
func (s *Scanner) scanUnicodeEscape() (rune, bool) {
	if s.c.Peek() == '{' {
		s.c.Advance()
		var value rune
		digits := 0
		for digits < 6 && isHexDigit(s.c.Peek()) {
			value = value*16 + hexValue(s.c.Shift())
			digits++
		}
		if digits == 0 || s.c.Peek() != '}' || value > 0x10FFFF {
			return 0, false
		}
		s.c.Advance()
		return value, true
	}
	var value rune
	for i := 0; i < 4; i++ {
		if !isHexDigit(s.c.Peek()) {
			return 0, false
		}
		value = value*16 + hexValue(s.c.Shift())
	}
	return value, true
}

// scanZero dispatches the four forms a number beginning with 0 can take:
// hex, binary, octal (all prefixed), legacy octal (unprefixed, [0-7]
// following directly), or plain decimal when none of those match — the
// ordinary fallthrough for "0", "0.5", "0e9", and "08"/"09".
func (s *Scanner) scanZero() Kind {
	switch s.c.Peek() {
	case 'x', 'X':
		s.c.Advance()
		return s.scanRadixNumber(isHexDigit, InvalidHexLiteral)
	case 'b', 'B':
		s.c.Advance()
		return s.scanRadixNumber(isBinaryDigit, InvalidBinaryLiteral)
	case 'o', 'O':
		s.c.Advance()
		return s.scanRadixNumber(isOctalDigit, InvalidOctalLiteral)
	}
	if s.c.PeekRange('0', '7') {
		return s.scanLegacyOctalNumber()
	}
	return s.scanDecimalNumber()
}

func (s *Scanner) scanRadixNumber(isDigit func(rune) bool, errKind ErrorKind) Kind {
	if !isDigit(s.c.Peek()) {
		s.span.Err = errKind
		return Number
	}
	for isDigit(s.c.Peek()) {
		s.c.Advance()
	}
	return s.numberSuffixCheck()
}

func (s *Scanner) scanLegacyOctalNumber() Kind {
	for s.c.PeekRange('0', '7') {
		s.c.Advance()
	}
	s.span.StrictErr = LegacyOctalNumber
	return s.numberSuffixCheck()
}

// scanDecimalNumber consumes an integer part (possibly already started by
// the caller's leading digit), an optional fractional part, and an optional
// exponent.
func (s *Scanner) scanDecimalNumber() Kind {
	for s.c.PeekRange('0', '9') {
		s.c.Advance()
	}
	if s.c.Peek() == '.' {
		s.c.Advance()
		for s.c.PeekRange('0', '9') {
			s.c.Advance()
		}
	}
	s.scanExponent()
	return s.numberSuffixCheck()
}

// scanDecimalFraction consumes a number that opened with '.', the dot
// already consumed by the caller after confirming a digit follows.
func (s *Scanner) scanDecimalFraction() Kind {
	for s.c.PeekRange('0', '9') {
		s.c.Advance()
	}
	s.scanExponent()
	return s.numberSuffixCheck()
}

func (s *Scanner) scanExponent() {
	if s.c.Peek() != 'e' && s.c.Peek() != 'E' {
		return
	}
	s.c.Advance()
	if s.c.Peek() == '+' || s.c.Peek() == '-' {
		s.c.Advance()
	}
	if !s.c.PeekRange('0', '9') {
		s.span.Err = MissingExponent
		return
	}
	for s.c.PeekRange('0', '9') {
		s.c.Advance()
	}
}

// numberSuffixCheck rejects an identifier-start code point directly
// following a numeric literal (3in, 0x1z), and consumes-but-does-not-flag
// the bigint suffix n (see DESIGN.md for why Span carries no BigInt field).
func (s *Scanner) numberSuffixCheck() Kind {
	p := s.c.Peek()
	if p == 'n' {
		s.c.Advance()
		return Number
	}
	if p < 128 {
		if startTable[p] == catIdentifier {
			s.span.Err = InvalidNumberSuffix
		}
		return Number
	}
	if isIdentifierStart(p) {
		s.span.Err = InvalidNumberSuffix
	}
	return Number
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}
