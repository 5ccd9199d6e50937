package js

import "github.com/arwyn/ecma"

// MatchPunctuator resolves the longest punctuator token starting at first,
// consuming whatever additional code points from c the match requires. It
// is an incremental max-munch cascade rather than a literal trie walk:
// Go's switch over a handful of two- and three-character operators compiles
// to the same decision tree a trie would, without the bookkeeping of
// building one. first has already been consumed from c by the caller.
func MatchPunctuator(c *ecma.Cursor, first rune) Kind {
	switch first {
	case '{':
		return OpenBrace
	case '}':
		return CloseBrace
	case '(':
		return OpenParen
	case ')':
		return CloseParen
	case '[':
		return OpenBracket
	case ']':
		return CloseBracket
	case ';':
		return Semicolon
	case ':':
		return Colon
	case ',':
		return Comma
	case '?':
		return Question
	case '~':
		if c.Peek() == '=' {
			c.Advance()
			return TildeEq
		}
		return Tilde
	case '!':
		if c.Peek() == '=' {
			c.Advance()
			if c.Peek() == '=' {
				c.Advance()
				return NotEqEq
			}
			return NotEq
		}
		return Not
	case '.':
		if c.Peek() == '.' && c.PeekAt(1) == '.' {
			c.Advance()
			c.Advance()
			return Ellipsis
		}
		return Dot
	case '&':
		if c.Peek() == '=' {
			c.Advance()
			return BitAndEq
		}
		if c.Peek() == '&' {
			c.Advance()
			return And
		}
		return BitAnd
	case '|':
		if c.Peek() == '=' {
			c.Advance()
			return BitOrEq
		}
		if c.Peek() == '|' {
			c.Advance()
			return Or
		}
		return BitOr
	case '^':
		if c.Peek() == '=' {
			c.Advance()
			return BitXorEq
		}
		return BitXor
	case '<':
		if c.Peek() == '=' {
			c.Advance()
			return LtEq
		}
		if c.Peek() == '<' {
			c.Advance()
			if c.Peek() == '=' {
				c.Advance()
				return LeftShiftEq
			}
			if c.Peek() == '<' {
				c.Advance()
				if c.Peek() == '=' {
					c.Advance()
					return LeftShiftZeroEq
				}
				return LeftShiftZero
			}
			return LeftShift
		}
		return Lt
	case '+':
		if c.Peek() == '=' {
			c.Advance()
			return PlusEq
		}
		if c.Peek() == '+' {
			c.Advance()
			return Increment
		}
		return Plus
	case '-':
		if c.Peek() == '=' {
			c.Advance()
			return MinusEq
		}
		if c.Peek() == '-' {
			c.Advance()
			return Decrement
		}
		return Minus
	case '*':
		if c.Peek() == '=' {
			c.Advance()
			return StarEq
		}
		if c.Peek() == '*' {
			c.Advance()
			if c.Peek() == '=' {
				c.Advance()
				return StarStarEq
			}
			return StarStar
		}
		return Star
	case '/':
		if c.Peek() == '=' {
			c.Advance()
			return SlashEq
		}
		return Slash
	case '%':
		if c.Peek() == '=' {
			c.Advance()
			return PercentEq
		}
		return Percent
	case '>':
		if c.Peek() == '=' {
			c.Advance()
			return GtEq
		}
		if c.Peek() == '>' {
			c.Advance()
			if c.Peek() == '=' {
				c.Advance()
				return RightShiftEq
			}
			if c.Peek() == '>' {
				c.Advance()
				if c.Peek() == '=' {
					c.Advance()
					return RightShiftZeroEq
				}
				return RightShiftZero
			}
			return RightShift
		}
		return Gt
	case '=':
		if c.Peek() == '=' {
			c.Advance()
			if c.Peek() == '=' {
				c.Advance()
				return EqEqEq
			}
			return Eq
		}
		if c.Peek() == '>' {
			c.Advance()
			return Arrow
		}
		return Assign
	}
	return Error
}

// MatchKeyword looks up a fully consumed identifier's text against the
// reserved-word table. ok is false for any spelling that is not a reserved
// word at all, in which case the caller treats the token as an Identifier.
func MatchKeyword(text string) (kind Kind, ok bool) {
	kind, ok = Keywords[text]
	return kind, ok
}
