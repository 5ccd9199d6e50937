package js

import (
	"testing"

	"github.com/arwyn/ecma"
	"github.com/stretchr/testify/assert"
)

func matchPunc(t *testing.T, spelling string) Kind {
	c := ecma.NewCursorString(spelling)
	first := c.Shift()
	return MatchPunctuator(c, first)
}

func TestMatchPunctuatorRoundTrip(t *testing.T) {
	spellings := map[string]Kind{
		"{": OpenBrace, "}": CloseBrace, "(": OpenParen, ")": CloseParen,
		"[": OpenBracket, "]": CloseBracket, ";": Semicolon, ":": Colon,
		",": Comma, "?": Question, "~": Tilde, "!": Not, ".": Dot, "...": Ellipsis,
		"&": BitAnd, "&=": BitAndEq, "&&": And,
		"|": BitOr, "|=": BitOrEq, "||": Or,
		"^": BitXor, "^=": BitXorEq,
		"<<": LeftShift, "<<=": LeftShiftEq, "<<<": LeftShiftZero, "<<<=": LeftShiftZeroEq,
		"+": Plus, "+=": PlusEq, "++": Increment,
		"-": Minus, "-=": MinusEq, "--": Decrement,
		"*": Star, "*=": StarEq, "**": StarStar, "**=": StarStarEq,
		"/": Slash, "/=": SlashEq,
		"%": Percent, "%=": PercentEq,
		"<": Lt, "<=": LtEq,
		">": Gt, ">=": GtEq, ">>": RightShift, ">>=": RightShiftEq, ">>>": RightShiftZero, ">>>=": RightShiftZeroEq,
		"=": Assign, "==": Eq, "===": EqEqEq, "!=": NotEq, "!==": NotEqEq,
		"=>": Arrow, "~=": TildeEq,
	}
	for spelling, want := range spellings {
		got := matchPunc(t, spelling)
		assert.Equal(t, want, got, "spelling %q", spelling)
	}
}

func TestMatchPunctuatorMaxMunch(t *testing.T) {
	// A prefix-overlapping pair must resolve to the longer kind, never the
	// shorter kind followed by leftover input.
	c := ecma.NewCursorString(">>>=")
	first := c.Shift()
	got := MatchPunctuator(c, first)
	assert.Equal(t, RightShiftZeroEq, got)
	assert.False(t, c.CanShift(), "max-munch must consume the entire spelling")
}

func TestMatchKeyword(t *testing.T) {
	kind, ok := MatchKeyword("if")
	assert.True(t, ok)
	assert.Equal(t, If, kind)

	kind, ok = MatchKeyword("yield")
	assert.True(t, ok)
	assert.Equal(t, Yield, kind)
	assert.True(t, IsStrictReservedWord(kind))

	kind, ok = MatchKeyword("async")
	assert.True(t, ok)
	assert.True(t, IsContextualKeyword(kind))

	_, ok = MatchKeyword("iffy")
	assert.False(t, ok)
}
