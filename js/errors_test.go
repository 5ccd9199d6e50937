package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestErrorKindString(t *testing.T) {
	test.T(t, NoError.String(), "")
	test.T(t, UnexpectedCharacter.String(), "unexpected character")
	test.T(t, UnterminatedTemplate.String(), "unterminated template")
	test.T(t, InvalidNumberSuffix.String(), "invalid number suffix")
	test.T(t, ErrorKind(999).String(), "unknown error")
}

func TestStrictErrorKindString(t *testing.T) {
	test.T(t, NoStrictError.String(), "")
	test.T(t, LegacyOctalEscape.String(), "legacy octal escape")
	test.T(t, LegacyOctalNumber.String(), "legacy octal number")
	test.T(t, StrictErrorKind(999).String(), "unknown strict error")
}
