package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartTable(t *testing.T) {
	assert.Equal(t, catWhitespace, startTable[' '])
	assert.Equal(t, catNewline, startTable['\n'])
	assert.Equal(t, catNewline, startTable['\r'])
	assert.Equal(t, catString, startTable['\''])
	assert.Equal(t, catString, startTable['"'])
	assert.Equal(t, catIdentifier, startTable['a'])
	assert.Equal(t, catIdentifier, startTable['Z'])
	assert.Equal(t, catIdentifier, startTable['_'])
	assert.Equal(t, catIdentifier, startTable['$'])
	assert.Equal(t, catDot, startTable['.'])
	assert.Equal(t, catSlash, startTable['/'])
	assert.Equal(t, catZero, startTable['0'])
	assert.Equal(t, catDigit, startTable['5'])
	assert.Equal(t, catBacktick, startTable['`'])
	assert.Equal(t, catRightBrace, startTable['}'])
	assert.Equal(t, catPunctuator, startTable['{'])
	assert.Equal(t, catPunctuator, startTable['|'])
	assert.Equal(t, catPunctuator, startTable['+'])
	assert.Equal(t, catError, startTable['@'])
	assert.Equal(t, catError, startTable['#'])
	assert.Equal(t, catError, startTable['\\'])
}
