package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore"
	out := SanitizeOneLine(input)

	assert.Equal(t, "click line more", out)
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	out := SanitizeText("safe\u202eexe.txt")
	assert.Equal(t, "safeexe.txt", out)
}

func TestSanitizeTextKeepsNewlinesAndTabs(t *testing.T) {
	out := SanitizeText("a\x1b[31mred\x1b[0m\nb\tc\x00")
	assert.Equal(t, "ared\nb\tc", out)
}

func TestSanitizeEmpty(t *testing.T) {
	assert.Equal(t, "", SanitizeText(""))
	assert.Equal(t, "", SanitizeOneLine(""))
}
