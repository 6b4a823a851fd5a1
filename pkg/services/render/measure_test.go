package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCharMeasurer_WrapsAtWordBoundaries(t *testing.T) {
	m := NewMeasurer()

	// size 10 * advance 0.5 = 5pt per char; width 100pt = 20 chars per line.
	lines := m.WrapText("aaaa bbbb cccc dddd eeee", 10, 100)

	assert.Equal(t, []string{"aaaa bbbb cccc dddd", "eeee"}, lines)
}

func TestCharMeasurer_BreaksOverlongWords(t *testing.T) {
	m := NewMeasurer()

	word := strings.Repeat("x", 45)
	lines := m.WrapText(word, 10, 100)

	assert.Equal(t, []string{
		strings.Repeat("x", 20),
		strings.Repeat("x", 20),
		strings.Repeat("x", 5),
	}, lines)
}

func TestCharMeasurer_BreaksOverlongWordsOnRuneBoundaries(t *testing.T) {
	m := NewMeasurer()

	// 40 runes, two bytes each; a byte-indexed break would cut an é in half.
	word := strings.Repeat("aé", 20)
	lines := m.WrapText(word, 10, 100)

	assert.Equal(t, []string{
		strings.Repeat("aé", 10),
		strings.Repeat("aé", 10),
	}, lines)
	for _, line := range lines {
		assert.True(t, utf8.ValidString(line))
	}
}

func TestCharMeasurer_FillsLinesByRuneCount(t *testing.T) {
	m := NewMeasurer()

	// 18 runes (22 bytes): fits one 20-char line only when counted in runes.
	lines := m.WrapText("sécurité contrôlée", 10, 100)

	assert.Equal(t, []string{"sécurité contrôlée"}, lines)
}

func TestCharMeasurer_PreservesParagraphs(t *testing.T) {
	m := NewMeasurer()

	lines := m.WrapText("first paragraph\nsecond paragraph", 10, 200)

	assert.Equal(t, []string{"first paragraph", "second paragraph"}, lines)
}

func TestCharMeasurer_EmptyTextYieldsOneBlankLine(t *testing.T) {
	m := NewMeasurer()

	assert.Equal(t, []string{""}, m.WrapText("", 10, 100))
	assert.Equal(t, []string{"", ""}, m.WrapText("\n", 10, 100))
}
