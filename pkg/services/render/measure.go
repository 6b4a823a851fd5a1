package render

import "strings"

// Measurer wraps text to a target width for a given font size. The renderer
// only needs wrapped line counts and the lines themselves; keeping the
// measurement behind an interface lets the page-break logic be tested with
// deterministic wrap widths.
type Measurer interface {
	WrapText(text string, size float64, width float64) []string
}

// charMeasurer approximates glyph advance as a fixed fraction of the font
// size. That is accurate enough for wrapping a report set in a single
// regular face; the PDF encoder draws the pre-wrapped lines as-is.
type charMeasurer struct {
	advance float64
}

func NewMeasurer() Measurer {
	return charMeasurer{advance: 0.5}
}

func (m charMeasurer) WrapText(text string, size float64, width float64) []string {
	if text == "" {
		return []string{""}
	}

	charWidth := size * m.advance
	maxChars := int(width / charWidth)
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxChars)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxChars int) []string {
	if paragraph == "" {
		return []string{""}
	}

	var lines []string
	var current string
	var currentLen int
	for _, word := range strings.Fields(paragraph) {
		// The width model is per character, so all accounting is in runes;
		// slicing by byte would cut multibyte characters apart.
		runes := []rune(word)
		// Break words that cannot fit on a line by themselves.
		for len(runes) > maxChars {
			if current != "" {
				lines = append(lines, current)
				current = ""
				currentLen = 0
			}
			lines = append(lines, string(runes[:maxChars]))
			runes = runes[maxChars:]
		}
		switch {
		case current == "":
			current = string(runes)
			currentLen = len(runes)
		case currentLen+1+len(runes) <= maxChars:
			current += " " + string(runes)
			currentLen += 1 + len(runes)
		default:
			lines = append(lines, current)
			current = string(runes)
			currentLen = len(runes)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
