package selector

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WordWrap breaks text into lines no wider than width terminal cells,
// measured with runewidth so emoji and CJK count double. Explicit newlines
// in the text are preserved as line breaks.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for _, word := range strings.Fields(paragraph) {
			w := runewidth.StringWidth(word)
			switch {
			case curWidth == 0:
				cur.WriteString(word)
				curWidth = w
			case curWidth+1+w <= width:
				cur.WriteByte(' ')
				cur.WriteString(word)
				curWidth += 1 + w
			default:
				lines = append(lines, cur.String())
				cur.Reset()
				cur.WriteString(word)
				curWidth = w
			}
		}
		lines = append(lines, cur.String())
	}
	return lines
}
