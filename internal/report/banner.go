package report

import (
	"fmt"
	"io"
	"strings"
)

// Box-drawing pieces for banner frames.
const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

const (
	bannerMinWidth     = 40
	bannerMaxWidth     = 120
	bannerDefaultWidth = 60
	bannerPadding      = 3
)

// printBanner draws a framed, word-wrapped message with a centered title.
// The style function is applied per line so the frame and text share one color.
func printBanner(w io.Writer, message, title string, style func(string) string) {
	width := bannerDefaultWidth
	if width < bannerMinWidth {
		width = bannerMinWidth
	}
	if width > bannerMaxWidth {
		width = bannerMaxWidth
	}

	innerWidth := width - 2
	contentWidth := innerWidth - bannerPadding*2

	titleText := " " + title + " "
	leftLen := (innerWidth - len(titleText)) / 2
	rightLen := innerWidth - len(titleText) - leftLen
	titleLine := boxTopLeft + strings.Repeat(boxHorizontal, leftLen) +
		titleText + strings.Repeat(boxHorizontal, rightLen) + boxTopRight

	var lines []string
	for _, para := range strings.Split(message, "\n") {
		lines = append(lines, wrapText(para, contentWidth)...)
	}

	pad := strings.Repeat(" ", bannerPadding)
	fmt.Fprintln(w, style(titleLine))
	for _, line := range lines {
		if len(line) > contentWidth {
			line = line[:contentWidth]
		}
		text := line + strings.Repeat(" ", contentWidth-len(line))
		fmt.Fprintln(w, style(boxVertical+pad+text+pad+boxVertical))
	}
	fmt.Fprintln(w, style(boxBottomLeft+strings.Repeat(boxHorizontal, innerWidth)+boxBottomRight))
}

// wrapText greedily wraps a paragraph at word boundaries. Words longer than
// the width are emitted on their own overlong line rather than split.
// An empty paragraph yields a single empty line so blank lines survive.
func wrapText(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
