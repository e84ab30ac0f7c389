package calendar

import (
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"
)

const (
	// Width is the visible width of a grid line: 7 two-column cells and 6 separators.
	Width = DaysPerWeek*3 - 1

	lineSuffix = "  "
)

// Highlighter wraps the current day's cell text in reverse video.
type Highlighter struct {
	c colorstring.Colorize
}

// NewHighlighter returns a highlighter; a disabled one leaves text untouched.
func NewHighlighter(enabled bool) Highlighter {
	return Highlighter{c: colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !enabled,
		Reset:   true,
	}}
}

// Wrap returns text enclosed in ESC[7m ... ESC[0m.
func (h Highlighter) Wrap(text string) string {
	return h.c.Color("[invert]" + text)
}

// Center pads s with spaces to width, putting the odd space on the right.
func Center(s string, width int) string {
	total := width - uniseg.GraphemeClusterCount(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Render formats the header, the weekday row and six week rows of req.
func Render(req Request, h Highlighter) string {
	names := req.Locale.Names()
	grid := BuildGrid(req)

	var b strings.Builder
	writeLine(&b, Center(names.Title(req.Month, req.Year), Width))
	writeLine(&b, strings.Join(names.WeekDays, " "))
	cells := make([]string, DaysPerWeek)
	for w := 0; w < Weeks; w++ {
		for i, c := range grid.Week(w) {
			cells[i] = c.text()
			if c.Highlight {
				cells[i] = h.Wrap(cells[i])
			}
		}
		writeLine(&b, strings.Join(cells, " "))
	}
	return b.String()
}

func writeLine(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteString(lineSuffix)
	b.WriteByte('\n')
}
