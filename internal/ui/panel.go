package ui

import (
	"fmt"
	"regexp"
	"strings"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// ProgressBar renders a Unicode progress bar with percentage, used for
// the share of books read.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Frame lays out lines as a framed box using the current theme. A
// non-empty footer, like a "2/5 read" tally under a listing, is worked
// into the bottom border when it fits.
func Frame(footer string, lines []string) []string {
	t := Current()
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		w := len(stripANSI(ln))
		if w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		vis := len(stripANSI(s))
		if vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		out = append(out, t.V+" "+pad(ln)+" "+t.V)
	}

	bottom := strings.Repeat(t.H, maxw+2)
	if footer != "" {
		// H is one cell wide whatever its byte length.
		rest := maxw + 2 - (3 + len(stripANSI(footer)))
		if rest >= 0 {
			bottom = t.H + " " + footer + " " + strings.Repeat(t.H, rest)
		}
	}
	out = append(out, t.CornerBL+bottom+t.CornerBR)
	return out
}

// Panel draws a framed box.
func Panel(lines []string) { printLines(Frame("", lines)) }

// PanelWith draws a framed box with a footer tally in the bottom border.
func PanelWith(footer string, lines []string) { printLines(Frame(footer, lines)) }

func printLines(lines []string) {
	for _, ln := range lines {
		fmt.Println(ln)
	}
}
