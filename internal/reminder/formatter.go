package reminder

import (
	"strings"
)

// Section is one titled block of a reminder message.
type Section struct {
	Title string
	Lines []string
}

// RenderMessage assembles a message from a header, ordered sections and a
// footer. Empty sections are omitted; section order is the caller's, not
// the insertion order of the underlying records.
func RenderMessage(header string, sections []Section, footer string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, s := range sections {
		if len(s.Lines) == 0 {
			continue
		}
		b.WriteString(s.Title)
		b.WriteString("\n")
		for _, l := range s.Lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(footer)
	return b.String()
}

// wrapText breaks a string into lines of at most width runes. A width of
// zero or less disables wrapping.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(runes); i += width {
		if i > 0 {
			b.WriteString("\n")
		}
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[i:end]))
	}
	return b.String()
}

// renderTextTable renders a monospace table. Cells may contain newlines;
// a logical row then spans several physical lines.
func renderTextTable(head []string, rows [][]string) string {
	widths := make([]int, len(head))
	measure := func(cells []string) {
		for i, c := range cells {
			for _, line := range strings.Split(c, "\n") {
				if n := len([]rune(line)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	measure(head)
	for _, r := range rows {
		measure(r)
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		split := make([][]string, len(cells))
		height := 1
		for i, c := range cells {
			split[i] = strings.Split(c, "\n")
			if len(split[i]) > height {
				height = len(split[i])
			}
		}
		for ln := 0; ln < height; ln++ {
			for i := range cells {
				part := ""
				if ln < len(split[i]) {
					part = split[i][ln]
				}
				if i > 0 {
					b.WriteString("  ")
				}
				b.WriteString(padRight(part, widths[i]))
			}
			b.WriteString("\n")
		}
	}

	writeRow(head)
	sep := make([]string, len(head))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)
	for _, r := range rows {
		writeRow(r)
	}
	return strings.TrimRight(b.String(), " \n")
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
