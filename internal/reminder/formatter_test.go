package reminder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMessage(t *testing.T) {
	body := RenderMessage("Header:",
		[]Section{
			{Title: "First", Lines: []string{" - a", " - b"}},
			{Title: "Skipped", Lines: nil},
			{Title: "Second", Lines: []string{" - c"}},
		},
		"footer",
	)

	require.Equal(t, "Header:\n\nFirst\n - a\n - b\n\nSecond\n - c\n\nfooter", body)
}

func TestRenderMessage_SectionOrderIsCallerOrder(t *testing.T) {
	body := RenderMessage("H",
		[]Section{
			{Title: "Later", Lines: []string{"x"}},
			{Title: "Earlier", Lines: []string{"y"}},
		},
		"",
	)
	assert.Less(t, strings.Index(body, "Later"), strings.Index(body, "Earlier"))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdef", 0, "abcdef"},
		{"abcdef", 10, "abcdef"},
		{"abcdef", 3, "abc\ndef"},
		{"abcdefg", 3, "abc\ndef\ng"},
		{"Иванов", 3, "Ива\nнов"}, // rune-wise, not byte-wise
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, wrapText(tc.in, tc.width), "wrapText(%q, %d)", tc.in, tc.width)
	}
}

func TestRenderTextTable(t *testing.T) {
	out := renderTextTable(
		[]string{"Категория", "ФИО", "Дата"},
		[][]string{
			{"Сегодня", "Иванов Иван", "07.06"},
			{"Завтра", "Петров\nПетр", "08.06"},
		},
	)

	lines := strings.Split(out, "\n")
	// head + separator + first row + two physical lines of the second row
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Категория")
	assert.Contains(t, lines[2], "Иванов Иван")
	assert.Contains(t, lines[3], "Петров")
	assert.Contains(t, lines[4], "Петр")
	// Birthday column of the wrapped row stays on its first physical line.
	assert.Contains(t, lines[3], "08.06")
	assert.NotContains(t, lines[4], "08.06")
}
