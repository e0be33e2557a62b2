package main

import (
	"strings"
	"unicode/utf8"
)

// LineBuffer holds the document as an ordered list of lines. Columns are
// counted in runes, never bytes.
type LineBuffer struct {
	lines []string
}

func newLineBuffer(lines []string) *LineBuffer {
	b := &LineBuffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// Unicode utility functions for rune-aware string operations

// runeLen returns the number of runes in a string
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// runeSubstring extracts a substring by rune positions (start inclusive, end exclusive)
func runeSubstring(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	runes := []rune(s)
	if start >= len(runes) {
		return ""
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// runeInsert inserts a string at a specific rune position
func runeInsert(s string, pos int, insert string) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	insertRunes := []rune(insert)
	result := make([]rune, len(runes)+len(insertRunes))
	copy(result, runes[:pos])
	copy(result[pos:], insertRunes)
	copy(result[pos+len(insertRunes):], runes[pos:])
	return string(result)
}

// runeDelete deletes runes from start to end position (end exclusive)
func runeDelete(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return s
	}

	result := make([]rune, len(runes)-(end-start))
	copy(result, runes[:start])
	copy(result[start:], runes[end:])
	return string(result)
}

func (b *LineBuffer) lineCount() int {
	return len(b.lines)
}

// line returns the text of row, or "" when row does not exist.
func (b *LineBuffer) line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

func (b *LineBuffer) lineLen(row int) int {
	return runeLen(b.line(row))
}

// grow appends empty lines until the buffer has at least n lines.
func (b *LineBuffer) grow(n int) {
	for len(b.lines) < n {
		b.lines = append(b.lines, "")
	}
}

// insertChar places ch at (row, col). Missing rows are created and a short
// line is padded with spaces up to col first.
func (b *LineBuffer) insertChar(row, col int, ch rune) {
	if row < 0 || col < 0 {
		return
	}
	b.grow(row + 1)

	line := b.lines[row]
	if n := runeLen(line); n < col {
		line += strings.Repeat(" ", col-n)
	}
	b.lines[row] = runeInsert(line, col, string(ch))
}

// deleteChar removes the rune at (row, col). An empty line is removed
// entirely. Positions past the end are left alone.
func (b *LineBuffer) deleteChar(row, col int) {
	if row < 0 || row >= len(b.lines) || col < 0 {
		return
	}

	line := b.lines[row]
	if line == "" {
		b.removeLine(row)
		return
	}
	if col < runeLen(line) {
		b.lines[row] = runeDelete(line, col, col+1)
	}
}

// insertLine opens an empty line at row, shifting later lines down.
func (b *LineBuffer) insertLine(row int) {
	if row < 0 {
		return
	}
	b.grow(row)

	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = ""
}

func (b *LineBuffer) removeLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

// splitAt cuts line row at col. ok is false when col lies past the end of
// the line.
func (b *LineBuffer) splitAt(row, col int) (prefix, suffix string, ok bool) {
	line := b.lines[row]
	n := runeLen(line)
	if col < 0 || col > n {
		return "", "", false
	}
	return runeSubstring(line, 0, col), runeSubstring(line, col, n), true
}

// splitLineUpward moves the text right of col onto the end of the previous
// line.
func (b *LineBuffer) splitLineUpward(row, col int) {
	if row <= 0 || row >= len(b.lines) {
		return
	}
	prefix, suffix, ok := b.splitAt(row, col)
	if !ok {
		return
	}
	b.lines[row-1] += suffix
	b.lines[row] = prefix
}

// splitLineDownward moves the text right of col onto the end of the next
// line.
func (b *LineBuffer) splitLineDownward(row, col int) {
	if row < 0 || row >= len(b.lines)-1 {
		return
	}
	prefix, suffix, ok := b.splitAt(row, col)
	if !ok {
		return
	}
	b.lines[row+1] += suffix
	b.lines[row] = prefix
}

// renderSlice returns extent.Height rows of at most extent.Width runes each,
// starting at origin. Rows past the end of the document are blank.
func (b *LineBuffer) renderSlice(origin Pos, extent Size) []string {
	rows := make([]string, 0, max(extent.Height, 0))
	for i := 0; i < extent.Height; i++ {
		row := origin.Row + i
		if row >= len(b.lines) {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, runeSubstring(b.lines[row], origin.Col, origin.Col+extent.Width))
	}
	return rows
}

func (b *LineBuffer) serialize() string {
	return strings.Join(b.lines, "\n")
}
