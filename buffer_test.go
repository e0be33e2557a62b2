package main

import (
	"slices"
	"testing"
)

// TestUnicodeTextOperations tests the rune-aware string functions
func TestUnicodeTextOperations(t *testing.T) {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{"RuneLen", testRuneLen},
		{"RuneSubstring", testRuneSubstring},
		{"RuneInsert", testRuneInsert},
		{"RuneDelete", testRuneDelete},
	}

	for _, test := range tests {
		t.Run(test.name, test.test)
	}
}

func testRuneLen(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},  // é is one rune
		{"こんにちは", 5},  // Japanese characters
		{"a\tb", 3},   // Tab is a single rune
	}

	for _, tc := range testCases {
		result := runeLen(tc.input)
		if result != tc.expected {
			t.Errorf("runeLen(%q) = %d, want %d", tc.input, result, tc.expected)
		}
	}
}

func testRuneSubstring(t *testing.T) {
	testCases := []struct {
		input    string
		start    int
		end      int
		expected string
	}{
		{"hello", 0, 5, "hello"},
		{"hello", 1, 4, "ell"},
		{"héllo", 1, 2, "é"},
		{"こんにちは", 2, 5, "にちは"},
		{"hello", -1, 3, "hel"}, // Negative start
		{"hello", 2, 10, "llo"}, // End beyond length
		{"hello", 3, 2, ""},     // End before start
		{"hello", 9, 12, ""},    // Start beyond length
		{"", 0, 1, ""},
	}

	for _, tc := range testCases {
		result := runeSubstring(tc.input, tc.start, tc.end)
		if result != tc.expected {
			t.Errorf("runeSubstring(%q, %d, %d) = %q, want %q", tc.input, tc.start, tc.end, result, tc.expected)
		}
	}
}

func testRuneInsert(t *testing.T) {
	testCases := []struct {
		input    string
		pos      int
		insert   string
		expected string
	}{
		{"hello", 0, "X", "Xhello"},
		{"hello", 5, "X", "helloX"},
		{"héllo", 2, "X", "héXllo"},
		{"こんにちは", 2, "X", "こんXにちは"},
		{"hello", 10, "X", "helloX"}, // Position beyond length
		{"", 0, "X", "X"},
	}

	for _, tc := range testCases {
		result := runeInsert(tc.input, tc.pos, tc.insert)
		if result != tc.expected {
			t.Errorf("runeInsert(%q, %d, %q) = %q, want %q", tc.input, tc.pos, tc.insert, result, tc.expected)
		}
	}
}

func testRuneDelete(t *testing.T) {
	testCases := []struct {
		input    string
		start    int
		end      int
		expected string
	}{
		{"hello", 0, 1, "ello"},
		{"hello", 4, 5, "hell"},
		{"héllo", 1, 2, "hllo"},
		{"こんにちは", 1, 3, "こちは"},
		{"hello", 3, 3, "hello"}, // Start equals end
		{"hello", 4, 2, "hello"}, // Start after end
	}

	for _, tc := range testCases {
		result := runeDelete(tc.input, tc.start, tc.end)
		if result != tc.expected {
			t.Errorf("runeDelete(%q, %d, %d) = %q, want %q", tc.input, tc.start, tc.end, result, tc.expected)
		}
	}
}

func TestLineBuffer_InsertChar(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		row, col int
		ch       rune
		expected []string
	}{
		{"middle of line", []string{"ab", "cd"}, 0, 1, 'X', []string{"aXb", "cd"}},
		{"start of line", []string{"ab"}, 0, 0, 'X', []string{"Xab"}},
		{"end of line", []string{"ab"}, 0, 2, 'X', []string{"abX"}},
		{"pads short line", []string{"ab"}, 0, 5, 'X', []string{"ab   X"}},
		{"grows buffer", []string{"ab"}, 2, 0, 'X', []string{"ab", "", "X"}},
		{"grows and pads", nil, 1, 2, 'X', []string{"", "  X"}},
		{"multi-byte line", []string{"héllo"}, 0, 2, 'X', []string{"héXllo"}},
		{"multi-byte char", []string{"ab"}, 0, 1, 'é', []string{"aéb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newLineBuffer(tt.initial)
			b.insertChar(tt.row, tt.col, tt.ch)
			if !slices.Equal(b.lines, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, b.lines)
			}
		})
	}
}

func TestLineBuffer_InsertCharGrowth(t *testing.T) {
	initial := []string{"abc", "de"}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			b := newLineBuffer(initial)
			before := b.lineCount()
			oldLen := b.lineLen(row)
			b.insertChar(row, col, 'x')

			if got, want := b.lineCount(), max(before, row+1); got != want {
				t.Errorf("insertChar(%d, %d): line count = %d, want %d", row, col, got, want)
			}
			if col > oldLen {
				if got := b.lineLen(row); got != col+1 {
					t.Errorf("insertChar(%d, %d): line length = %d, want %d", row, col, got, col+1)
				}
			}
			if got := []rune(b.line(row))[col]; got != 'x' {
				t.Errorf("insertChar(%d, %d): rune at col = %q, want 'x'", row, col, got)
			}
		}
	}
}

func TestLineBuffer_DeleteChar(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		row, col int
		expected []string
	}{
		{"empty line removed", []string{"", "x"}, 0, 0, []string{"x"}},
		{"empty line removed at any col", []string{"a", "", "b"}, 1, 7, []string{"a", "b"}},
		{"middle char", []string{"abc"}, 0, 1, []string{"ac"}},
		{"last char", []string{"abc"}, 0, 2, []string{"ab"}},
		{"past end is no-op", []string{"abc"}, 0, 3, []string{"abc"}},
		{"row out of range is no-op", []string{"abc"}, 4, 0, []string{"abc"}},
		{"multi-byte", []string{"héllo"}, 0, 1, []string{"hllo"}},
		{"single char leaves empty line", []string{"a", "b"}, 0, 0, []string{"", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newLineBuffer(tt.initial)
			b.deleteChar(tt.row, tt.col)
			if !slices.Equal(b.lines, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, b.lines)
			}
		})
	}
}

func TestLineBuffer_InsertRemoveLine(t *testing.T) {
	b := newLineBuffer([]string{"a", "b"})

	b.insertLine(1)
	if want := []string{"a", "", "b"}; !slices.Equal(b.lines, want) {
		t.Fatalf("insertLine(1): expected %q, got %q", want, b.lines)
	}

	b.insertLine(5)
	if want := []string{"a", "", "b", "", "", ""}; !slices.Equal(b.lines, want) {
		t.Fatalf("insertLine(5): expected %q, got %q", want, b.lines)
	}

	b.removeLine(0)
	if want := []string{"", "b", "", "", ""}; !slices.Equal(b.lines, want) {
		t.Fatalf("removeLine(0): expected %q, got %q", want, b.lines)
	}

	b.removeLine(10)
	if got := b.lineCount(); got != 5 {
		t.Errorf("removeLine out of range changed line count to %d", got)
	}
}

func TestLineBuffer_Split(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		upward   bool
		row, col int
		expected []string
	}{
		{"upward", []string{"ab", "cd"}, true, 1, 1, []string{"abd", "c"}},
		{"upward whole line", []string{"ab", "cd"}, true, 1, 0, []string{"abcd", ""}},
		{"upward at end", []string{"ab", "cd"}, true, 1, 2, []string{"ab", "cd"}},
		{"upward at row 0", []string{"ab", "cd"}, true, 0, 1, []string{"ab", "cd"}},
		{"upward col past end", []string{"ab", "cd"}, true, 1, 3, []string{"ab", "cd"}},
		{"upward row past end", []string{"ab", "cd"}, true, 2, 0, []string{"ab", "cd"}},
		{"upward multi-byte", []string{"x", "héllo"}, true, 1, 2, []string{"xllo", "hé"}},
		{"downward", []string{"ab", "cd"}, false, 0, 1, []string{"a", "cdb"}},
		{"downward at last row", []string{"ab", "cd"}, false, 1, 1, []string{"ab", "cd"}},
		{"downward col past end", []string{"ab", "cd"}, false, 0, 3, []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newLineBuffer(tt.initial)
			if tt.upward {
				b.splitLineUpward(tt.row, tt.col)
			} else {
				b.splitLineDownward(tt.row, tt.col)
			}
			if !slices.Equal(b.lines, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, b.lines)
			}
		})
	}
}

func TestLineBuffer_SplitUpwardLengths(t *testing.T) {
	initial := []string{"first", "second line"}
	for col := 0; col <= runeLen(initial[1]); col++ {
		b := newLineBuffer(initial)
		b.splitLineUpward(1, col)

		if got, want := b.lineLen(0), runeLen(initial[0])+runeLen(initial[1])-col; got != want {
			t.Errorf("col %d: previous line length = %d, want %d", col, got, want)
		}
		if got := b.lineLen(1); got != col {
			t.Errorf("col %d: split line length = %d, want %d", col, got, col)
		}
	}
}

func TestLineBuffer_RenderSlice(t *testing.T) {
	b := newLineBuffer([]string{"hello world", "", "short", "こんにちは世界"})

	tests := []struct {
		name     string
		origin   Pos
		extent   Size
		expected []string
	}{
		{"top-left", Pos{0, 0}, Size{5, 2}, []string{"hello", ""}},
		{"second page across", Pos{0, 5}, Size{5, 4}, []string{" worl", "", "", "世界"}},
		{"rows past end are blank", Pos{3, 0}, Size{4, 3}, []string{"こんにち", "", ""}},
		{"far away", Pos{100, 100}, Size{3, 2}, []string{"", ""}},
		{"zero height", Pos{0, 0}, Size{3, 0}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.renderSlice(tt.origin, tt.extent)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	if b.serialize() != "hello world\n\nshort\nこんにちは世界" {
		t.Errorf("renderSlice modified the buffer: %q", b.serialize())
	}
}

func TestLineBuffer_Serialize(t *testing.T) {
	tests := []struct {
		lines    []string
		expected string
	}{
		{nil, ""},
		{[]string{""}, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a\nb"},
		{[]string{"a", ""}, "a\n"},
	}

	for _, tt := range tests {
		if got := newLineBuffer(tt.lines).serialize(); got != tt.expected {
			t.Errorf("serialize(%q) = %q, want %q", tt.lines, got, tt.expected)
		}
	}
}
