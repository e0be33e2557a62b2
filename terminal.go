package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal is everything the editor needs from the character display.
// Apart from raw mode toggling, calls are best effort and never fail.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	Size() (cols, rows int)
	Clear()
	// MoveCursor moves both the draw position used by Write and the
	// visible cursor glyph.
	MoveCursor(x, y int)
	Write(text string)
	SetTitle(title string)
	Flush()
}

// eventSource yields decoded terminal events, blocking until one arrives.
type eventSource interface {
	PollEvent() tcell.Event
}

type tcellTerminal struct {
	screen tcell.Screen
	penX   int
	penY   int
}

var _ Terminal = (*tcellTerminal)(nil)

func newTcellTerminal(screen tcell.Screen) *tcellTerminal {
	return &tcellTerminal{screen: screen}
}

// openTerminal creates a screen bound to the controlling tty.
func openTerminal() (*tcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return newTcellTerminal(screen), nil
}

func (t *tcellTerminal) EnableRawMode() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *tcellTerminal) DisableRawMode() error {
	t.screen.Fini()
	return nil
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Clear() {
	t.screen.Clear()
}

func (t *tcellTerminal) MoveCursor(x, y int) {
	t.penX, t.penY = x, y
	t.screen.ShowCursor(x, y)
}

// Write paints text at the draw position, advancing by display width.
// Anything past the right edge is dropped.
func (t *tcellTerminal) Write(text string) {
	width, _ := t.screen.Size()
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if t.penX+w > width {
			break
		}
		t.screen.SetContent(t.penX, t.penY, r, nil, tcell.StyleDefault)
		t.penX += w
	}
}

func (t *tcellTerminal) SetTitle(title string) {
	t.screen.SetTitle(title)
}

func (t *tcellTerminal) Flush() {
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}
