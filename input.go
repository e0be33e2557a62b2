package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// commandFor maps a terminal event to an editor command. ok is false for
// events the editor does not handle.
func commandFor(ev tcell.Event) (cmd Command, ok bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Command{Kind: CmdResize}, true

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			return Command{Kind: CmdMoveCursor, Dir: DirLeft}, true
		case tcell.KeyRight:
			return Command{Kind: CmdMoveCursor, Dir: DirRight}, true
		case tcell.KeyUp:
			return Command{Kind: CmdMoveCursor, Dir: DirUp}, true
		case tcell.KeyDown:
			return Command{Kind: CmdMoveCursor, Dir: DirDown}, true

		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
			return Command{Kind: CmdDeleteBackward}, true

		case tcell.KeyEnter:
			return Command{Kind: CmdNewLine}, true

		case tcell.KeyCtrlK:
			return Command{Kind: CmdRemoveLine}, true

		case tcell.KeyCtrlU:
			return Command{Kind: CmdSplitUpward}, true

		case tcell.KeyCtrlN:
			return Command{Kind: CmdSplitDownward}, true

		case tcell.KeyCtrlS:
			return Command{Kind: CmdSave}, true

		case tcell.KeyCtrlR:
			// Manual resize for terminals that do not report SIGWINCH.
			return Command{Kind: CmdResize}, true

		case tcell.KeyEscape, tcell.KeyCtrlQ:
			return Command{Kind: CmdQuit}, true

		case tcell.KeyRune:
			if r := ev.Rune(); r >= 32 {
				return Command{Kind: CmdInsertChar, Ch: r}, true
			}
		}
	}
	return Command{}, false
}

// run enters raw mode, paints the first frame and processes events until
// a quit command arrives. The terminal is restored on the way out.
func (e *Editor) run(events eventSource) error {
	if err := e.term.EnableRawMode(); err != nil {
		return err
	}
	// Raw mode may have changed what the terminal reports.
	e.handleResize()
	e.start()

	e.loop(events)

	if err := e.term.DisableRawMode(); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// loop handles events strictly in arrival order. Each command is fully
// applied and painted before the next event is read.
func (e *Editor) loop(events eventSource) {
	for !e.quit {
		ev := events.PollEvent()
		if ev == nil {
			// The screen was finalized underneath us.
			return
		}
		cmd, ok := commandFor(ev)
		if !ok {
			continue
		}
		e.dispatch(cmd)
	}
}
