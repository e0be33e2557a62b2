package main

import (
	"fmt"
	"io"
	"log"
)

const defaultOutput = "untitled.txt"

// Options configures a new Editor.
type Options struct {
	Filename string // document to open; empty starts a blank buffer
	Output   string // save target; defaults to Filename
	Margins  Margins
	Logger   *log.Logger
}

func defaultOptions() Options {
	return Options{
		Margins: Margins{Left: 2, Top: 1},
	}
}

type CommandKind int

const (
	CmdMoveCursor CommandKind = iota
	CmdInsertChar
	CmdDeleteBackward
	CmdNewLine
	CmdRemoveLine
	CmdSplitUpward
	CmdSplitDownward
	CmdSave
	CmdResize
	CmdQuit
)

// Command is one abstract edit request. Dir is used by CmdMoveCursor and Ch
// by CmdInsertChar.
type Command struct {
	Kind CommandKind
	Dir  Direction
	Ch   rune
}

// Editor is the edit session: it owns the document, the cursor and the
// viewport and repaints the whole window after every command.
type Editor struct {
	term     Terminal
	buffer   *LineBuffer
	cursor   *ViewCursor
	viewport *Viewport
	logger   *log.Logger

	filename string
	output   string
	language string
	message  string // one-shot status message, cleared after it is drawn
	modified bool
	quit     bool
}

// NewEditor loads opts.Filename (if any) and wires the session to term.
// Load failures are returned as *FileError.
func NewEditor(term Terminal, opts Options) (*Editor, error) {
	buffer := newLineBuffer(nil)
	if opts.Filename != "" {
		b, err := load(opts.Filename)
		if err != nil {
			return nil, err
		}
		buffer = b
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	output := opts.Output
	if output == "" {
		output = opts.Filename
	}
	if output == "" {
		output = defaultOutput
	}

	viewport := newViewport(term, opts.Margins)
	editor := &Editor{
		term:     term,
		buffer:   buffer,
		viewport: viewport,
		cursor:   newViewCursor(term, opts.Margins, viewport.extent()),
		logger:   logger,
		filename: opts.Filename,
		output:   output,
	}
	editor.language = detectLanguage(opts.Filename, buffer)

	logger.Printf("opened %q: %d lines, language %q", opts.Filename, buffer.lineCount(), editor.language)
	return editor, nil
}

// start resets the cursor and paints the first frame.
func (e *Editor) start() {
	e.cursor.reset()
	e.draw()
}

// dispatch applies cmd and repaints. Quit skips the repaint.
func (e *Editor) dispatch(cmd Command) {
	pos := e.cursor.logicalPos()

	switch cmd.Kind {
	case CmdMoveCursor:
		e.cursor.move(cmd.Dir)

	case CmdInsertChar:
		e.buffer.insertChar(pos.Row, pos.Col, cmd.Ch)
		e.cursor.moveRight()
		e.modified = true

	case CmdDeleteBackward:
		// Delete under the cursor, then step back.
		e.buffer.deleteChar(pos.Row, pos.Col)
		e.cursor.moveLeft()
		e.modified = true

	case CmdNewLine:
		e.buffer.insertLine(pos.Row + 1)
		e.cursor.moveTo(Pos{Row: pos.Row + 1, Col: 0})
		e.modified = true

	case CmdRemoveLine:
		e.buffer.removeLine(pos.Row)
		e.modified = true

	case CmdSplitUpward:
		e.buffer.splitLineUpward(pos.Row, pos.Col)
		e.modified = true

	case CmdSplitDownward:
		e.buffer.splitLineDownward(pos.Row, pos.Col)
		e.modified = true

	case CmdSave:
		e.save()

	case CmdResize:
		e.handleResize()

	case CmdQuit:
		e.quit = true
		return

	default:
		e.logger.Printf("ignoring unknown command kind %d", cmd.Kind)
	}

	e.draw()
}

func (e *Editor) save() {
	n, err := e.buffer.save(e.output)
	if err != nil {
		e.logger.Printf("save failed: %v", err)
		e.setMessage("Save error: %v", err)
		return
	}
	e.modified = false
	e.logger.Printf("wrote %d bytes to %s", n, e.output)
	e.setMessage("%d bytes written to %s", n, e.output)
}

func (e *Editor) handleResize() {
	e.viewport.resize(e.term.Size())
	e.cursor.resize(e.viewport.extent())
	e.logger.Printf("resized to %+v", e.viewport.size)
}

func (e *Editor) setMessage(format string, a ...any) {
	e.message = fmt.Sprintf(format, a...)
}
