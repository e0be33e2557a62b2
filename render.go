package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"
)

// detectLanguage names the document's language for the title bar. It
// returns "" when the file is unnamed or unrecognised.
func detectLanguage(filename string, buf *LineBuffer) string {
	if filename == "" {
		return ""
	}
	return enry.GetLanguage(filepath.Base(filename), []byte(buf.serialize()))
}

func (e *Editor) draw() {
	e.term.SetTitle(e.title())
	e.viewport.render(e.buffer, e.cursor, e.statusLine())
	e.message = ""
}

// title mirrors the cursor position in the window title.
func (e *Editor) title() string {
	pos := e.cursor.logicalPos()
	title := fmt.Sprintf("Line %d, Column %d", pos.Row+1, pos.Col+1)
	if e.filename != "" {
		title += " - " + filepath.Base(e.filename)
	}
	if e.language != "" {
		title += " [" + e.language + "]"
	}
	return title
}

func (e *Editor) statusLine() string {
	width := e.viewport.size.Width
	if e.message != "" {
		return runewidth.Truncate(" "+e.message, width, "…")
	}

	name := "[No Name]"
	if e.filename != "" {
		name = filepath.Base(e.filename)
	}
	modified := ""
	if e.modified {
		modified = " [Modified]"
	}
	pos := e.cursor.logicalPos()
	pageRow, pageCol := e.viewport.page(pos)
	status := fmt.Sprintf(" %s%s | Ln %d/%d, Col %d | Page %d:%d",
		name, modified, pos.Row+1, e.buffer.lineCount(), pos.Col+1, pageRow+1, pageCol+1)
	return runewidth.Truncate(status, width, "…")
}
