package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("file unreadable")
)

// FileError reports why a document could not be loaded. Kind is one of
// ErrNotFound or ErrUnreadable; Err is the underlying cause.
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func load(path string) (*LineBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return nil, &FileError{Path: path, Kind: ErrUnreadable, Err: err}
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	// Increase the scanner buffer to handle very long lines
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line cap
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		text := scanner.Text()
		if !utf8.ValidString(text) {
			return nil, &FileError{
				Path: path,
				Kind: ErrUnreadable,
				Err:  fmt.Errorf("line %d is not valid UTF-8", len(lines)+1),
			}
		}
		lines = append(lines, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileError{Path: path, Kind: ErrUnreadable, Err: err}
	}

	return newLineBuffer(lines), nil
}

// save overwrites path with the newline-joined buffer. There is no trailing
// newline and no backup.
func (b *LineBuffer) save(path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	n, err := writer.WriteString(b.serialize())
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}
