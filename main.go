package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

var (
	outputPath = flag.String("o", "", "Write saves to this path instead of the opened file.")
	logPath    = flag.String("log", "", "Append debug logging to this file.")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-o output] [-log file] [filename]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nA minimal paged terminal text editor.\n")
	fmt.Fprintf(os.Stderr, "\nBasic controls:\n")
	fmt.Fprintf(os.Stderr, "  Arrows     Move the cursor (the view pages when you cross an edge)\n")
	fmt.Fprintf(os.Stderr, "  Backspace  Delete under the cursor; removes an empty line\n")
	fmt.Fprintf(os.Stderr, "  Enter      Open a new line below\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+K     Remove the current line\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+U     Move the text after the cursor to the end of the line above\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+N     Move the text after the cursor to the end of the line below\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+S     Save\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+R     Redraw for the current terminal size\n")
	fmt.Fprintf(os.Stderr, "  Esc        Quit\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		usage()
		os.Exit(1)
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.Println("--- pagedit started ---")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("stdin is not a terminal")
	}

	opts := defaultOptions()
	opts.Output = *outputPath
	opts.Logger = logger
	if len(args) == 1 {
		opts.Filename = args[0]
	}

	screen, err := openTerminal()
	if err != nil {
		log.Fatalf("Failed to create terminal: %v", err)
	}

	editor, err := NewEditor(screen, opts)
	if err != nil {
		log.Fatalf("Failed to open document: %v", err)
	}

	if err := editor.run(screen); err != nil {
		log.Fatalf("Editor error: %v", err)
	}
	logger.Println("--- pagedit exited cleanly ---")
}
