// Command md-preview renders a Markdown file as styled output in the
// terminal.
//
// Usage:
//
//	md-preview [flags] FILE
//
// Flags:
//
//	-s, --symbol       show literal markdown markup alongside styling
//	-c, --center N     left-pad every output line by N spaces
//
// A missing or unreadable file is fatal. Malformed structure inside the
// document is not: the renderer degrades to plain text and keeps going.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	mdpreview "github.com/sid12c/md-preview"
	"github.com/sid12c/md-preview/goldmark"
	"github.com/sid12c/md-preview/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "md-preview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		symbols = flag.BoolP("symbol", "s", false, "show literal markdown markup alongside styling")
		center  = flag.UintP("center", "c", 0, "left-pad every output line by this many spaces")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("expected exactly one markdown file, got %d arguments", flag.NArg())
	}
	path := flag.Arg(0)

	// Read the whole document before any rendering starts so input errors
	// never leave partial output behind.
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	r := render.New(os.Stdout, mdpreview.DefaultTheme(),
		render.WithSymbols(*symbols),
		render.WithCenter(int(*center)),
	)
	if err := r.Render(goldmark.Events(source)); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
