// Command runparse runs the extraction engine over a plain-text receipt and
// prints the structured result as JSON. Useful for debugging layouts without
// a database or OCR binaries.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/pix-tracker/internal/parser"
)

func main() {
	var (
		file = flag.String("file", "", "text file to parse (reads stdin when omitted)")
		name = flag.String("name", "", "source filename for fallback heuristics (defaults to --file's base name)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var text []byte
	var err error
	if *file != "" {
		text, err = os.ReadFile(*file)
		if *name == "" {
			*name = filepath.Base(*file)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if *name == "" {
		*name = "stdin.txt"
	}

	res := parser.NewParser(parser.GatePolicy{}, logger).Parse(string(text), *name)
	audit, err := parser.MarshalAudit(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(audit))
}
