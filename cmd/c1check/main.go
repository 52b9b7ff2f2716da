// Command c1check reports whether C1 source files are syntactically valid.
//
//	c1check [FLAGS] [FILE ...]
//
// With no FILE, or when FILE is -, the source is read from standard input.
// The exit status is 0 when every file parses, 1 when any file has a syntax
// error and 2 on usage or I/O errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/metaphox/c1-lang/parser"
)

const version = "c1check 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  c1check [FLAGS] [FILE ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads standard input when no FILE is given or FILE is -.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("c1check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	quiet := fs.Bool("q", false, "Print nothing; report through the exit status only.")
	showVersion := fs.Bool("version", false, "Print version info and exit.")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	status := 0
	for _, path := range paths {
		src, err := readSource(path, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "c1check: %s\n", err)
			status = 2
			continue
		}
		if err := parser.Parse(src); err != nil {
			if !*quiet {
				reportError(stderr, displayName(path), src, err)
			}
			if status == 0 {
				status = 1
			}
			continue
		}
		if !*quiet {
			fmt.Fprintf(stdout, "%s: ok\n", displayName(path))
		}
	}
	return status
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	return string(b), nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
