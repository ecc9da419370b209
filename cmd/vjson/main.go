// Command vjson parses, reformats, and canonicalizes JSON text.
//
// Stable ABI:
//
//	vjson parse   [--quiet] [file|-]
//	vjson format  [--quiet] [file|-]
//	vjson canon   [--quiet] [file|-]
//	vjson --help
//	vjson --version
//
// Exit codes: 0 (success), 2 (parse/usage failure), 10 (internal/IO failure).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vjson-dev/vjson/jparse"
	"github.com/vjson-dev/vjson/jsoncanon"
	"github.com/vjson-dev/vjson/jstringify"
)

const (
	exitOK       = 0
	exitUsage    = 2
	exitInternal = 10
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if len(args) == 1 {
		switch args[0] {
		case "--help", "-h":
			_ = writeGlobalHelp(stdout)
			return exitOK
		case "--version":
			_ = writeLine(stdout, "vjson "+version)
			return exitOK
		}
	}

	if len(args) == 0 {
		_ = writeGlobalHelp(stderr)
		return exitUsage
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], stdin, stdout, stderr)
	case "format":
		return cmdFormat(args[1:], stdin, stdout, stderr)
	case "canon":
		return cmdCanon(args[1:], stdin, stdout, stderr)
	default:
		_ = writef(stderr, "unknown command: %s\n", args[0])
		_ = writeGlobalHelp(stderr)
		return exitUsage
	}
}

type flags struct {
	quiet bool
	help  bool
}

func parseFlags(args []string) (flags, []string, error) {
	var f flags
	var positional []string
	consumeAsPositional := false
	for _, arg := range args {
		if consumeAsPositional {
			positional = append(positional, arg)
			continue
		}

		switch arg {
		case "--quiet", "-q":
			f.quiet = true
		case "--help", "-h":
			f.help = true
		case "--":
			consumeAsPositional = true
		case "-":
			positional = append(positional, arg)
		default:
			if strings.HasPrefix(arg, "-") {
				return flags{}, nil, fmt.Errorf("unknown option: %s", arg)
			}
			positional = append(positional, arg)
		}
	}
	return f, positional, nil
}

func cmdParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		return writeErrorAndReturn(stderr, exitUsage, "error: %v\n", err)
	}
	if fl.help {
		_ = writeLine(stderr, "usage: vjson parse [--quiet] [file|-]")
		_ = writeLine(stderr, "  Parse JSON and report the first error, if any.")
		return exitOK
	}
	if code, bail := ensureSingleInput(positional, stderr); bail {
		return code
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: %v\n", err)
	}

	_, status, perr := jparse.Parse(input)
	if status != jparse.StatusOK {
		_ = writef(stderr, "error: %v\n", perr)
		return exitUsage
	}
	if !fl.quiet {
		_ = writeLine(stderr, "ok")
	}
	return exitOK
}

func cmdFormat(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		return writeErrorAndReturn(stderr, exitUsage, "error: %v\n", err)
	}
	if fl.help {
		_ = writeLine(stderr, "usage: vjson format [--quiet] [file|-]")
		_ = writeLine(stderr, "  Parse JSON and re-emit it with insertion order and %.17g numbers preserved.")
		return exitOK
	}
	if code, bail := ensureSingleInput(positional, stderr); bail {
		return code
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: %v\n", err)
	}

	v, status, perr := jparse.Parse(input)
	if status != jparse.StatusOK {
		_ = writef(stderr, "error: %v\n", perr)
		return exitUsage
	}

	out, err := jstringify.Stringify(v)
	if err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: %v\n", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: writing output: %v\n", err)
	}
	return exitOK
}

func cmdCanon(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		return writeErrorAndReturn(stderr, exitUsage, "error: %v\n", err)
	}
	if fl.help {
		_ = writeLine(stderr, "usage: vjson canon [--quiet] [file|-]")
		_ = writeLine(stderr, "  Parse JSON and emit its RFC 8785 JCS canonical form.")
		return exitOK
	}
	if code, bail := ensureSingleInput(positional, stderr); bail {
		return code
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: %v\n", err)
	}

	out, err := jsoncanon.CanonicalizeBytes(input)
	if err != nil {
		return writeErrorAndReturn(stderr, exitUsage, "error: %v\n", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return writeErrorAndReturn(stderr, exitInternal, "error: writing output: %v\n", err)
	}
	return exitOK
}

func readInput(positional []string, stdin io.Reader) ([]byte, error) {
	if len(positional) == 0 || positional[0] == "-" {
		return readBounded(stdin)
	}
	f, err := os.Open(positional[0])
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", positional[0], err)
	}
	defer func() { _ = f.Close() }()
	return readBounded(f)
}

func readBounded(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, int64(jparse.DefaultMaxInputSize)+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("read input stream: %w", err)
	}
	if len(data) > jparse.DefaultMaxInputSize {
		return nil, fmt.Errorf("input exceeds maximum size %d bytes", jparse.DefaultMaxInputSize)
	}
	return data, nil
}

func ensureSingleInput(positional []string, stderr io.Writer) (int, bool) {
	if len(positional) <= 1 {
		return 0, false
	}
	_ = writeLine(stderr, "error: multiple input files specified")
	return exitUsage, true
}

func writeErrorAndReturn(stderr io.Writer, code int, format string, args ...any) int {
	_ = writef(stderr, format, args...)
	return code
}

func writeGlobalHelp(w io.Writer) error {
	if err := writeLine(w, "usage: vjson <parse|format|canon> [options] [file|-]"); err != nil {
		return err
	}
	if err := writeLine(w, "       vjson --help"); err != nil {
		return err
	}
	if err := writeLine(w, "       vjson --version"); err != nil {
		return err
	}
	if err := writeLine(w, "commands: parse, format, canon"); err != nil {
		return err
	}
	return writeLine(w, "flags: --help, -h, --quiet, -q, --version")
}

func writeLine(w io.Writer, msg string) error {
	return writef(w, "%s\n", msg)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write stream: %w", err)
	}
	return nil
}

var version = "v0.0.0-dev"
