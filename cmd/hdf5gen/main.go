// hdf5gen - HDF5 back end fragment generator
//
// Prints the C++ setup and declaration fragments for column types given
// as database names (MAP_STRING_VL_STRING) or C++ spellings.
// Uses manual argument parsing to match the -flag style of the other tools.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolkov/hdf5gen"
	"github.com/peterh/liner"
)

// version is set at build time via -ldflags.
var version = "dev"

const (
	historyFile = ".hdf5gen_history"
	prompt      = "type> "

	shortUsage = "usage: hdf5gen [-setup] [-decl] [-case] [-pretty] [-canon] [-names] [-i] [type ...]"
	longUsage  = `Output selection (default: -setup -decl):
  -setup            print the sizing fragment
  -decl             print the landing variable declaration
  -case             print the complete switch arm
  -pretty           print the setup tree in debugging form
  -canon            print the canonical tag and database name
  -names            print the variables the setup fragment declares

API names:
  -cols expr        cell size expression (default "col_sizes_[table][j]")
  -table name       compound type handle of the table (default "tb_type")
  -field name       index of the current field (default "j")
  -hash name        hash size constant (default "CYCLUS_SHA1_SIZE")
  -x name           landing variable prefix (default "x")

Other:
  -i                read types interactively
  -h, --help        show this help message
  -version          show hdf5gen version and exit
`
)

type options struct {
	setup, decl, arm, pretty, canon, names bool
}

// invocation is the parsed command line.
type invocation struct {
	opts        options
	cfg         hdf5gen.Config
	interactive bool
	help        bool
	version     bool
	types       []string
}

func main() {
	inv, err := parseArgs(os.Args[1:])
	if err != nil {
		errorExit(err)
	}
	switch {
	case inv.help:
		fmt.Printf("hdf5gen %s - HDF5 back end fragment generator\n\n%s\n\n%s", version, shortUsage, longUsage)
		os.Exit(0)
	case inv.version:
		fmt.Printf("hdf5gen version %s\n", version)
		os.Exit(0)
	}
	if len(inv.types) == 0 && !inv.interactive {
		errorExitf("%s", shortUsage)
	}
	opts, cfg := inv.opts, inv.cfg

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	for _, typ := range inv.types {
		if err := emit(stdout, typ, opts, &cfg); err != nil {
			stdout.Flush()
			errorExit(err)
		}
	}

	if inv.interactive {
		stdout.Flush()
		repl(opts, &cfg)
	}
}

// parseArgs parses flags up to the first non-flag argument or "--".
// The rest are types.
func parseArgs(args []string) (*invocation, error) {
	inv := &invocation{}
	var i int
	for i = 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-setup":
			inv.opts.setup = true
		case "-decl":
			inv.opts.decl = true
		case "-case":
			inv.opts.arm = true
		case "-pretty":
			inv.opts.pretty = true
		case "-canon":
			inv.opts.canon = true
		case "-names":
			inv.opts.names = true
		case "-cols", "-table", "-field", "-hash", "-x":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("flag needs an argument: %s", arg)
			}
			i++
			switch arg {
			case "-cols":
				inv.cfg.ColumnSizes = args[i]
			case "-table":
				inv.cfg.TableType = args[i]
			case "-field":
				inv.cfg.FieldIndex = args[i]
			case "-hash":
				inv.cfg.HashSize = args[i]
			default:
				inv.cfg.Landing = args[i]
			}
		case "-i":
			inv.interactive = true
		case "-h", "--help":
			inv.help = true
		case "-version", "--version":
			inv.version = true
		default:
			return nil, fmt.Errorf("flag provided but not defined: %s", arg)
		}
	}
	if inv.opts == (options{}) {
		inv.opts.setup, inv.opts.decl = true, true
	}
	inv.types = args[i:]
	return inv, nil
}

// emit writes the selected fragments for typ.
func emit(w io.Writer, typ string, opts options, cfg *hdf5gen.Config) error {
	frag, err := hdf5gen.Compile(typ, cfg)
	if err != nil {
		return err
	}
	if opts.canon {
		fmt.Fprintf(w, "%s %s\n", frag.Canon(), frag.DB())
	}
	if opts.names {
		fmt.Fprintln(w, strings.Join(frag.Declared(), " "))
	}
	if opts.pretty {
		fmt.Fprintln(w, frag.Pretty())
	}
	if opts.setup {
		fmt.Fprint(w, withNewline(frag.Setup()))
	}
	if opts.decl {
		fmt.Fprint(w, frag.Decl())
	}
	if opts.arm {
		fmt.Fprint(w, frag.Case())
	}
	return nil
}

// repl reads one type per line until EOF or :quit.
func repl(opts options, cfg *hdf5gen.Config) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "hdf5gen: %v\n", err)
			return
		}

		typ := strings.TrimSpace(line)
		switch {
		case typ == "":
			continue
		case typ == ":quit":
			return
		}

		ln.AppendHistory(typ)
		if err := emit(os.Stdout, typ, opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "hdf5gen: %v\n", err)
		}
	}
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "hdf5gen: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "hdf5gen: %v\n", err)
	os.Exit(1)
}
