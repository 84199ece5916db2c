package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"go.creack.net/lox/lox"
)

const exitUsage = 64

type config struct {
	source     string // Inline program, from -e.
	dumpAST    bool
	dumpTokens bool
	history    string // REPL history file, empty to disable.
}

func parseFlags() (config, []string) {
	var cfg config
	flag.StringVar(&cfg.source, "e", "", "Run the given program instead of a file")
	flag.BoolVar(&cfg.dumpAST, "ast", false, "Print the syntax tree instead of running")
	flag.BoolVar(&cfg.dumpTokens, "tokens", false, "Print the tokens instead of running")
	flag.StringVar(&cfg.history, "history", replHistoryPath(), "REPL history file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [script | -]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	return cfg, flag.Args()
}

// process runs source, or dumps it when asked to.
func process(r *lox.Runner, cfg config, source string) error {
	switch {
	case cfg.dumpTokens:
		tokens, err := r.Tokens(source)
		for _, tok := range tokens {
			_, _ = pretty.Println(tok)
		}
		return err
	case cfg.dumpAST:
		prog, err := r.Parse(source)
		if err != nil {
			return err
		}
		fmt.Print(prog.Dump())
		return nil
	}
	return r.Run(source)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lox: ")

	cfg, args := parseFlags()
	r := lox.NewRunner(os.Stdout, os.Stderr)

	switch {
	case cfg.source != "" && len(args) > 0, len(args) > 1:
		flag.Usage()
		os.Exit(exitUsage)
	case cfg.source != "":
		os.Exit(lox.ExitCode(process(r, cfg, cfg.source)))
	case len(args) == 1:
		os.Exit(runFile(r, cfg, args[0]))
	}
	runREPL(r, cfg)
}

func runFile(r *lox.Runner, cfg config, path string) int {
	var buf []byte
	var err error
	if path == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		log.Printf("Read %q: %s.", path, err)
		return lox.ExitIOErr
	}
	err = process(r, cfg, string(buf))
	code := lox.ExitCode(err)
	if code == lox.ExitIOErr {
		log.Printf("Run %q: %s.", path, err)
	}
	return code
}

func runREPL(r *lox.Runner, cfg config) {
	if !isInteractive() {
		runBufferedREPL(r, cfg, bufio.NewReader(os.Stdin))
		return
	}
	runInteractiveREPL(r, cfg)
}

// runBufferedREPL runs each input line on its own. Errors are reported and the loop goes on.
func runBufferedREPL(r *lox.Runner, cfg config, reader *bufio.Reader) {
	for {
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			_ = process(r, cfg, line) // Diagnostics already reported.
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("Read error: %s.", err)
			}
			return
		}
	}
}

func runInteractiveREPL(r *lox.Runner, cfg config) {
	state := liner.NewLiner()
	defer func() { _ = state.Close() }() // Best effort.
	state.SetCtrlCAborts(true)

	if cfg.history != "" {
		if f, err := os.Open(cfg.history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.history); err == nil {
				_, _ = state.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		input, err := state.Prompt("> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				log.Printf("Read error: %s.", err)
				return
			}
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		state.AppendHistory(input)
		_ = process(r, cfg, input) // Diagnostics already reported.
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".lox_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
