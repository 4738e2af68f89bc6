package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oarkflow/log"
	"github.com/peterh/liner"

	monkey "github.com/monkey-lang/monk"
)

const (
	appName    = "monk"
	version    = "0.1.0"
	promptMain = ">> "
)

var banner = fmt.Sprintf("Monkey %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", version)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "ast":
		os.Exit(cmdAST(os.Args[2:]))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Monkey %s

Usage:
  %s run [--verbose] <file.mky>   Run a script.
  %s repl                         Start the REPL.
  %s ast <file.mky>               Parse a script and dump its AST as JSON.
  %s tokens <file.mky>            Dump the token stream of a script.
  %s version                      Print the version.

`, version, appName, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "log parse/eval timing")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [--verbose] <file.mky>\n", appName)
		return 2
	}
	file := fs.Arg(0)

	logger := &log.DefaultLogger
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	parseStart := time.Now()
	program, perrs := monkey.Parse(string(src))
	if len(perrs) > 0 {
		fmt.Fprintln(os.Stderr, monkey.RenderParseErrors(string(src), perrs))
		return 1
	}
	if *verbose {
		logger.Info().
			Str("file", file).
			Int("bytes", len(src)).
			Str("parse", time.Since(parseStart).String()).
			Msg("parsed")
	}

	ip := monkey.New()
	evalStart := time.Now()
	result := ip.EvalProgram(program, ip.Global)
	if *verbose {
		logger.Info().
			Str("file", file).
			Str("eval", time.Since(evalStart).String()).
			Msg("evaluated")
	}

	// Runtime errors surface on stderr and fail the run; any other result is
	// discarded (scripts print via puts).
	if result.IsError() {
		fmt.Fprintln(os.Stderr, monkey.FormatValue(result))
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	cfg := loadConfig()
	monkey.EnableColor = cfg.colorEnabled()

	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.historyPath()); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(cfg.historyPath()); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := monkey.New()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := ip.EvalPersistentSource(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, monkey.Red(err.Error()))
			continue
		}
		if v.IsError() {
			fmt.Fprintln(os.Stderr, monkey.Red(monkey.FormatValue(v)))
		} else {
			fmt.Println(monkey.Blue(monkey.FormatValue(v)))
		}
		ln.AppendHistory(line)
	}
}

// -----------------------------------------------------------------------------
// ast / tokens
// -----------------------------------------------------------------------------

func cmdAST(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s ast <file.mky>\n", appName)
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	program, perrs := monkey.Parse(string(src))
	if len(perrs) > 0 {
		fmt.Fprintln(os.Stderr, monkey.RenderParseErrors(string(src), perrs))
		return 1
	}

	out, err := monkey.MarshalAST(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func cmdTokens(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens <file.mky>\n", appName)
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	for _, tok := range monkey.NewLexer(string(src)).Scan() {
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Col+1, tok.Type, tok.Literal)
	}
	return 0
}
