package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/graeme-hill/midget-go/lib"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

type session struct {
	ctx context.Context
	log slog.Logger
	in  io.Reader
	out io.Writer
}

func newSession(verbose bool) *session {
	var log slog.Logger = logger.NewNopLogger()
	if verbose {
		log = logger.NewFromOptions(&logger.Options{
			SyncWriter: os.Stderr,
		})
	}
	return &session{
		ctx: context.Background(),
		log: log,
		in:  os.Stdin,
		out: os.Stdout,
	}
}

type ReplCmd struct {
	AST        bool   `name:"ast" help:"Also print the AST of every line."`
	HistoryDSN string `name:"history-dsn" env:"MIDGET_HISTORY_DSN" help:"Postgres connection string used to record every evaluated line."`
}

func (c *ReplCmd) Run(s *session) error {
	opts := replOptions{showAST: c.AST}

	if c.HistoryDSN != "" {
		history, err := lib.OpenHistory(s.ctx, c.HistoryDSN)
		if err != nil {
			return err
		}
		defer history.Close()
		s.log.Infof("Recording history to Postgres")
		opts.history = history
	}

	return repl(s, opts)
}

type RunCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to evaluate."`
}

func (c *RunCmd) Run(s *session) error {
	script, err := lib.ReadScript(c.File)
	if err != nil {
		return err
	}
	s.log.Infof("Evaluated %s (%d statements)", script.Name, len(script.AST.Body))
	_, err = fmt.Fprintln(s.out, script.Result.String())
	return err
}

type TokensCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to tokenize."`
}

func (c *TokensCmd) Run(s *session) error {
	source, err := lib.ReadSource(c.File)
	if err != nil {
		return err
	}
	tokens, err := lib.Tokenize(source)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		_, err = fmt.Fprintln(s.out, formatToken(tok))
		if err != nil {
			return err
		}
	}
	return nil
}

type ASTCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to parse."`
}

func (c *ASTCmd) Run(s *session) error {
	source, err := lib.ReadSource(c.File)
	if err != nil {
		return err
	}
	prog, err := lib.Parse(source)
	if err != nil {
		return err
	}
	return printAST(s.out, prog)
}

type HistoryCmd struct {
	HistoryDSN string `name:"history-dsn" required:"" env:"MIDGET_HISTORY_DSN" help:"Postgres connection string the REPL recorded to."`
	Limit      int    `short:"n" default:"20" help:"Number of entries to show."`
}

func (c *HistoryCmd) Run(s *session) error {
	history, err := lib.OpenHistory(s.ctx, c.HistoryDSN)
	if err != nil {
		return err
	}
	defer history.Close()

	entries, err := history.Recent(s.ctx, c.Limit)
	if err != nil {
		return err
	}
	s.log.Infof("Read %d history entries", len(entries))
	return printHistory(s.out, entries)
}

// printHistory lists entries oldest first, the order they were typed in.
func printHistory(out io.Writer, entries []lib.Entry) error {
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		outcome := entry.Result
		if entry.Error != "" {
			outcome = "error: " + entry.Error
		}
		_, err := fmt.Fprintf(out, "%s  %s  => %s\n", entry.At.Format(time.RFC3339), entry.Source, outcome)
		if err != nil {
			return err
		}
	}
	return nil
}

var cli struct {
	Verbose bool `short:"v" help:"Log diagnostics to stderr."`

	Repl    ReplCmd    `cmd:"" default:"withargs" help:"Start an interactive session (default)."`
	Run     RunCmd     `cmd:"" help:"Evaluate a source file and print its value."`
	Tokens  TokensCmd  `cmd:"" help:"Print the tokens of a source file."`
	AST     ASTCmd     `cmd:"" name:"ast" help:"Print the syntax tree of a source file."`
	History HistoryCmd `cmd:"" help:"Show recently evaluated REPL lines recorded in Postgres."`
}

func formatToken(tok lib.Token) string {
	if tok.Value == "" {
		return fmt.Sprintf("%d:%d %s", tok.Location.Line, tok.Location.Col, tok.Type)
	}
	return fmt.Sprintf("%d:%d %s %s", tok.Location.Line, tok.Location.Col, tok.Type, tok.Value)
}

func printAST(out io.Writer, prog lib.Program) error {
	_, err := fmt.Fprintln(out, repr.String(prog, repr.Indent("  ")))
	return err
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("midget"),
		kong.Description("Lexer, parser and evaluator for the Midget arithmetic language."),
		kong.UsageOnError())

	err := kctx.Run(newSession(cli.Verbose))
	kctx.FatalIfErrorf(err)
}
