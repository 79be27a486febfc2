package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/graeme-hill/midget-go/lib"
)

const (
	banner = "\nMidget REPL v1.0\n"
	prompt = ">>> "

	maxLineSize = 1 << 24
)

var errorColor = color.New(color.FgRed)

type recorder interface {
	Record(ctx context.Context, entry lib.Entry) error
}

type replOptions struct {
	showAST bool
	history recorder
}

// repl evaluates one line at a time until "exit" or end of input. Errors are
// printed and the session carries on with the next line.
func repl(s *session, opts replOptions) error {
	_, err := fmt.Fprint(s.out, banner+"\n")
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" {
			break
		}
		if trimmed == "" {
			continue
		}

		value, err := evalLine(s, line, opts.showAST)
		if err != nil {
			_, _ = errorColor.Fprintln(s.out, err)
		} else {
			fmt.Fprintln(s.out, value.String())
		}

		if opts.history != nil {
			recordErr := opts.history.Record(s.ctx, lib.NewEntry(line, value, err))
			if recordErr != nil {
				s.log.Warningf("Failed to record history: %s", recordErr)
			}
		}
	}
	fmt.Fprintln(s.out)

	return scanner.Err()
}

func evalLine(s *session, line string, showAST bool) (lib.RuntimeValue, error) {
	prog, err := lib.Parse(line)
	if err != nil {
		return nil, err
	}
	if showAST {
		err = printAST(s.out, prog)
		if err != nil {
			return nil, err
		}
	}
	return lib.Evaluate(prog)
}
