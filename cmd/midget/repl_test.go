package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/graeme-hill/midget-go/lib"
	"github.com/jcgregorio/logger"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	entries []lib.Entry
	err     error
}

func (f *fakeHistory) Record(ctx context.Context, entry lib.Entry) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func newTestSession(input string) (*session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &session{
		ctx: context.Background(),
		log: logger.NewNopLogger(),
		in:  strings.NewReader(input),
		out: out,
	}, out
}

func TestReplEvaluatesEachLine(t *testing.T) {
	s, out := newTestSession("2 + 3 * 4\n(2 + 3) * 4\n10 / 0\n")
	require.NoError(t, repl(s, replOptions{}))

	text := out.String()
	require.True(t, strings.HasPrefix(text, banner))
	require.Contains(t, text, ">>> 14\n")
	require.Contains(t, text, ">>> 20\n")
	require.Contains(t, text, ">>> Infinity\n")
}

func TestReplContinuesAfterErrors(t *testing.T) {
	s, out := newTestSession("1 + @\n(1 + 2\nfoo\n7 % 4\n")
	require.NoError(t, repl(s, replOptions{}))

	text := out.String()
	require.Contains(t, text, "unrecognized character '@'")
	require.Contains(t, text, "Expected ')' but got EOF")
	require.Contains(t, text, "Cannot evaluate Identifier node")
	require.Contains(t, text, ">>> 3\n")
}

func TestReplExit(t *testing.T) {
	s, out := newTestSession("1\n\n  exit  \n2\n")
	require.NoError(t, repl(s, replOptions{}))

	text := out.String()
	require.Contains(t, text, ">>> 1\n")
	require.NotContains(t, text, "2\n")
}

func TestReplShowAST(t *testing.T) {
	s, out := newTestSession("1 + 2\n")
	require.NoError(t, repl(s, replOptions{showAST: true}))

	text := out.String()
	require.Contains(t, text, "BinaryExpr")
	require.Contains(t, text, "NumericLiteral")
	require.Contains(t, text, "\n3\n")
}

func TestReplRecordsHistory(t *testing.T) {
	history := &fakeHistory{err: errors.New("database is gone")}
	s, out := newTestSession("1 + 1\nfoo\n\n")
	require.NoError(t, repl(s, replOptions{history: history}))

	require.Len(t, history.entries, 2)
	require.Equal(t, "1 + 1", history.entries[0].Source)
	require.Equal(t, "2", history.entries[0].Result)
	require.Equal(t, "foo", history.entries[1].Source)
	require.Equal(t, "Cannot evaluate Identifier node", history.entries[1].Error)

	// recording failures do not end the session
	require.Contains(t, out.String(), ">>> 2\n")
}

func TestReplLongLine(t *testing.T) {
	terms := make([]string, 40000)
	for i := range terms {
		terms[i] = "1"
	}
	line := strings.Join(terms, " + ")
	require.Greater(t, len(line), 64*1024)

	s, out := newTestSession(line + "\n2 * 3\n")
	require.NoError(t, repl(s, replOptions{}))

	text := out.String()
	require.Contains(t, text, ">>> 40000\n")
	require.Contains(t, text, ">>> 6\n")
}

func TestPrintHistory(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	entries := []lib.Entry{
		{At: at.Add(time.Minute), Source: "foo", Error: "Cannot evaluate Identifier node"},
		{At: at, Source: "2 + 3 * 4", Result: "14"},
	}

	out := &bytes.Buffer{}
	require.NoError(t, printHistory(out, entries))
	require.Equal(t,
		"2026-10-17T09:30:00Z  2 + 3 * 4  => 14\n"+
			"2026-10-17T09:31:00Z  foo  => error: Cannot evaluate Identifier node\n",
		out.String())
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "prog.midget")
	require.NoError(t, os.WriteFile(filePath, []byte(source), 0644))
	return filePath
}

func TestRunCmd(t *testing.T) {
	s, out := newTestSession("")
	cmd := RunCmd{File: writeSource(t, "1 + 2\n10 - 3 - 2\n")}
	require.NoError(t, cmd.Run(s))
	require.Equal(t, "5\n", out.String())

	cmd = RunCmd{File: writeSource(t, "(1")}
	require.Error(t, cmd.Run(s))
}

func TestTokensCmd(t *testing.T) {
	s, out := newTestSession("")
	cmd := TokensCmd{File: writeSource(t, "mut x = (1 + 2);")}
	require.NoError(t, cmd.Run(s))
	require.Equal(t, strings.Join([]string{
		"1:1 Mutable",
		"1:5 Identifier x",
		"1:7 Equals",
		"1:9 OpenParen",
		"1:10 Number 1",
		"1:12 BinaryOperator +",
		"1:14 Number 2",
		"1:15 CloseParen",
		"1:16 Semicolon",
		"1:17 EOF",
	}, "\n")+"\n", out.String())
}

func TestASTCmd(t *testing.T) {
	s, out := newTestSession("")
	cmd := ASTCmd{File: writeSource(t, "2 * foo")}
	require.NoError(t, cmd.Run(s))
	require.Contains(t, out.String(), "lib.Program")
	require.Contains(t, out.String(), `"foo"`)
}
