package termui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	lines []string
}

func (r *recorder) InterpretCommand(line string) {
	if line == "panic" {
		panic("boom")
	}
	r.lines = append(r.lines, line)
}

func testREPL() (*BaseREPL, *recorder, *bytes.Buffer) {
	rec := &recorder{}
	out := &bytes.Buffer{}
	repl := &BaseREPL{
		Interpreter: rec,
		Helper: func(w io.Writer) {
			io.WriteString(w, "interpreter help\n")
		},
		stdout:   out,
		stderr:   out,
		editmode: "emacs",
		toolname: "test",
		version:  "0.0",
	}
	return repl, rec, out
}

func run(repl *BaseREPL, line string) bool {
	words := strings.Fields(line)
	cmd := ""
	if len(words) > 0 {
		cmd = words[0]
	}
	return repl.executeCommand(cmd, words, line)
}

func TestExecuteCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	repl, rec, out := testREPL()
	assert.False(t, run(repl, ""))
	assert.False(t, run(repl, "help"))
	assert.Contains(t, out.String(), "setprompt")
	assert.Contains(t, out.String(), "interpreter help")
	assert.False(t, run(repl, "help eval"))
	assert.False(t, run(repl, "evalx(2x, 1)"))
	assert.Equal(t, []string{"help eval", "evalx(2x, 1)"}, rec.lines)
	assert.True(t, run(repl, "bye"))
}

func TestEditMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	repl, _, out := testREPL()
	run(repl, "mode vi")
	assert.Equal(t, "vi", repl.editmode)
	run(repl, "mode")
	assert.Contains(t, out.String(), "current input mode: vi")
	out.Reset()
	run(repl, "mode nano")
	assert.Equal(t, "vi", repl.editmode)
	assert.Contains(t, out.String(), "current input mode: vi")
}

func TestInterpreterPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	repl, _, out := testREPL()
	assert.False(t, run(repl, "panic"))
	assert.Contains(t, out.String(), "boom")
}

func TestFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	assert.Equal(t, "evalx(2x+2,2)", Fold("ｅｖａｌｘ（２ｘ＋２，２）"))
	assert.Equal(t, '(', FoldRune('（'))
	assert.Equal(t, 'x', FoldRune('x'))
	r, ok := filterReplInput('＾')
	assert.True(t, ok)
	assert.Equal(t, '^', r)
}

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	out := &bytes.Buffer{}
	ok, err := DefaultFormatter{}.Format("Commands:\neval\n", out)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, "▶ Commands:\neval\n", out.String())
	//
	out.Reset()
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"key", "value"})
	tw.AppendRow(table.Row{"min", "-1.0"})
	ok, _ = DefaultFormatter{}.Format(tw, out)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "-1.0")
	//
	out.Reset()
	ok, _ = DefaultFormatter{}.Format(42, out)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "int")
}
