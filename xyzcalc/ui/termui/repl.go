package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/xyzcalc"
	"golang.org/x/text/width"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = prtxt.FgGreen.Sprint("%s> ")

// HistoryFile is the file the REPL keeps its history in. If empty, a file in
// the temp directory is used.
var HistoryFile string

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	stdout      io.Writer
	stderr      io.Writer
	editmode    string
	toolname    string
	version     string
}

// NewBaseREPL creates a new REPL base object initialized for an interpreter tool
// and a given version. Words are offered for tab-completion in addition to the
// REPL's internal commands.
func NewBaseREPL(toolname, version string, words []string) *BaseREPL {
	rl := newReadline(toolname, words)
	repl := &BaseREPL{
		readline: rl,
		stdout:   rl.Stdout(),
		stderr:   rl.Stderr(),
		toolname: toolname,
		version:  version,
	}
	repl.setEditMode(xyzcalc.ConfigString("repl.editmode", "emacs"))
	return repl
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// Create a readline instance.
func newReadline(toolname string, words []string) *readline.Instance {
	histfile := HistoryFile
	if histfile == "" {
		histfile = fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	}
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(words),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help [command]     : print this message [or help for command]\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n\n")
}

// Completer-tree for interactive sub-commands. Interpreter words complete
// with an opening parenthesis.
func replCompleter(words []string) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, w := range words {
		items = append(items, readline.PcItem(w+"("))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.stdout, repl.stderr
}

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	io.WriteString(repl.stderr, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.stderr.Write([]byte{'\n'})
	}
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if exitOnBye {
		xyzcalc.Exit(0)
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch {
	case cmd == "":
		// do nothing
	case cmd == "help" && len(args) == 1:
		repl.displayCommands(repl.stderr)
		if repl.Helper != nil {
			repl.Helper(repl.stderr)
		}
	case cmd == "bye":
		io.WriteString(repl.stderr, "> goodbye!\n")
		return true
	case cmd == "mode":
		if len(args) > 1 && repl.setEditMode(args[1]) {
			return false
		}
		io.WriteString(repl.stderr, fmt.Sprintf("> current input mode: %s\n", repl.editmode))
	case cmd == "setprompt":
		var prmpt string
		if len(line) <= 10 {
			prmpt = fmt.Sprintf(stdprompt, repl.toolname)
		} else {
			prmpt = line[10:] + " "
		}
		if repl.readline != nil {
			repl.readline.SetPrompt(prmpt)
		}
	default:
		tracer().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

// setEditMode switches between vi and emacs editing. It returns false for
// unknown modes.
func (repl *BaseREPL) setEditMode(mode string) bool {
	switch mode {
	case "vi", "emacs":
	default:
		return false
	}
	repl.editmode = mode
	if repl.readline != nil {
		repl.readline.SetVimMode(mode == "vi")
	}
	return true
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			io.WriteString(repl.stderr, fmt.Sprintf("> error executing statement: %v\n", r))
		}
	}()
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z and folds full-width and half-width
// characters to their canonical width, e.g. '（' to '('.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return FoldRune(r), true
}

// FoldRune maps a wide or narrow variant of a character to its canonical form.
func FoldRune(r rune) rune {
	if f := width.LookupRune(r).Folded(); f != 0 {
		return f
	}
	return r
}

// Fold maps all wide or narrow variants of characters in s to their
// canonical form.
func Fold(s string) string {
	return width.Fold.String(s)
}
