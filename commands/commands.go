package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/xyzcalc/evaluator"
)

// Errors flagging malformed command lines.
var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrWrongArity     = errors.New("invalid number of arguments")
	ErrNumberFormat   = errors.New("invalid number")
)

// Fixed result texts of Execute.
const (
	InvalidCommandText = "Invalid command"
	WrongArityText     = "Invalid number of arguments"
	NoSuchCommandText  = "Error: No such command found"
)

// Execute executes a command line and returns the result as text.
// Execute never fails: errors are turned into a descriptive text.
func Execute(line string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("executing %q panicked: %v", line, r)
			result = fmt.Sprintf("Error: %v", r)
		}
	}()
	result, err := Dispatch(line)
	switch {
	case err == nil:
		return result
	case errors.Is(err, ErrInvalidCommand):
		return InvalidCommandText
	case errors.Is(err, ErrWrongArity):
		return WrongArityText
	}
	return "Error: " + err.Error()
}

// Dispatch executes a command line. A line starting with "help" is a
// request for help texts. All other lines are command calls of the form
//
//    name(expression, value, …)
//
// Dispatch returns the formatted result of a call or an error.
func Dispatch(line string) (string, error) {
	if strings.HasPrefix(line, "help") {
		topic := strings.TrimSpace(strings.TrimPrefix(line, "help"))
		if topic == "" {
			return HelpList(), nil
		}
		if text, ok := Help(topic); ok {
			return text, nil
		}
		return NoSuchCommandText, nil
	}
	cmd, args, err := parseCall(line)
	if err != nil {
		return "", err
	}
	tracer().Debugf("calling %s with %v", cmd.Name, args)
	e, err := evaluator.New(args[0])
	if err != nil {
		return "", err
	}
	values := make([]float64, len(args)-1)
	for i, arg := range args[1:] {
		if values[i], err = strconv.ParseFloat(arg, 64); err != nil {
			tracer().Errorf("argument %d of %s is not a number: %q", i+2, cmd.Name, arg)
			return "", fmt.Errorf("%w: %q", ErrNumberFormat, arg)
		}
	}
	return cmd.run(e, values)
}

// parseCall splits a command line into a registered command and its
// arguments. Whitespace is ignored and the closing parenthesis is optional.
func parseCall(line string) (*Command, []string, error) {
	i := 0
	for i < len(line) && isLetter(line[i]) {
		i++
	}
	if i == 0 || i == len(line) || line[i] != '(' {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}
	cmd, ok := Lookup(line[:i])
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line[:i])
	}
	arglist := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line[i+1:])
	arglist = strings.TrimSuffix(arglist, ")")
	args := strings.Split(arglist, ",")
	if len(args) != cmd.Arity {
		return nil, nil, fmt.Errorf("%w: %s takes %d, have %d", ErrWrongArity, cmd.Name,
			cmd.Arity, len(args))
	}
	return cmd, args, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// HelpList returns the list of available commands.
func HelpList() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range Names() {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}

// Help returns the help text for a command.
func Help(name string) (string, bool) {
	cmd, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return cmd.Doc, true
}
