package grammar

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token values for the two lexeme categories. Semantic classification of
// lexemes is done by the parser.
const (
	wordLexeme int = iota + 1 // a run of letters, digits and dots
	charLexeme                // any other single character
)

// lexeme is a piece of normalized input together with its byte position.
type lexeme struct {
	text string
	pos  int
}

var initOnce sync.Once // monitors one-time creation of the lexer

var exprLexer *lexmachine.Lexer
var lexerError error

// Lexer returns the lexmachine lexer for normalized expressions. It is
// compiled once and may be used concurrently afterwards.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`([a-zA-Z0-9]|\.)+`), makeLexeme(wordLexeme))
		lexer.Add([]byte(`.`), makeLexeme(charLexeme))
		if err := lexer.Compile(); err != nil {
			lexerError = fmt.Errorf("cannot compile expression lexer: %w", err)
			return
		}
		exprLexer = lexer
	})
	return exprLexer, lexerError
}

func makeLexeme(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// split breaks normalized input into lexemes. Longest match wins, so
// "sin" is one lexeme, whereas "2*x" are three.
func split(input string) ([]lexeme, error) {
	lexer, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var lexemes []lexeme
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, parseError(ErrInvalidToken, input[ui.StartTC:ui.StartTC+1],
				ui.StartTC, input)
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		lexemes = append(lexemes, lexeme{text: string(t.Lexeme), pos: t.TC})
	}
	return lexemes, nil
}
