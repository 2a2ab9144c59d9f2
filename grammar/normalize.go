package grammar

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Decimal representations of the constants substituted for "pi" and "e".
var (
	piLiteral = strconv.FormatFloat(math.Pi, 'f', -1, 64)
	eLiteral  = strconv.FormatFloat(math.E, 'f', -1, 64)
)

// Normalize rewrites raw input into a form suitable for Parse.
// It never fails; malformed results are left for Parse to detect.
//
// The order of rewrite steps matters: later steps rely on whitespace having
// been removed and brackets having been unified.
//
// Normalize is idempotent.
func Normalize(text string) string {
	s := stripSpace(text)
	s = expandAbsBars(s)
	s = insertLeadingZeros(s)
	s = insertProducts(s, isNumberChar, opensFactor)
	// Substitution of "e" is a plain substring replacement and will hit
	// any identifier containing the letter e.
	s = strings.ReplaceAll(s, "pi", piLiteral)
	s = strings.ReplaceAll(s, "e", eLiteral)
	s = insertProducts(s, isNumberChar, opensFactor)
	s = insertProducts(s, isVariableChar, opensOperand)
	s = insertProducts(s, isCloseParen, opensOperand)
	tracer().Debugf("normalized %q => %q", text, s)
	return s
}

// stripSpace removes all whitespace and maps square brackets to parentheses.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '[':
			return '('
		case r == ']':
			return ')'
		}
		return r
	}, s)
}

// expandAbsBars replaces |…| spans by abs(…), pairing bars from left to
// right. A trailing unpaired bar opens an abs-group which is never closed.
func expandAbsBars(s string) string {
	if strings.IndexByte(s, '|') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '|' {
			b.WriteByte(s[i])
			continue
		}
		b.WriteString("abs(")
		if j := strings.IndexByte(s[i+1:], '|'); j >= 0 {
			b.WriteString(s[i+1 : i+1+j])
			b.WriteByte(')')
			i += j + 1
		}
	}
	return b.String()
}

// insertLeadingZeros turns a unary minus at the start of the input or
// directly after an opening parenthesis into a subtraction from 0.
func insertLeadingZeros(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && (i == 0 || s[i-1] == '(') {
			b.WriteByte('0')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// insertProducts inserts '*' between adjacent characters l and r whenever
// left(l) and right(r) hold, and repeats until no such pair remains.
// Every round strictly grows s and an inserted '*' never satisfies
// either predicate, therefore the loop terminates.
func insertProducts(s string, left, right func(byte) bool) string {
	for {
		var b strings.Builder
		changed := false
		for i := 0; i < len(s); i++ {
			b.WriteByte(s[i])
			if i+1 < len(s) && left(s[i]) && right(s[i+1]) {
				b.WriteByte('*')
				changed = true
			}
		}
		if !changed {
			return s
		}
		s = b.String()
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberChar(c byte) bool {
	return isDigit(c) || c == '.'
}

func isVariableChar(c byte) bool {
	return c == 'x' || c == 'y' || c == 'z'
}

func isCloseParen(c byte) bool {
	return c == ')'
}

// opensFactor: may c start a factor following a number?
func opensFactor(c byte) bool {
	return isLetter(c) || c == '('
}

// opensOperand: may c start an operand following a variable or a group?
func opensOperand(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '('
}
