// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.cli'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.cli")
}

// Formatter writes items to an output. It returns false for items it
// cannot format.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats result texts, lists of words and tables.
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		w.Write([]byte("▶ "))
		if _, err := w.Write([]byte(strings.TrimRight(t, "\n"))); err != nil {
			return false, err
		}
		w.Write([]byte{'\n'})
		return true, nil
	case []string:
		w.Write([]byte("▶ "))
		_, err := w.Write([]byte(strings.Join(t, ", ")))
		w.Write([]byte{'\n'})
		return err == nil, err
	case table.Writer:
		if t == nil {
			w.Write([]byte("▶ (empty table)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	default:
		w.Write([]byte("▶ "))
		w.Write([]byte(fmt.Sprintf("object of type %T\n", t)))
		return false, nil
	}
}
