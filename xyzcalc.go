// Package xyzcalc is a small compiler and evaluator for algebraic expressions
// in up to three variables x, y and z.
//
// Expressions like "2x^2+sin(y)-|z|" are normalized, translated to a postfix
// program and evaluated by a stack machine. On top of this core there are
// numerical partial derivatives, a command dispatcher for a function-call
// syntax ("evalxy(2x+y, 3, 4)"), a scalar field sampler and Lua scripting.
//
// This root package holds the token model shared by all sub-packages
// and a few application-wide globals.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package xyzcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ConfigInt returns an integer configuration value, or dflt if the key is
// not configured.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}

// ConfigString returns a string configuration value, or dflt if the key is
// not configured.
func ConfigString(key string, dflt string) string {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.String(key)
}
