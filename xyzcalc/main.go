// Command xyzcalc is a calculator for algebraic expressions in x, y and z.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/xyzcalc"
	"github.com/npillmayer/xyzcalc/xyzcalc/cli"
)

func main() {
	var stop context.CancelFunc
	xyzcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
