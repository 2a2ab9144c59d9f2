// Package cli implements the xyzcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"io"
	"strings"

	"github.com/npillmayer/xyzcalc"
	"github.com/npillmayer/xyzcalc/commands"
	"github.com/npillmayer/xyzcalc/xyzcalc/ui/termui"
	"github.com/spf13/cobra"
)

// Version is the version of the application.
const Version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xyzcalc",
	Short: "A calculator for expressions in x, y and z",
	Long: `Welcome to XYZCALC V0.1

XYZCALC evaluates and differentiates algebraic expressions in up to three
variables x, y and z, e.g.

   evalxy(2x^2+sin(y), 2, 0)
   diffxyz(2x^2+2y^2+2z^2, 2, 3, 4)

XYZCALC is able to run in interactive mode or execute a single command in
batch-mode.

`,
	Run: runRootCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by xyzcalc.main().
func Execute() {
	rootCmd.AddCommand(sampleCmd, scriptCmd)
	if rootCmd.Execute() != nil {
		xyzcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.Flags().StringP("command", "c", "", "Execute a command in batch mode")
	rootCmd.Flags().BoolP("interactive", "i", false, "Enter interactive mode after executing a command")
}

// runRootCmd executes a command given by -c. Without -c, or if -i is given,
// it enters the REPL.
func runRootCmd(cmd *cobra.Command, args []string) {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if line, _ := cmd.Flags().GetString("command"); line != "" {
		batch(line, cmd.OutOrStdout())
		if !interactive {
			return
		}
	}
	runInterpreter()
}

// batch executes a single command line and prints its result.
func batch(line string, w io.Writer) {
	tracer().Infof("batch command %q", line)
	io.WriteString(w, commands.Execute(termui.Fold(line))+"\n")
}

func runInterpreter() {
	tracer().Infof("xyzcalc interpreter called")
	termui.HistoryFile = historyFile(locateLogFile())
	intp := &calcIntpr{}
	intp.BaseREPL = termui.NewBaseREPL("xyzcalc", Version, commands.Names())
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, commands.Execute("help"))
		io.WriteString(w, "\nType 'help <command>' for details.\n\n")
	}
	intp.Prompt(true)
}

type calcIntpr struct {
	*termui.BaseREPL
}

// InterpretCommand hands a line to the command dispatcher and prints the result.
func (intp *calcIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	tracer().Debugf("calculator interpreter: %q", command)
	result := commands.Execute(termui.Fold(command))
	stdout, stderr := intp.Outputs()
	if strings.HasPrefix(result, "Error") || result == commands.InvalidCommandText ||
		result == commands.WrongArityText {
		stdout = stderr
	}
	if _, err := (termui.DefaultFormatter{}).Format(result, stdout); err != nil {
		tracer().Errorf("cannot write result: %v", err)
	}
}
