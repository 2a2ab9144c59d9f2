package cli

import (
	"github.com/npillmayer/xyzcalc/script"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script <file.lua>",
	Short: "Run a Lua script",
	Long: `Script runs a Lua script. The calculator commands are available as
Lua functions eval, evalx, evalxy, evalxyz, diffx, diffxy, diffxyz
and execute.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := script.New(cmd.OutOrStdout())
		defer rt.Close()
		return rt.RunFile(args[0])
	},
}
