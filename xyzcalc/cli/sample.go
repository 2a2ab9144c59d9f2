package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/xyzcalc"
	"github.com/npillmayer/xyzcalc/commands"
	"github.com/npillmayer/xyzcalc/field"
	"github.com/npillmayer/xyzcalc/xyzcalc/ui/termui"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <equation>",
	Short: "Sample a scalar field on a lattice",
	Long: `Sample evaluates an equation like "x^2+y^2+z^2 = 1" on a regular
lattice within a box and reports the range of values and the number of
lattice cells the surface of the equation passes through.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSampleCmd,
}

func init() {
	sampleCmd.Flags().StringP("bounds", "b", "-1,1,-1,1,-1,1", "Boundaries x1,x2,y1,y2,z1,z2")
	sampleCmd.Flags().IntP("resolution", "r", 0, "Lattice points per axis (default from config)")
}

func runSampleCmd(cmd *cobra.Command, args []string) error {
	text := termui.Fold(strings.Join(args, " "))
	e, err := field.Equation(text)
	if err != nil {
		return err
	}
	list, _ := cmd.Flags().GetString("bounds")
	b, err := field.ParseBoundsList(termui.Fold(list))
	if err != nil {
		return err
	}
	n, _ := cmd.Flags().GetInt("resolution")
	if n == 0 {
		n = xyzcalc.ConfigInt("field.resolution", 16)
	}
	g, err := field.Sample(xyzcalc.SignalContext, e, b, n)
	if err != nil {
		return err
	}
	_, err = termui.DefaultFormatter{}.Format(sampleTable(text, e.String(), g), cmd.OutOrStdout())
	return err
}

// sampleTable summarizes a sampled grid.
func sampleTable(equation, source string, g *field.Grid) table.Writer {
	lo, hi := g.Range()
	tw := table.NewWriter()
	tw.SetTitle("Sampling %s", equation)
	tw.AppendHeader(table.Row{"Property", "Value"})
	tw.AppendRows([]table.Row{
		{"expression", source},
		{"bounds", g.Bounds.String()},
		{"resolution", fmt.Sprintf("%d×%d×%d", g.N, g.N, g.N)},
		{"minimum", commands.FormatNumber(lo)},
		{"maximum", commands.FormatNumber(hi)},
		{"surface cells", g.SignChanges()},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}
