package commands

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/xyzcalc/evaluator"
)

// Command is an entry of the command registry.
type Command struct {
	Name  string // name of the command
	Arity int    // number of arguments, including the expression
	Doc   string // help text
	run   func(e *evaluator.Expression, values []float64) (string, error)
}

// registry maps command names to commands, ordered by name.
var registry = loadStandardCommands()

func loadStandardCommands() *treemap.Map {
	reg := treemap.NewWithStringComparator()
	define := func(cmd *Command) {
		reg.Put(cmd.Name, cmd)
	}
	define(&Command{
		Name:  "eval",
		Arity: 1,
		Doc: "Evaluates an expression.\n" +
			"Expression must not contain any equal signs, nor variables.\n" +
			"Example:\n >>> eval(2+2)\n 4.0\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			return scalar(e.Eval(0))
		},
	})
	define(&Command{
		Name:  "evalx",
		Arity: 2,
		Doc: "Evaluates an expression with a single variable x.\n" +
			"Expression must not contain any equal signs, nor variables other than x.\n" +
			"Example:\n >>> evalx(2x+2, 2)\n 6.0\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			return scalar(e.Eval(v[0]))
		},
	})
	define(&Command{
		Name:  "evalxy",
		Arity: 3,
		Doc: "Evaluates an expression with two variables x and y.\n" +
			"Expression must not contain any equal signs, nor variables other than x and y.\n" +
			"Example:\n >>> evalxy(2x+2y+2, 2, 3)\n 10.0\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			return scalar(e.EvalXY(v[0], v[1]))
		},
	})
	define(&Command{
		Name:  "evalxyz",
		Arity: 4,
		Doc: "Evaluates an expression with three variables x, y, and z.\n" +
			"Expression must not contain any equal signs, nor variables other than x, y, and z.\n" +
			"Example:\n >>> evalxyz(2x+2y+2z+2, 2, 3, 4)\n 20.0\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			return FormatNumber(e.EvalXYZ(v[0], v[1], v[2])), nil
		},
	})
	define(&Command{
		Name:  "diffx",
		Arity: 2,
		Doc: "Numerically calculates the derivative of the function at the given x value.\n" +
			"Expression must not contain any equal signs, nor variables other than x.\n" +
			"Example:\n >>> diffx(2x^2, 2)\n 8.0\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			return scalar(e.DiffX(v[0]))
		},
	})
	define(&Command{
		Name:  "diffxy",
		Arity: 3,
		Doc: "Numerically calculates the partial derivatives of the function at the given x and y values.\n" +
			"Expression must not contain any equal signs, nor variables other than x and y.\n" +
			"Example:\n >>> diffxy(2x^2+2y^2, 2, 3)\n {8.0, 12.0}\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			g, err := e.DiffXY(v[0], v[1])
			if err != nil {
				return "", err
			}
			return FormatVector(g.X, g.Y), nil
		},
	})
	define(&Command{
		Name:  "diffxyz",
		Arity: 4,
		Doc: "Numerically calculates the partial derivatives of the function at the given x, y, and z values.\n" +
			"Expression must not contain any equal signs, nor variables other than x, y, and z.\n" +
			"Example:\n >>> diffxyz(2x^2+2y^2+2z^2, 2, 3, 4)\n {8.0, 12.0, 16.0}\n",
		run: func(e *evaluator.Expression, v []float64) (string, error) {
			g := e.DiffXYZ(v[0], v[1], v[2])
			return FormatVector(g.X, g.Y, g.Z), nil
		},
	})
	return reg
}

func scalar(f float64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return FormatNumber(f), nil
}

// Lookup finds a command by name.
func Lookup(name string) (*Command, bool) {
	c, ok := registry.Get(name)
	if !ok {
		return nil, false
	}
	return c.(*Command), true
}

// Names returns the names of all commands in alphabetical order.
func Names() []string {
	names := make([]string, 0, registry.Size())
	for _, k := range registry.Keys() {
		names = append(names, k.(string))
	}
	return names
}
