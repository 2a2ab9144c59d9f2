package script

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/xyzcalc/commands"
	"github.com/npillmayer/xyzcalc/evaluator"
	lua "github.com/yuin/gopher-lua"
)

// Runtime is a Lua interpreter with the engine bindings installed.
type Runtime struct {
	state *lua.LState
	out   io.Writer
}

// New creates a Lua runtime. Output of Lua's print goes to out, which
// defaults to os.Stdout.
func New(out io.Writer) *Runtime {
	if out == nil {
		out = os.Stdout
	}
	rt := &Runtime{state: lua.NewState(), out: out}
	rt.install()
	return rt
}

// Close releases the Lua state.
func (rt *Runtime) Close() {
	rt.state.Close()
}

// RunString executes a chunk of Lua source.
func (rt *Runtime) RunString(source string) error {
	tracer().Debugf("running Lua chunk of %d bytes", len(source))
	return rt.state.DoString(source)
}

// RunFile executes a Lua script file.
func (rt *Runtime) RunFile(path string) error {
	tracer().Infof("running Lua script %s", path)
	return rt.state.DoFile(path)
}

func (rt *Runtime) install() {
	L := rt.state
	for name, fn := range map[string]lua.LGFunction{
		"eval":    rt.eval,
		"evalx":   rt.evalx,
		"evalxy":  rt.evalxy,
		"evalxyz": rt.evalxyz,
		"diffx":   rt.diffx,
		"diffxy":  rt.diffxy,
		"diffxyz": rt.diffxyz,
		"execute": rt.execute,
		"print":   rt.print,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// expression compiles argument 1 of a call, raising a Lua error on failure.
func expression(L *lua.LState) *evaluator.Expression {
	e, err := evaluator.New(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	return e
}

// numbers returns n numeric arguments, starting with argument 2.
func numbers(L *lua.LState, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(L.CheckNumber(i + 2))
	}
	return v
}

func push(L *lua.LState, values ...float64) int {
	for _, v := range values {
		L.Push(lua.LNumber(v))
	}
	return len(values)
}

func check(L *lua.LState, err error) {
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
}

func (rt *Runtime) eval(L *lua.LState) int {
	v, err := expression(L).Eval(0)
	check(L, err)
	return push(L, v)
}

func (rt *Runtime) evalx(L *lua.LState) int {
	e, a := expression(L), numbers(L, 1)
	v, err := e.Eval(a[0])
	check(L, err)
	return push(L, v)
}

func (rt *Runtime) evalxy(L *lua.LState) int {
	e, a := expression(L), numbers(L, 2)
	v, err := e.EvalXY(a[0], a[1])
	check(L, err)
	return push(L, v)
}

func (rt *Runtime) evalxyz(L *lua.LState) int {
	e, a := expression(L), numbers(L, 3)
	return push(L, e.EvalXYZ(a[0], a[1], a[2]))
}

func (rt *Runtime) diffx(L *lua.LState) int {
	e, a := expression(L), numbers(L, 1)
	v, err := e.DiffX(a[0])
	check(L, err)
	return push(L, v)
}

func (rt *Runtime) diffxy(L *lua.LState) int {
	e, a := expression(L), numbers(L, 2)
	g, err := e.DiffXY(a[0], a[1])
	check(L, err)
	return push(L, g.X, g.Y)
}

func (rt *Runtime) diffxyz(L *lua.LState) int {
	e, a := expression(L), numbers(L, 3)
	g := e.DiffXYZ(a[0], a[1], a[2])
	return push(L, g.X, g.Y, g.Z)
}

// execute hands a command line to the dispatcher and returns its text.
func (rt *Runtime) execute(L *lua.LState) int {
	L.Push(lua.LString(commands.Execute(L.CheckString(1))))
	return 1
}

// print writes its arguments to the runtime's output, separated by tabs.
func (rt *Runtime) print(L *lua.LState) int {
	top := L.GetTop()
	args := make([]string, top)
	for i := 1; i <= top; i++ {
		args[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	io.WriteString(rt.out, strings.Join(args, "\t")+"\n")
	return 0
}
