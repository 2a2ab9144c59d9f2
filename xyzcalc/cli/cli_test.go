package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	for i, test := range []struct {
		line, output string
	}{
		{"evalx(2x+2, 2)", "6.0\n"},
		{"ｅｖａｌ（２＋２）", "4.0\n"},
		{"diffxy(2x^2+2y^2, 2, 3)", "{8.0, 12.0}\n"},
		{"nonsense", "Invalid command\n"},
	} {
		out := &bytes.Buffer{}
		batch(test.line, out)
		if out.String() != test.output {
			t.Errorf("test %d: expected %q, have %q", i, test.output, out.String())
		}
	}
}

func TestSampleCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	out := &bytes.Buffer{}
	sampleCmd.SetOut(out)
	defer sampleCmd.SetOut(nil)
	require.NoError(t, sampleCmd.Flags().Set("bounds", "-2,2,-2,2,-2,2"))
	require.NoError(t, sampleCmd.Flags().Set("resolution", "5"))
	err := runSampleCmd(sampleCmd, []string{"x^2+y^2+z^2", "=", "1"})
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "x^2+y^2+z^2-(1)")
	assert.Contains(t, s, "5×5×5")
	assert.Contains(t, s, "-1.0")
	assert.Contains(t, s, "11.0")
	//
	err = runSampleCmd(sampleCmd, []string{"x=y=z"})
	assert.Error(t, err)
	require.NoError(t, sampleCmd.Flags().Set("bounds", "0,1"))
	err = runSampleCmd(sampleCmd, []string{"x"})
	assert.Error(t, err)
}

func TestScriptCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "hello.lua")
	require.NoError(t, os.WriteFile(path, []byte(`print(execute("eval(2+2)"))`), 0o644))
	out := &bytes.Buffer{}
	scriptCmd.SetOut(out)
	defer scriptCmd.SetOut(nil)
	require.NoError(t, scriptCmd.RunE(scriptCmd, []string{path}))
	assert.Equal(t, "4.0\n", out.String())
}

func TestHistoryFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.cli")
	defer teardown()
	//
	dir := t.TempDir()
	h := historyFile(testPaths{dir: filepath.Join(dir, "xyzcalc")})
	assert.Equal(t, filepath.Join(dir, "xyzcalc", "repl-history"), h)
	_, err := os.Stat(filepath.Join(dir, "xyzcalc"))
	assert.NoError(t, err)
	assert.Equal(t, "", historyFile(testPaths{}))
}

type testPaths struct {
	dir string
}

func (p testPaths) ConfigDir() string { return p.dir }
func (p testPaths) LogDir() string    { return p.dir }
