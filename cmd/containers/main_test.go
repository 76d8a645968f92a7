package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTreeCmd(t *testing.T) {
	out, errOut, err := run(t, "tree", "b=2", "a=1", "c=3", "a=9", "--erase", "c,z")
	require.NoError(t, err)
	require.Equal(t, "Key: \"a\",  Value: \"1\"\nKey: \"b\",  Value: \"2\"\nsize: 2, height: 1\n", out)
	require.Contains(t, errOut, "duplicate key \"a\" ignored")
	require.Contains(t, errOut, "key \"z\" not found")

	_, _, err = run(t, "tree", "novalue")
	require.Error(t, err)
}

func TestTreeCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entries:
  - {key: Ricardo, value: "2.5"}
  - {key: Ellen, value: "3.5"}
  - {key: Chen, value: "2.5"}
  - {key: Kevin, value: "3.25"}
  - {key: Kumar, value: "3.05"}
erase: [Kevin]
`), 0644))
	out, _, err := run(t, "tree", "--file", path, "--draw")
	require.NoError(t, err)
	require.Contains(t, out, "|------+ Ellen ^<nil> h=2\n")
	require.Contains(t, out, "Key: \"Kumar\",  Value: \"3.05\"\n")
	require.NotContains(t, out, "Kevin")
	require.Contains(t, out, "size: 4, height: 2\n")

	_, _, err = run(t, "tree", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`
entries:
  - {key: a, value: "1"}
  - {key: a, value: "2"}
`), 0644))
	out, errOut, err := run(t, "tree", "--file", path, "a=3")
	require.NoError(t, err)
	require.Equal(t, "duplicate key \"a\" ignored\nduplicate key \"a\" ignored\n", errOut)
	require.Contains(t, out, "Key: \"a\",  Value: \"1\"\n")
}

func TestSeqCmds(t *testing.T) {
	out, _, err := run(t, "list", "--null", "--reverse", "a", "b", "c")
	require.NoError(t, err)
	require.Equal(t, "null-terminated list of 3: c, b, a\nbackward: a, b, c\n", out)

	out, _, err = run(t, "queue", "a", "b", "c")
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\n", out)
	_, _, err = run(t, "queue", "--capacity", "2", "a", "b", "c")
	require.Error(t, err)

	out, _, err = run(t, "stack", "a", "b", "c")
	require.NoError(t, err)
	require.Equal(t, "c\nb\na\n", out)
	_, _, err = run(t, "stack", "--capacity", "2", "a", "b", "c")
	var full *Go_Containers.FullError
	require.ErrorAs(t, err, &full)
	require.Equal(t, 2, full.Capacity)
}
