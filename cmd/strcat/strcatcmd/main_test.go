package strcatcmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikandfor/assert"
	"nikand.dev/go/cli"

	"nikand.dev/go/strcat"
)

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	out := filepath.Join(dir, "out.txt")

	assert.NoError(t, os.WriteFile(a, []byte("Hello"), 0o600))
	assert.NoError(t, os.WriteFile(b, []byte(" World!"), 0o600))

	parts, err := readFiles([]string{a, b, a})
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("Hello"), []byte(" World!"), []byte("Hello")}, parts)

	err = writeFile(out, strcat.Bytes(parts[0], parts[1:]...))
	assert.NoError(t, err)

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "Hello World!Hello", string(data))

	_, err = readFiles([]string{a, filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer

	old := stdout
	defer func() { stdout = old }()

	stdout = &buf

	b := strcat.Buf("result")

	assert.NoError(t, output(&b, true))
	assert.Equal(t, "result\n", buf.String())

	buf.Reset()

	assert.NoError(t, writeFile("-", []byte("to stdout")))
	assert.Equal(t, "to stdout", buf.String())
}

func TestOutputError(t *testing.T) {
	old := stdout
	defer func() { stdout = old }()

	stdout = errWriter{}

	b := strcat.Buf("result")

	assert.Error(t, output(&b, false))
	assert.Error(t, writeFile("-", []byte("data")))
}

func TestApp(t *testing.T) {
	var buf bytes.Buffer

	old := stdout
	defer func() { stdout = old }()

	stdout = &buf

	run := func(args ...string) string {
		t.Helper()

		buf.Reset()

		err := cli.Run(App(), append([]string{"strcat"}, args...), nil)
		assert.NoError(t, err, "args: %q", args)

		return buf.String()
	}

	assert.Equal(t, "Hello World!", run("str", "Hello", " ", "World", "!"))
	assert.Equal(t, "Hello World!\n", run("--newline", "str", "Hello", " World!"))
	assert.Equal(t, filepath.Join("a", "b", "c"), run("path", "a", "b", "c"))

	t.Setenv("STRCAT_TEST_A", "foo")
	t.Setenv("STRCAT_TEST_B", "bar")
	assert.Equal(t, "foobar", run("env", "STRCAT_TEST_A", "STRCAT_TEST_B"))

	dir := t.TempDir()
	f := filepath.Join(dir, "in.txt")
	assert.NoError(t, os.WriteFile(f, []byte("file"), 0o600))
	assert.Equal(t, "filefile", run("files", f, f))

	res := run("bench", "literal_string/strcat")
	assert.True(t, strings.Contains(res, "literal_string"), "bench output: %q", res)
	assert.True(t, strings.Contains(res, "ns/op"), "bench output: %q", res)

	err := cli.Run(App(), []string{"strcat", "str"}, nil)
	assert.Error(t, err)
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }
