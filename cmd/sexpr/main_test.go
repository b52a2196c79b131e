package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/xiam/parsec/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	a := writeFile(t, "a.sexpr", "(fn [a\tb]\n  {:k 1})")
	b := writeFile(t, "b.sexpr", "1 2.5 # trailing")

	out, errOut, err := execute(t, "", "parse", "--jobs", "2", a, b)
	require.NoError(t, err)

	assert.Equal(t, "(fn [a b] {:k 1})\n1 2.5\n", out)
	assert.Contains(t, errOut, "parsed 2 of 2 files")
	assert.Contains(t, errOut, "7 values")
}

func TestParseCommandStdin(t *testing.T) {
	out, _, err := execute(t, "[1 [2]]", "parse", "-")
	require.NoError(t, err)
	assert.Equal(t, "[1 [2]]\n", out)
}

func TestParseCommandErrors(t *testing.T) {
	good := writeFile(t, "good.sexpr", "(ok)")
	bad := writeFile(t, "bad.sexpr", "(}")

	out, errOut, err := execute(t, "", "parse", good, bad, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	assert.Equal(t, "(ok)\n", out)
	assert.Contains(t, errOut, "bad.sexpr: line 1, column 2")
	assert.Contains(t, errOut, "missing")
	assert.Contains(t, errOut, "parsed 1 of 3 files")
	assert.Contains(t, err.Error(), "2 of 3 files")
}

func TestParseCommandAutoClose(t *testing.T) {
	in := writeFile(t, "open.sexpr", "(1 [2")

	_, _, err := execute(t, "", "parse", in)
	require.Error(t, err)

	out, _, err := execute(t, "", "parse", "--auto-close", in)
	require.NoError(t, err)
	assert.Equal(t, "(1 [2])\n", out)
}

func TestParseCommandEnv(t *testing.T) {
	in := writeFile(t, "open.sexpr", "((")
	t.Setenv("SEXPR_AUTO_CLOSE", "true")

	out, _, err := execute(t, "", "parse", in)
	require.NoError(t, err)
	assert.Equal(t, "(())\n", out)
}

func TestParseCommandConfigFile(t *testing.T) {
	in := writeFile(t, "in.sexpr", "[1]")
	cfg := writeFile(t, "sexpr.yaml", "format: tree\n")

	out, _, err := execute(t, "", "parse", "--config", cfg, in)
	require.NoError(t, err)
	assert.Contains(t, out, "(list)")
	assert.Contains(t, out, "(int): 1")
}

func TestParseCommandUnknownFormat(t *testing.T) {
	in := writeFile(t, "in.sexpr", "1")

	_, _, err := execute(t, "", "parse", "--format", "xml", in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRenderYAML(t *testing.T) {
	root, err := parser.Parse([]byte(`(add 1 "two")`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatYAML, root))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "expression", doc["type"])

	items := doc["items"].([]interface{})
	require.Len(t, items, 1)

	inner := items[0].(map[string]interface{})
	assert.Equal(t, "expression", inner["type"])
	assert.Equal(t, []interface{}{"add", 1, "two"}, inner["items"])
}

func TestRenderMsgpack(t *testing.T) {
	root, err := parser.Parse([]byte(`[:a {}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatMsgpack, root))

	var doc map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "expression", doc["type"])

	list := doc["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "list", list["type"])

	items := list["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, ":a", items[0])
	assert.Equal(t, "map", items[1].(map[string]interface{})["type"])
}

func TestTokensCommand(t *testing.T) {
	in := writeFile(t, "in.sexpr", "(a 1)")

	out, _, err := execute(t, "", "tokens", in)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, in+":1:1\topen_expression\t\"(\"", lines[0])
	assert.Equal(t, in+":1:6\tEOF\t\"\"", lines[5])
}

func TestCountValues(t *testing.T) {
	root, err := parser.Parse([]byte(`1 [2 {:a "b"}] ()`))
	require.NoError(t, err)
	assert.Equal(t, 4, countValues(root))
	assert.Equal(t, 0, countValues(nil))
}
