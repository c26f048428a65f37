package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/maxutil/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_Success(t *testing.T) {
	in := writeInput(t, "Equipment,Value,Utilization\nPump1,100,50%\nPump3,abc,50%\n")
	out := filepath.Join(t.TempDir(), "output.csv")

	stdout, stderr, err := execute(t, "-f", in, "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Equipment,Value,Utilization,MaxUtil\r\nPump1,100,50%,200.0\r\n", string(got))
}

func TestRootCmd_LongFlags(t *testing.T) {
	in := writeInput(t, "Value,Utilization\n1,3\n")
	out := filepath.Join(t.TempDir(), "output.csv")

	_, _, err := execute(t, "--file", in, "--output_file", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Value,Utilization,MaxUtil\r\n1,3,33.33\r\n", string(got))
}

func TestRootCmd_HeaderInvalid(t *testing.T) {
	in := writeInput(t, "Equipment,Value\nPump1,100\n")
	out := filepath.Join(t.TempDir(), "output.csv")

	stdout, _, err := execute(t, "-f", in, "-o", out)
	require.NoError(t, err)
	assert.Equal(t, core.IncorrectDataMessage+"\n", stdout)
	assert.Equal(t, 1, strings.Count(stdout, core.IncorrectDataMessage))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output file should not be created")
}

func TestRootCmd_HeaderInvalidWithoutOutput(t *testing.T) {
	in := writeInput(t, "Equipment\nPump1\n")

	stdout, _, err := execute(t, "-f", in)
	require.NoError(t, err)
	assert.Equal(t, core.IncorrectDataMessage+"\n", stdout)
}

func TestRootCmd_MissingFileFlag(t *testing.T) {
	_, _, err := execute(t, "-o", filepath.Join(t.TempDir(), "output.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"file"`)
	assert.NotErrorIs(t, err, errReported)
}

func TestRootCmd_MissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	stdout, stderr, err := execute(t, "-f", missing, "-o", filepath.Join(t.TempDir(), "output.csv"))
	require.ErrorIs(t, err, errReported)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Code: FILE001")
}

func TestRootCmd_MissingOutputFlag(t *testing.T) {
	in := writeInput(t, "Value,Utilization\n1,2\n")

	_, stderr, err := execute(t, "-f", in)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "Code: FILE006")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "-f", "in.csv", "-o", "out.csv", "extra")
	require.Error(t, err)
}

func TestRootCmd_InvalidLogConfigFallsBack(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"unknown level", "LOG_LEVEL", "trace"},
		{"unknown format", "LOG_FORMAT", "xml"},
		{"bad source flag", "LOG_SOURCE", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeInput(t, "Value,Utilization\n1,2\n")
			out := filepath.Join(t.TempDir(), "output.csv")

			var stdout, stderr bytes.Buffer
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("LOG_SOURCE", "")
			t.Setenv(tt.env, tt.val)
			cmd := newRootCmd(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs([]string{"-f", in, "-o", out})

			require.NoError(t, cmd.Execute())
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "invalid logging configuration")
			assert.Contains(t, stderr.String(), tt.env)

			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, "Value,Utilization,MaxUtil\r\n1,2,50.0\r\n", string(got))
		})
	}
}

func TestRootCmd_NoVersionFlag(t *testing.T) {
	_, _, err := execute(t, "--version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}
