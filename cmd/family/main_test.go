package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantBothSessions = "Client: testing client code with factory variant1:\n" +
	"The result of the product B1.\n" +
	"The result of the B1 collaborating with the (The result of the product A1.)\n" +
	"\n" +
	"Client: testing client code with factory variant2:\n" +
	"The result of the product B2.\n" +
	"The result of the B2 collaborating with the (The result of the product A2.)\n"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FAMILY_CONFIG", "FAMILY_VARIANTS", "FAMILY_LISTEN_ADDR",
		"FAMILY_LOG_LEVEL", "FAMILY_LOG_FORMAT",
		"FAMILY_DEBUG", "FAMILY_DEBUG_SINGLE_THREAD",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	// keep bootstrap logs out of test output
	t.Setenv("FAMILY_LOG_LEVEL", "error")
}

func newTestRegistry(t *testing.T) (*CommandRegistry, *bytes.Buffer) {
	t.Helper()
	clearEnv(t)
	var out bytes.Buffer
	r := NewCommandRegistry(VersionInfo{Version: "dev", Commit: "none", Date: "unknown"}, &out, &out)
	registerCommands(r, &out)
	return r, &out
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExecute_NoCommand(t *testing.T) {
	r, out := newTestRegistry(t)

	err := r.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, out.String(), "COMMANDS:")
}

func TestExecute_UnknownCommand(t *testing.T) {
	r, _ := newTestRegistry(t)

	err := r.Execute([]string{"deploy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: deploy")
}

func TestHelp_ListsCommandsInOrder(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"help"}))

	help := out.String()
	prev := -1
	for _, name := range []string{"run", "serve", "variants", "validate", "version", "help"} {
		idx := bytes.Index([]byte(help), []byte("    "+name+" "))
		require.GreaterOrEqual(t, idx, 0, "help should list %s", name)
		assert.Greater(t, idx, prev, "%s out of order", name)
		prev = idx
	}
}

func TestHelp_Command(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"help", "run"}))
	assert.Contains(t, out.String(), "family run [--variant N]...")

	assert.Error(t, r.Execute([]string{"help", "nope"}))
}

func TestRun_Defaults(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"run", "--check"}))
	assert.Equal(t, wantBothSessions, out.String())
}

func TestRun_SelectedVariant(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"run", "--variant", "2"}))
	assert.Equal(t, "Client: testing client code with factory variant2:\n"+
		"The result of the product B2.\n"+
		"The result of the B2 collaborating with the (The result of the product A2.)\n", out.String())
}

func TestRun_ConfigFile(t *testing.T) {
	r, out := newTestRegistry(t)
	path := writeConfig(t, `
session:
  variants: ["variant1", "variant2"]
`)

	require.NoError(t, r.Execute([]string{"run", "--config", path}))
	assert.Equal(t, wantBothSessions, out.String())
}

func TestRun_ConfigFromEnv(t *testing.T) {
	r, out := newTestRegistry(t)
	path := writeConfig(t, `
session:
  variants: ["1"]
`)
	t.Setenv("FAMILY_CONFIG", path)

	require.NoError(t, r.Execute([]string{"run"}))
	assert.Contains(t, out.String(), "factory variant1:")
	assert.NotContains(t, out.String(), "factory variant2:")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unwired variant", []string{"run", "--variant", "3"}, "configured variant not available"},
		{"malformed variant", []string{"run", "--variant", "x"}, "invalid configuration"},
		{"missing config", []string{"run", "--config", "/nonexistent/family.yaml"}, "failed to load config"},
		{"unknown flag", []string{"run", "--bogus"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRegistry(t)
			err := r.Execute(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_HelpFlag(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"run", "-h"}))
	assert.Contains(t, out.String(), "-variant")
}

func TestVariants(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"variants"}))

	got := out.String()
	for _, want := range []string{"variant1", "variant2", "A1", "B2", "The result of the product A2.", "2 variants wired"} {
		assert.Contains(t, got, want)
	}
}

func TestValidate(t *testing.T) {
	r, out := newTestRegistry(t)
	path := writeConfig(t, `
version: 1
session:
  variants: ["2"]
server:
  listen_addr: ":9999"
`)

	require.NoError(t, r.Execute([]string{"validate", path}))
	assert.Contains(t, out.String(), "✓ Valid configuration")
	assert.Contains(t, out.String(), "Variants: variant2")
	assert.Contains(t, out.String(), "Listen address: :9999")
}

func TestValidate_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		err := r.Execute([]string{"validate"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file path required")
	})

	t.Run("unknown key", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		path := writeConfig(t, "sessions:\n  variants: [\"1\"]\n")
		err := r.Execute([]string{"validate", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("empty variants", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		path := writeConfig(t, "version: 1\n")
		err := r.Execute([]string{"validate", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestVersion(t *testing.T) {
	r, out := newTestRegistry(t)

	require.NoError(t, r.Execute([]string{"version"}))
	assert.Equal(t, "family dev (commit: none, built: unknown)\n", out.String())

	out.Reset()
	require.NoError(t, r.Execute([]string{"version", "--verbose"}))
	assert.Contains(t, out.String(), "Go version")
}

func TestTableWriter(t *testing.T) {
	table := NewTableWriter([]string{"A", "Long header"})
	table.AddRow([]string{"wide cell", "x"})

	var buf bytes.Buffer
	table.Print(&buf)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 5)
	assert.Equal(t, "│ A         │ Long header │", string(lines[1]))
	assert.Equal(t, "│ wide cell │ x           │", string(lines[3]))
}
