package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/listmenu/internal/history"
)

// isolate points config discovery at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderFromValues(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "render",
		"--value", "alpha", "--value", "beta", "--value", "gamma",
		"--width", "80", "--height", "24", "--event", "next")
	require.NoError(t, err)

	assert.Contains(t, out, "0: alpha\n")
	assert.Contains(t, out, "1: >BETA\n")
	assert.Contains(t, out, "2: gamma\n")
	assert.Contains(t, out, "total: 3")
	assert.NotContains(t, out, "\r")
}

func TestRenderTypeFilters(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "render",
		"--value", "alpha", "--value", "beta",
		"--width", "80", "--height", "24", "--event", "type:al")
	require.NoError(t, err)

	assert.Contains(t, out, "ALPHA")
	assert.NotContains(t, out, "beta")
	assert.Contains(t, out, "total: 1")
}

func TestRenderAccept(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "render",
		"--value", "alpha", "--value", "beta",
		"--width", "80", "--height", "24", "--event", "next", "--accept")
	require.NoError(t, err)
	assert.Equal(t, "beta\n", out)
}

func TestRenderUnknownEvent(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "render", "--value", "a", "--event", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestRenderRejectsNegativeSize(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "render", "--value", "a", "--width", "-1")
	require.Error(t, err)
}

func TestInvalidPageSizeFlag(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "render", "--value", "a", "--page-size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")
}

func TestRenderFromHistory(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")

	_, err := execute(t, "git status\ngit commit\nls -la\n", "history", "import", "--history-db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "render", "--history-db", db,
		"--width", "80", "--height", "24", "--event", "type:git")
	require.NoError(t, err)
	assert.Contains(t, out, "0: >GIT COMMIT\n")
	assert.Contains(t, out, "1: git status\n")
	assert.NotContains(t, out, "ls -la")
}

func TestRenderHistoryFilter(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")

	_, err := execute(t, "make\nmake test\nmake lint\n", "history", "import", "--history-db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "render", "--history-db", db,
		"--filter", `value.startsWith("make ")`, "--width", "80", "--height", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 2")
	assert.NotContains(t, out, ": make\n")
}

func TestRenderBadFilter(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "render", "--value", "a", "--filter", "value +")
	require.Error(t, err)
}

func TestHistoryAddAndList(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, "", "history", "add", "--history-db", db, "git", "status")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = execute(t, "", "history", "add", "--history-db", db, "make test")
	require.NoError(t, err)

	out, err = execute(t, "", "history", "list", "--history-db", db)
	require.NoError(t, err)
	assert.Equal(t, "    1  git status\n    2  make test\n", out)

	out, err = execute(t, "", "history", "list", "--history-db", db, "--tail", "1")
	require.NoError(t, err)
	assert.Equal(t, "    2  make test\n", out)
}

func TestHistoryGetAndDelete(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := execute(t, "git status\nmake test\n", "history", "import", "--history-db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "history", "get", "--history-db", db, "2")
	require.NoError(t, err)
	assert.Equal(t, "make test\n", out)

	out, err = execute(t, "", "history", "delete", "--history-db", db, "1")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1, 1 entries left\n", out)

	_, err = execute(t, "", "history", "get", "--history-db", db, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, history.ErrNotFound)

	_, err = execute(t, "", "history", "delete", "--history-db", db, "1")
	assert.ErrorIs(t, err, history.ErrNotFound)

	out, err = execute(t, "", "history", "list", "--history-db", db)
	require.NoError(t, err)
	assert.Equal(t, "    2  make test\n", out)
}

func TestHistoryGetRejectsBadSeq(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")
	for _, arg := range []string{"0", "-3", "abc"} {
		_, err := execute(t, "", "history", "get", "--history-db", db, "--", arg)
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "positive integer")
	}
}

func TestHistoryListRejectsLimitAndTail(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := execute(t, "", "history", "list", "--history-db", db, "--limit", "1", "--tail", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestHistoryImportCount(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "history.db")
	out, err := execute(t, "one\n\n  \ntwo\n", "history", "import", "--history-db", db)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 entries\n", out)
}

func TestConfigGetAppliesFlags(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "config", "get", "--page-size", "3", "--marker", ">> ")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size: 3")
	assert.Contains(t, out, ">> ")

	out, err = execute(t, "", "config", "get", "-o", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[menu]")
	assert.Contains(t, out, "page_size = 10")
}

func TestConfigGetReadsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\npage_size = 7\n"), 0o600))

	out, err := execute(t, "", "config", "get", "--config-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "page_size: 7")
	assert.Contains(t, out, "max_entry_lines: 5")
}

func TestConfigGetUnknownFormat(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "config", "get", "-o", "json")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "listmenu "))
	assert.Equal(t, versionString()+"\n", out)
}
