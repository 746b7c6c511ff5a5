package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessro/tripid/internal/config"
	"github.com/tessro/tripid/internal/id"
	"github.com/tessro/tripid/internal/version"
)

var lineRegex = regexp.MustCompile(`^[A-Za-z0-9 ]+: [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_NoArgs(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Regexp(t, lineRegex, line)
	}
	assert.True(t, strings.HasPrefix(lines[0], "Test Trip Request ID: "))
	assert.Equal(t, "SQL Test Trip ID: ba85c75a-3087-4141-bccf-d636f77fffbc", lines[1])
	assert.True(t, id.IsVersion4(strings.TrimPrefix(lines[0], "Test Trip Request ID: ")))
}

func TestRoot_TwoRunsDiffer(t *testing.T) {
	first, _, err := execute(t)
	require.NoError(t, err)
	second, _, err := execute(t)
	require.NoError(t, err)

	assert.NotEqual(t, strings.SplitN(first, "\n", 2)[0], strings.SplitN(second, "\n", 2)[0])
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRoot_Flags(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		stdout, _, err := execute(t, "--count", "3")
		require.NoError(t, err)
		assert.Equal(t, 4, strings.Count(stdout, "\n"))
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"sql_test_trip_id": "ba85c75a-3087-4141-bccf-d636f77fffbc"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := execute(t, "-f", "xml")
		assert.Error(t, err)
	})

	t.Run("color without terminal", func(t *testing.T) {
		t.Setenv("CLICOLOR_FORCE", "")
		stdout, _, err := execute(t, "--color")
		require.NoError(t, err)
		assert.Contains(t, stdout, "SQL Test Trip ID: ba85c75a-3087-4141-bccf-d636f77fffbc\n")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "trace")
		assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	})

	t.Run("debug logs to stderr", func(t *testing.T) {
		stdout, stderr, err := execute(t, "--log-level", "debug")
		require.NoError(t, err)
		assert.Contains(t, stderr, "generated trip request id")
		assert.Equal(t, 2, strings.Count(stdout, "\n"))
	})
}

func TestRoot_Config(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[output]
format = "yaml"
count = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Run("config applies", func(t *testing.T) {
		stdout, _, err := execute(t, "--config", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "test_trip_request_id:\n")
		assert.Contains(t, stdout, "sql_test_trip_id: ba85c75a-3087-4141-bccf-d636f77fffbc\n")
	})

	t.Run("flags override config", func(t *testing.T) {
		stdout, _, err := execute(t, "--config", path, "--format", "text", "--count", "1")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(stdout, "\n"))
	})

	t.Run("missing config", func(t *testing.T) {
		_, _, err := execute(t, "--config", filepath.Join(dir, "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("[output]\ncount = -4\n"), 0600))
		_, _, err := execute(t, "--config", bad)
		assert.ErrorIs(t, err, config.ErrInvalidCount)
	})
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stdout, _, err := execute(t, "check", "ba85c75a-3087-4141-bccf-d636f77fffbc")
		require.NoError(t, err)
		assert.Equal(t, "ok ba85c75a-3087-4141-bccf-d636f77fffbc\n", stdout)
	})

	t.Run("mixed", func(t *testing.T) {
		stdout, _, err := execute(t, "check", "3fa85f64-5717-4562-b3fc-2c963f66afa6", "trip-1")
		assert.ErrorIs(t, err, ErrInvalidIdentifiers)
		assert.Contains(t, stdout, "ok 3fa85f64-5717-4562-b3fc-2c963f66afa6\n")
		assert.Contains(t, stdout, "invalid trip-1: "+id.ErrNotCanonical.Error())
	})

	t.Run("requires args", func(t *testing.T) {
		_, _, err := execute(t, "check")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tripid "+version.Version+" (commit: "+version.Commit+", built: "+version.Date+")\n", stdout)
}
