package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnvFiles_SetsValues(t *testing.T) {
	t.Setenv("WR_TEST_KEY", "")
	os.Unsetenv("WR_TEST_KEY")

	path := writeEnvFile(t, ".env", "# comment\n\nWR_TEST_KEY=from-file\n")
	require.NoError(t, LoadEnvFiles(path))
	require.Equal(t, "from-file", os.Getenv("WR_TEST_KEY"))
}

func TestLoadEnvFiles_ExistingEnvWins(t *testing.T) {
	t.Setenv("WR_TEST_KEY", "from-shell")

	path := writeEnvFile(t, ".env", "WR_TEST_KEY=from-file\n")
	require.NoError(t, LoadEnvFiles(path))
	require.Equal(t, "from-shell", os.Getenv("WR_TEST_KEY"))
}

func TestLoadEnvFiles_FirstFileWins(t *testing.T) {
	t.Setenv("WR_TEST_KEY", "")
	os.Unsetenv("WR_TEST_KEY")

	first := writeEnvFile(t, "first.env", "WR_TEST_KEY=first\n")
	second := writeEnvFile(t, "second.env", "WR_TEST_KEY=second\n")
	require.NoError(t, LoadEnvFiles(first, second))
	require.Equal(t, "first", os.Getenv("WR_TEST_KEY"))
}

func TestLoadEnvFiles_MissingFileIgnored(t *testing.T) {
	require.NoError(t, LoadEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{"plain pair", "KEY=value", "KEY", "value", true},
		{"export prefix", "export KEY=value", "KEY", "value", true},
		{"double quoted", `KEY="a value"`, "KEY", "a value", true},
		{"single quoted", "KEY='a value'", "KEY", "a value", true},
		{"value with equals", "KEY=a=b", "KEY", "a=b", true},
		{"comment", "# KEY=value", "", "", false},
		{"blank", "   ", "", "", false},
		{"no separator", "KEY", "", "", false},
		{"empty key", "=value", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, val, ok := parseEnvLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantKey, key)
			require.Equal(t, tt.wantVal, val)
		})
	}
}
