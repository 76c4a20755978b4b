// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyMailto, "  xas@example.org \n")
				writeFile(t, dir, KeyPlusToken, "tok_123")
				return dir
			},
			want: Secrets{KeyMailto: "xas@example.org", KeyPlusToken: "tok_123"},
		},
		{
			name: "missing directory is empty",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyMailto, "a@b.org")
				writeFile(t, dir, "blank", "  \n\t")
				writeFile(t, dir, ".gitkeep", "")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Secrets{KeyMailto: "a@b.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, KeyMailto, "a@b.org")

	badPath := filepath.Join(dir, KeyPlusToken)
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warn bytes.Buffer
	got, err := Load(dir, &warn)
	require.NoError(t, err)
	assert.Equal(t, Secrets{KeyMailto: "a@b.org"}, got)
	assert.Contains(t, warn.String(), KeyPlusToken)
}

func TestOr(t *testing.T) {
	s := Secrets{KeyMailto: "stored@example.org"}
	assert.Equal(t, "flag@example.org", s.Or(KeyMailto, "flag@example.org"))
	assert.Equal(t, "stored@example.org", s.Or(KeyMailto, ""))
	assert.Equal(t, "", s.Or(KeyPlusToken, ""))
}

func TestNames(t *testing.T) {
	s := Secrets{KeyPlusToken: "x", KeyMailto: "y"}
	assert.Equal(t, []string{KeyMailto, KeyPlusToken}, s.Names())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
