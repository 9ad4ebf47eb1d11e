package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "sqlite:///./dev.db", want: "./dev.db"},
		{url: "sqlite:///var/lib/videoalert/app.db", want: "var/lib/videoalert/app.db"},
		{url: "sqlite://data/app.db", want: "data/app.db"},
		{url: "file:app.db", want: "app.db"},
		{url: "app.db", want: "app.db"},
		{url: "mysql://localhost/videoalert", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := SQLitePath(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "app.db")

	gdb, err := Connect(Config{URL: "sqlite:///" + path})
	require.NoError(t, err)
	defer func() { _ = Close(gdb) }()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The handle is usable.
	require.NoError(t, gdb.Exec("SELECT 1").Error)
}

func TestConnectRejectsUnknownScheme(t *testing.T) {
	_, err := Connect(Config{URL: "mysql://localhost/videoalert"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database URL")
}

func TestConnectRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Connect(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
