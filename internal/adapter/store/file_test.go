package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeEndpointsFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const twoEndpointsTOML = `
[[endpoints]]
url = "https://a.example.com"
api_key = "ka"
enabled = true

[[endpoints]]
url = "https://b.example.com"
api_key = "kb"
enabled = false
`

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	writeEndpointsFile(t, path, twoEndpointsTOML)

	fs, err := NewFileSource(testLogger(), path)
	require.NoError(t, err)
	defer fs.Close()

	rows, err := fs.ListEndpointConfigs(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "https://a.example.com", rows[0].URL)
	assert.Equal(t, "ka", rows[0].APIKey)
	assert.True(t, rows[0].Enabled)

	assert.Equal(t, int64(2), rows[1].ID)
	assert.False(t, rows[1].Enabled)
}

func TestFileSource_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileSource(testLogger(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestFileSource_MalformedTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	writeEndpointsFile(t, path, `[[endpoints]`)

	_, err := NewFileSource(testLogger(), path)
	require.Error(t, err)
}

func TestFileSource_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	writeEndpointsFile(t, path, twoEndpointsTOML)

	fs, err := NewFileSource(testLogger(), path)
	require.NoError(t, err)
	defer fs.Close()

	rows, err := fs.ListEndpointConfigs(context.Background())
	require.NoError(t, err)
	rows[0].URL = "mutated"

	again, err := fs.ListEndpointConfigs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://a.example.com", again[0].URL)
}

func TestFileSource_WatchReloadsOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.toml")
	writeEndpointsFile(t, path, twoEndpointsTOML)

	fs, err := NewFileSource(testLogger(), path)
	require.NoError(t, err)
	defer fs.Close()

	reloaded := make(chan struct{}, 1)
	require.NoError(t, fs.Watch(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}))

	writeEndpointsFile(t, path, `
[[endpoints]]
url = "https://c.example.com"
api_key = "kc"
enabled = true
`)

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("reload callback never fired")
	}

	rows, err := fs.ListEndpointConfigs(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://c.example.com", rows[0].URL)
}
