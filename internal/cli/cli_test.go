package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-dash/internal/config"
)

type fakeRadarr struct {
	mu      sync.Mutex
	deleted []string
	posted  []string
}

func (f *fakeRadarr) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		switch {
		case r.Method == http.MethodDelete:
			f.mu.Lock()
			f.deleted = append(f.deleted, r.URL.Path)
			f.mu.Unlock()
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost:
			f.mu.Lock()
			f.posted = append(f.posted, r.URL.Path)
			f.mu.Unlock()
			if r.URL.Path == "/api/v3/indexer/testall" {
				writeJSON(w, http.StatusBadRequest, []map[string]any{
					{"id": 1, "isValid": true},
					{"id": 2, "isValid": false, "validationFailures": []map[string]any{{"errorMessage": "Unable to connect"}}},
				})
				return
			}
			writeJSON(w, http.StatusCreated, map[string]any{"id": 9})
		case r.URL.Path == "/api/v3/system/status":
			writeJSON(w, http.StatusOK, map[string]any{"version": "5.0.0"})
		case r.URL.Path == "/api/v3/movie":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "title": "Alien", "year": 1979, "monitored": true},
				{"id": 2, "title": "Blade Runner", "year": 1982},
			})
		case r.URL.Path == "/api/v3/indexer":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "name": "NZBgeek", "protocol": "usenet", "enableRss": true},
				{"id": 2, "name": "Torrentz", "protocol": "torrent"},
			})
		case r.URL.Path == "/api/v3/rootfolder":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 3, "path": "/movies", "accessible": true},
				{"id": 4, "path": "/archive", "accessible": true},
			})
		case r.URL.Path == "/api/v3/queue" || r.URL.Path == "/api/v3/blocklist" || r.URL.Path == "/api/v3/history":
			writeJSON(w, http.StatusOK, map[string]any{"page": 1, "records": []any{}})
		default:
			writeJSON(w, http.StatusOK, []any{})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeConfig(t *testing.T, uri string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "radarr:\n  - uri: " + uri + "\n    api_token: test-key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	if opts.Environ == nil {
		opts.Environ = []string{}
	}
	cmd := NewRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	logFile := filepath.Join(t.TempDir(), "servarr-dash.log")
	cmd.SetArgs(append(args, "--log-file", logFile))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newFake(t *testing.T) (*fakeRadarr, string) {
	t.Helper()
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)
	return fake, writeConfig(t, srv.URL)
}

func TestListLibrary(t *testing.T) {
	_, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "list", "library", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Alien")
	assert.Contains(t, out, "Blade Runner")
	assert.Contains(t, out, "1982")
}

func TestListIndexers(t *testing.T) {
	_, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "list", "indexers", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "NZBgeek")
	assert.Contains(t, out, "torrent")
}

func TestListEmptyTable(t *testing.T) {
	_, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "list", "blocklist", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing found")
}

func TestListUnknownTable(t *testing.T) {
	_, cfgPath := newFake(t)
	_, err := run(t, Options{}, "radarr", "list", "episodes", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list")
}

func TestDeleteIndexerByName(t *testing.T) {
	fake, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "delete-indexer", "torrentz", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted indexer "Torrentz"`)
	assert.Contains(t, fake.deleted, "/api/v3/indexer/2")
}

func TestDeleteRootFolderByPath(t *testing.T) {
	fake, cfgPath := newFake(t)
	_, err := run(t, Options{}, "radarr", "delete-root-folder", "/archive", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, fake.deleted, "/api/v3/rootfolder/4")
}

func TestDeleteIndexerWithoutMatch(t *testing.T) {
	fake, cfgPath := newFake(t)
	_, err := run(t, Options{}, "radarr", "delete-indexer", "zzzz", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no indexer matches")
	assert.Empty(t, fake.deleted)
}

func TestTestAllIndexers(t *testing.T) {
	_, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "test-all-indexers", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "NZBgeek")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "fail")
	assert.Contains(t, out, "Unable to connect")
}

func TestRefreshQueuesCommand(t *testing.T) {
	fake, cfgPath := newFake(t)
	out, err := run(t, Options{}, "radarr", "refresh", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Queued a library refresh on Radarr")
	assert.Contains(t, fake.posted, "/api/v3/command")
}

func TestUnconfiguredBackend(t *testing.T) {
	_, cfgPath := newFake(t)
	_, err := run(t, Options{}, "sonarr", "list", "library", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sonarr")
}

func TestRootRequiresTerminal(t *testing.T) {
	_, cfgPath := newFake(t)
	called := false
	opts := Options{
		Interactive: func(io.Writer) bool { return false },
		RunTUI: func(context.Context, config.Config) error {
			called = true
			return nil
		},
	}
	_, err := run(t, opts, "--config", cfgPath)
	require.ErrorIs(t, err, ErrNotInteractive)
	assert.False(t, called)
}

func TestRootRunsDashboard(t *testing.T) {
	_, cfgPath := newFake(t)
	var got config.Config
	started := false
	opts := Options{
		Interactive: func(io.Writer) bool { return true },
		Startup:     func(config.Config) { started = true },
		RunTUI: func(_ context.Context, cfg config.Config) error {
			got = cfg
			return nil
		},
	}
	_, err := run(t, opts, "--config", cfgPath, "--workers", "3")
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, 3, got.Network.Workers)
	assert.Equal(t, cfgPath, got.Path)
}

func TestMissingConfigIsConfigError(t *testing.T) {
	_, err := run(t, Options{}, "radarr", "list", "library", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "unexpected error %v", err)
}

func TestEmptyConfigIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600))
	_, err := run(t, Options{}, "radarr", "list", "library", "--config", path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "no servarr configured")
}

func TestSizeUsesBinaryUnits(t *testing.T) {
	assert.Equal(t, "1.5 GiB", size(3<<29))
	assert.Equal(t, "0 B", size(-5))
}
