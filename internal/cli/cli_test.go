package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

// newPostsServer serves n posts with ids n..1 and titles "post 01".."post n".
func newPostsServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	items := make([]posts.Post, 0, n)
	for i := n; i >= 1; i-- {
		items = append(items, posts.Post{ID: i, Title: fmt.Sprintf("post %02d", n-i+1), Body: fmt.Sprintf("body %d", i)})
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}))
	t.Cleanup(server.Close)
	return server
}

// executeCmd runs the root command with args in an isolated POSTVIEW_HOME.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvLoadingDelay, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	cmd := NewRootCmd("1.2.3")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeList(t *testing.T, out string) listResult {
	t.Helper()
	var result listResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestListCmd_JSON(t *testing.T) {
	server := newPostsServer(t, 25)

	tests := []struct {
		name    string
		args    []string
		wantIDs []int
		page    int
		hasNext bool
	}{
		{
			name:    "first page by id",
			args:    []string{"--sort", "id"},
			wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			page:    1,
			hasNext: true,
		},
		{
			name:    "last page by id",
			args:    []string{"--sort", "id", "--page", "3"},
			wantIDs: []int{21, 22, 23, 24, 25},
			page:    3,
		},
		{
			name:    "title order is the default",
			args:    nil,
			wantIDs: []int{25, 24, 23, 22, 21, 20, 19, 18, 17, 16},
			page:    1,
			hasNext: true,
		},
		{
			name:    "page past the end",
			args:    []string{"--page", "9"},
			wantIDs: []int{},
			page:    9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--endpoint", server.URL, "-o", "json"}, tt.args...)
			out, _, err := executeCmd(t, args...)
			require.NoError(t, err)

			result := decodeList(t, out)
			assert.Equal(t, tt.wantIDs, posts.IDs(result.Posts))
			assert.Equal(t, tt.page, result.Pagination.CurrentPage)
			assert.Equal(t, 3, result.Pagination.TotalPages)
			assert.Equal(t, 25, result.Pagination.TotalItems)
			assert.Equal(t, tt.hasNext, result.Pagination.HasNext)
		})
	}
}

func TestListCmd_Table(t *testing.T) {
	server := newPostsServer(t, 12)

	out, stderr, err := executeCmd(t, "list", "--endpoint", server.URL, "--sort", "id", "--page", "2", "--bodies", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "post 01")
	assert.Contains(t, out, "body 12")
	assert.NotContains(t, out, "post 03")
	assert.Contains(t, out, "Page 2 of 2")
	assert.Contains(t, stderr, "Logging to")
}

func TestListCmd_FetchFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	out, _, err := executeCmd(t, "list", "--endpoint", server.URL, "-o", "json")
	require.NoError(t, err, "a failed fetch is not a command error")

	result := decodeList(t, out)
	assert.Empty(t, result.Posts)
	assert.NotNil(t, result.Posts)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrevious)
}

func TestListCmd_FetchFailureIsLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(server.Close)

	out, stderr, err := executeCmd(t, "list", "--endpoint", server.URL, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "No posts to display.")
	assert.Contains(t, out, "Page 1 of 1")

	// The log file lives under the temp POSTVIEW_HOME; its path is announced on stderr.
	require.Contains(t, stderr, "Logging to ")
	logPath := strings.TrimSpace(strings.TrimPrefix(strings.SplitN(stderr, "\n", 2)[0], "Logging to "))
	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "error fetching posts")
	assert.Equal(t, "postview.log", filepath.Base(logPath))
}

func TestListCmd_UsageErrors(t *testing.T) {
	server := newPostsServer(t, 1)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "bad sort", args: []string{"--sort", "date"}, wantErr: pagination.ErrInvalidSortMethod},
		{name: "page zero", args: []string{"--page", "0"}, wantErr: pagination.ErrInvalidPage},
		{name: "bad output", args: []string{"-o", "xml"}, wantErr: ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--endpoint", server.URL}, tt.args...)
			_, _, err := executeCmd(t, args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "relative endpoint", args: []string{"list", "--endpoint", "/posts"}},
		{name: "negative delay", args: []string{"list", "--delay", "-1s"}},
		{name: "missing config file", args: []string{"list", "--config", "/nonexistent/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestRootCmd_ConfigFileAndFlags(t *testing.T) {
	server := newPostsServer(t, 15)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("api:\n  endpoint: %s\nview:\n  default_sort: id\n", server.URL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	out, _, err := executeCmd(t, "list", "--config", path, "-o", "json")
	require.NoError(t, err)
	result := decodeList(t, out)
	assert.Equal(t, 1, posts.IDs(result.Posts)[0], "sort comes from the config file")

	cfg := config.GetGlobalConfig()
	assert.Equal(t, server.URL, cfg.API.Endpoint)
}

func TestRootCmd_NonInteractiveFallsBackToList(t *testing.T) {
	server := newPostsServer(t, 3)

	// Test binaries have no terminal on stdout, so the root command prints a page.
	out, _, err := executeCmd(t, "--endpoint", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "post 01")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestRootCmd_DebugLogsToStderr(t *testing.T) {
	server := newPostsServer(t, 3)

	_, stderr, err := executeCmd(t, "list", "--endpoint", server.URL, "--debug", "--plain")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Logging to")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "postview 1.2.3\n", out)
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd("dev")
	assert.Equal(t, "postview", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"browse", "list", "version"})

	for _, flag := range []string{"config", "endpoint", "delay", "debug", "plain", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}
