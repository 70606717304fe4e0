package fetch_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kubesetup/internal/adapters/fetch"
	"go.trai.ch/kubesetup/internal/build"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/diag"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
			Header:     make(http.Header),
		}, nil
	}
}

// failingReader returns some data and then an error.
type failingReader struct {
	sent bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, "partial"), nil
	}
	return 0, errors.New("connection reset by peer")
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestClient_FetchText(t *testing.T) {
	var gotReq *http.Request
	client := fetch.NewWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
		gotReq = req
		return respond(http.StatusOK, "v1.31.2\n")(req)
	}), t.TempDir())

	body, err := client.FetchText(context.Background(), "https://dl.k8s.io/release/stable.txt")
	require.NoError(t, err)
	assert.Equal(t, "v1.31.2\n", body)

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodGet, gotReq.Method)
	assert.Equal(t, build.UserAgent(), gotReq.Header.Get("User-Agent"))
}

func TestClient_FetchTextStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantNotFound bool
	}{
		{name: "not found", status: http.StatusNotFound, wantNotFound: true},
		{name: "server error", status: http.StatusServiceUnavailable},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := fetch.NewWithClient(newMockClient(respond(tt.status, "<html>")), t.TempDir())

			_, err := client.FetchText(context.Background(), "https://example.com/stable.txt")

			var statusErr *domain.HTTPStatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Code())
			assert.Equal(t, tt.wantNotFound, statusErr.NotFound())
			assert.Equal(t, "https://example.com/stable.txt", statusErr.URL)
		})
	}
}

func TestClient_FetchTextTransportError(t *testing.T) {
	client := fetch.NewWithClient(newMockClient(func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: lookup dl.k8s.io: no such host")
	}), t.TempDir())

	_, err := client.FetchText(context.Background(), "https://dl.k8s.io/release/stable.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFetchFailed.Error())

	report := diag.Describe(err)
	assert.Contains(t, report, "no such host")
	assert.Contains(t, report, "Stack trace:")
}

func TestClient_Download(t *testing.T) {
	dir := t.TempDir()
	client := fetch.NewWithClient(newMockClient(respond(http.StatusOK, "ELF binary")), dir)

	path, err := client.Download(context.Background(), "https://dl.k8s.io/release/v1.30.0/bin/linux/amd64/kubectl")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "kubesetup-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ELF binary", string(data))
}

func TestClient_DownloadUniqueNames(t *testing.T) {
	dir := t.TempDir()
	client := fetch.NewWithClient(newMockClient(respond(http.StatusOK, "x")), dir)

	first, err := client.Download(context.Background(), "https://example.com/kubectl")
	require.NoError(t, err)
	second, err := client.Download(context.Background(), "https://example.com/kubectl")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, listDir(t, dir), 2)
}

func TestClient_DownloadStatusLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	client := fetch.NewWithClient(newMockClient(respond(http.StatusNotFound, "missing")), dir)

	path, err := client.Download(context.Background(), "https://example.com/kubectl")
	assert.Empty(t, path)

	var statusErr *domain.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.True(t, statusErr.NotFound())
	assert.Empty(t, listDir(t, dir))
}

func TestClient_DownloadInterruptedLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	client := fetch.NewWithClient(newMockClient(func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(&failingReader{}),
			Header:     make(http.Header),
		}, nil
	}), dir)

	path, err := client.Download(context.Background(), "https://example.com/kubectl")
	assert.Empty(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDownloadWriteFailed.Error())
	assert.Empty(t, listDir(t, dir))
}

func TestClient_DownloadMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	client := fetch.NewWithClient(newMockClient(respond(http.StatusOK, "x")), dir)

	_, err := client.Download(context.Background(), "https://example.com/kubectl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDownloadWriteFailed.Error())
}

func TestClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := fetch.NewWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	}), t.TempDir())

	_, err := client.FetchText(ctx, "https://example.com/stable.txt")
	require.Error(t, err)
}
