// Package fetch implements the HTTP transport for release pointers and binaries.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/kubesetup/internal/build"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/kubesetup/internal/diag"
	"go.trai.ch/zerr"
)

// maxTextBytes bounds the size of a pointer document.
const maxTextBytes = 1 << 20

var _ ports.Fetcher = (*Client)(nil)

// Client implements ports.Fetcher over net/http.
type Client struct {
	httpClient *http.Client
	tempDir    string
}

// New creates a Client whose requests time out after timeout.
// Downloads are written to the system temp directory.
func New(timeout time.Duration) *Client {
	return NewWithClient(&http.Client{Timeout: timeout}, os.TempDir())
}

// NewWithClient creates a Client with a custom http client and download directory.
func NewWithClient(client *http.Client, tempDir string) *Client {
	return &Client{
		httpClient: client,
		tempDir:    filepath.Clean(tempDir),
	}
}

// FetchText returns the body of the document at url.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTextBytes))
	if err != nil {
		return "", diag.WithStack(zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url))
	}
	return string(body), nil
}

// Download streams the body at url into a new file in the download directory
// and returns its path. The file is removed again when the transfer fails.
func (c *Client) Download(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	path := filepath.Join(c.tempDir, domain.AppDirName+"-"+uuid.NewString())
	//nolint:gosec // Path is generated inside the download directory
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, domain.FilePerm)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "path", path)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return "", diag.WithStack(zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "url", url))
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// get issues a GET request and rejects every status other than 200.
// Status failures are returned as *domain.HTTPStatusError without wrapping.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	req.Header.Set("User-Agent", build.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, diag.WithStack(zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url))
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxTextBytes))
		_ = resp.Body.Close()
		return nil, &domain.HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
