// Package ports defines the core interfaces for the application.
package ports

import "context"

// Fetcher is the network transport used by the resolver and the acquirer.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// FetchText returns the body of a small text document at url.
	// A non-success status is reported as *domain.HTTPStatusError.
	FetchText(ctx context.Context, url string) (string, error)

	// Download stores the body at url in a new temporary file and returns its path.
	// Nothing is left on disk when it fails. A non-success status is reported
	// as *domain.HTTPStatusError.
	Download(ctx context.Context, url string) (string, error)
}
