package ports

import "context"

// VersionResolver turns a version specifier into a fully qualified version.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type VersionResolver interface {
	Resolve(ctx context.Context, specifier string) (string, error)
}

// ToolAcquirer returns the path of a local executable for a resolved version,
// downloading it on a cache miss.
type ToolAcquirer interface {
	Acquire(ctx context.Context, version string) (string, error)
}
