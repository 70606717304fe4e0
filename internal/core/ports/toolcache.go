package ports

// ToolCache stores downloaded tool binaries keyed by tool, version and architecture.
//
// Implementations must tolerate concurrent processes sharing the same cache and
// must never overwrite a committed entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolcache.go -destination=mocks/mock_toolcache.go -package=mocks
type ToolCache interface {
	// Find returns the directory of a committed entry, or "" when there is none.
	Find(tool, version, arch string) (string, error)

	// CacheFile copies src into the entry for (tool, version, arch) under the
	// name destName and returns the entry directory.
	CacheFile(src, destName, tool, version, arch string) (string, error)

	// Root returns the directory holding every entry.
	Root() string
}
