package toolcache_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kubesetup/internal/adapters/toolcache"
	"go.trai.ch/kubesetup/internal/core/domain"
)

func fmtDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "download")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCache_FindMissing(t *testing.T) {
	c := toolcache.New(t.TempDir())

	dir, err := c.Find("kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Empty(t, dir)
}

func TestCache_CacheFileThenFind(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)
	src := writeSource(t, "#!/bin/sh\necho kubectl\n")

	dir, err := c.CacheFile(src, "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "kubectl", "1.30.0", "amd64"), dir)

	data, err := os.ReadFile(filepath.Join(dir, "kubectl"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho kubectl\n", string(data))

	found, err := c.Find("kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Equal(t, dir, found)

	_, err = os.Stat(src)
	assert.NoError(t, err, "source is copied, not moved")
}

func TestCache_KeyedByArch(t *testing.T) {
	c := toolcache.New(t.TempDir())

	_, err := c.CacheFile(writeSource(t, "amd"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)

	dir, err := c.Find("kubectl", "v1.30.0", "arm64")
	require.NoError(t, err)
	assert.Empty(t, dir)
}

func TestCache_Marker(t *testing.T) {
	c := toolcache.New(t.TempDir())
	content := "binary payload"

	_, err := c.CacheFile(writeSource(t, content), "kubectl.exe", "kubectl", "v1.29.3", "amd64")
	require.NoError(t, err)

	marker, err := c.Marker("kubectl", "v1.29.3", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "kubectl.exe", marker.File)
	assert.Equal(t, int64(len(content)), marker.Size)
	assert.Equal(t, fmtDigest(xxhash.Sum64String(content)), marker.Digest)
	assert.False(t, marker.StoredAt.IsZero())
}

func TestCache_NeverOverwritesCommittedEntry(t *testing.T) {
	c := toolcache.New(t.TempDir())

	dir, err := c.CacheFile(writeSource(t, "first"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)

	again, err := c.CacheFile(writeSource(t, "second"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Equal(t, dir, again)

	data, err := os.ReadFile(filepath.Join(dir, "kubectl"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestCache_IncompleteEntryIsAbsent(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)

	key := domain.CacheKey{Tool: "kubectl", Version: "v1.30.0", Arch: "amd64"}
	require.NoError(t, os.MkdirAll(key.Dir(root), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(key.Dir(root), "kubectl"), []byte("partial"), 0o600))

	dir, err := c.Find("kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Empty(t, dir, "an entry without a marker is not committed")
}

func TestCache_AdoptsEntryFromConcurrentWriter(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)

	// Simulate a second process that renamed its stage into place but has
	// not written the marker yet.
	key := domain.CacheKey{Tool: "kubectl", Version: "v1.30.0", Arch: "amd64"}
	require.NoError(t, os.MkdirAll(key.Dir(root), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(key.Dir(root), "kubectl"), []byte("winner"), 0o600))

	dir, err := c.CacheFile(writeSource(t, "loser"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Equal(t, key.Dir(root), dir)

	data, err := os.ReadFile(filepath.Join(dir, "kubectl"))
	require.NoError(t, err)
	assert.Equal(t, "winner", string(data))

	found, err := c.Find("kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)
	assert.Equal(t, dir, found)
}

func TestCache_NoStagingLeftovers(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)

	_, err := c.CacheFile(writeSource(t, "x"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "kubectl", "1.30.0"))
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"amd64", "amd64.complete"}, names)
}

func TestCache_MissingSource(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)

	_, err := c.CacheFile(filepath.Join(root, "nope"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.Error(t, err)

	dir, findErr := c.Find("kubectl", "v1.30.0", "amd64")
	require.NoError(t, findErr)
	assert.Empty(t, dir, "a failed store leaves no entry")
}

func TestCache_MarkerIsJSON(t *testing.T) {
	root := t.TempDir()
	c := toolcache.New(root)

	_, err := c.CacheFile(writeSource(t, "x"), "kubectl", "kubectl", "v1.30.0", "amd64")
	require.NoError(t, err)

	data, err := os.ReadFile(domain.CacheKey{Tool: "kubectl", Version: "v1.30.0", Arch: "amd64"}.MarkerPath(root))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "digest")
	assert.Contains(t, raw, "stored_at")
}

func TestCache_Root(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, root, toolcache.New(root+"/").Root())
}
