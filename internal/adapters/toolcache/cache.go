// Package toolcache implements a file-system tool cache keyed by tool, version and architecture.
package toolcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolCache = (*Cache)(nil)

// Cache stores every entry in its own directory beneath root.
//
// An entry is committed once its completion marker exists. Entries are staged
// in a sibling temp directory and moved into place with a rename, so several
// processes may share one root.
type Cache struct {
	root string
	now  func() time.Time
}

// New creates a Cache rooted at root. The directory is created lazily.
func New(root string) *Cache {
	return &Cache{
		root: filepath.Clean(root),
		now:  time.Now,
	}
}

// Root returns the directory holding every entry.
func (c *Cache) Root() string {
	return c.root
}

// Find returns the directory of the committed entry for the key, or "" when
// the entry is absent or incomplete.
func (c *Cache) Find(tool, version, arch string) (string, error) {
	key := domain.CacheKey{Tool: tool, Version: version, Arch: arch}

	committed, err := c.committed(key)
	if err != nil || !committed {
		return "", err
	}
	return key.Dir(c.root), nil
}

// CacheFile copies src into the entry for the key as destName and returns the
// entry directory. An entry that is already committed is returned untouched.
func (c *Cache) CacheFile(src, destName, tool, version, arch string) (string, error) {
	key := domain.CacheKey{Tool: tool, Version: version, Arch: arch}
	dir := key.Dir(c.root)

	committed, err := c.committed(key)
	if err != nil {
		return "", err
	}
	if committed {
		return dir, nil
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", parent)
	}

	stage, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+"-stage-*")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", parent)
	}
	defer func() {
		_ = os.RemoveAll(stage)
	}()

	digest, size, err := copyFile(src, filepath.Join(stage, destName))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "src", src)
	}

	if err := os.Rename(stage, dir); err != nil {
		// Another process got there first. Its entry holds the same release,
		// so it is adopted as long as the payload is in place.
		if _, statErr := os.Stat(filepath.Join(dir, destName)); statErr != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "path", dir)
		}
	}

	marker := domain.CacheMarker{
		File:     destName,
		Digest:   digest,
		Size:     size,
		StoredAt: c.now().UTC(),
	}
	if err := c.writeMarker(key, marker); err != nil {
		return "", err
	}
	return dir, nil
}

// Marker returns the completion marker of a committed entry.
func (c *Cache) Marker(tool, version, arch string) (*domain.CacheMarker, error) {
	path := domain.CacheKey{Tool: tool, Version: version, Arch: arch}.MarkerPath(c.root)

	//nolint:gosec // Path is derived from the cache root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheLookupFailed.Error()), "path", path)
	}

	var marker domain.CacheMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheLookupFailed.Error()), "path", path)
	}
	return &marker, nil
}

// committed reports whether both the entry directory and its marker exist.
func (c *Cache) committed(key domain.CacheKey) (bool, error) {
	for _, path := range []string{key.MarkerPath(c.root), key.Dir(c.root)} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, domain.ErrCacheLookupFailed.Error()), "path", path)
		}
	}
	return true, nil
}

func (c *Cache) writeMarker(key domain.CacheKey, marker domain.CacheMarker) error {
	data, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarkerFailed.Error())
	}

	path := key.MarkerPath(c.root)
	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheMarkerFailed.Error()), "path", path)
	}
	return nil
}

// copyFile copies src to dst and returns the xxhash digest and size of the content.
func copyFile(src, dst string) (digest string, size int64, err error) {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = in.Close()
	}()

	//nolint:gosec // Path is inside the staging directory
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, domain.FilePerm)
	if err != nil {
		return "", 0, err
	}

	hasher := xxhash.New()
	size, err = io.Copy(io.MultiWriter(out, hasher), in)
	if err != nil {
		_ = out.Close()
		return "", 0, err
	}
	if err := out.Close(); err != nil {
		return "", 0, err
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), size, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".marker-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
