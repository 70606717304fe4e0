package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// CacheKey identifies one cached tool binary.
type CacheKey struct {
	Tool    string
	Version string
	Arch    string
}

// Dir returns the entry directory of the key beneath root.
// The version is stored without its "v" prefix, matching the hosted tool cache layout.
func (k CacheKey) Dir(root string) string {
	return filepath.Join(root, k.Tool, strings.TrimPrefix(k.Version, "v"), k.Arch)
}

// MarkerPath returns the completion marker path of the key beneath root.
func (k CacheKey) MarkerPath(root string) string {
	return k.Dir(root) + MarkerSuffix
}

// CacheMarker is written next to a committed cache entry.
// An entry without a marker is treated as absent.
type CacheMarker struct {
	File     string    `json:"file,omitzero"`
	Digest   string    `json:"digest,omitzero"`
	Size     int64     `json:"size,omitzero"`
	StoredAt time.Time `json:"stored_at,omitzero"`
}
