package domain

import "path/filepath"

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = "kubesetup"

	// ToolsDirName is the name of the tool cache directory under the app directory.
	ToolsDirName = "tools"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "kubesetup.yaml"

	// MarkerSuffix is appended to a cache entry directory to form its completion marker.
	MarkerSuffix = ".complete"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is applied to every cached executable (rwxrwxr-x).
	ExecPerm = 0o775
)

// Output names published to the host environment.
const (
	OutputPathName    = "kubectl-path"
	OutputVersionName = "kubectl-version"
	InputVersionName  = "version"
)

// DefaultCacheRoot returns the default tool cache location relative to home.
// It joins home, .cache, kubesetup and tools.
func DefaultCacheRoot(home string) string {
	return filepath.Join(home, ".cache", AppDirName, ToolsDirName)
}
