package domain

import (
	"fmt"
	"strings"
)

// OSFamily selects the download URL shape and the executable suffix.
type OSFamily string

const (
	// OSLinux is the Linux family.
	OSLinux OSFamily = "linux"
	// OSDarwin is the macOS family.
	OSDarwin OSFamily = "darwin"
	// OSWindows is the Windows family. Unknown operating systems map here too.
	OSWindows OSFamily = "windows"
)

// ArchAMD64 is the normalized token for 64-bit x86.
const ArchAMD64 = "amd64"

// Platform is the normalized (architecture, OS family) pair a binary is built for.
type Platform struct {
	Arch string
	OS   OSFamily
}

func (p Platform) String() string {
	return string(p.OS) + "/" + p.Arch
}

// NewPlatform builds a Platform from raw OS and architecture tokens.
func NewPlatform(goos, arch string) Platform {
	return Platform{
		Arch: NormalizeArch(arch),
		OS:   ParseOSFamily(goos),
	}
}

// NormalizeArch maps the 64-bit x86 token to "amd64". Every other token is returned unchanged.
func NormalizeArch(arch string) string {
	switch arch {
	case "x64", "x86_64":
		return ArchAMD64
	default:
		return arch
	}
}

// ParseOSFamily maps an OS token to its family, falling back to windows.
func ParseOSFamily(goos string) OSFamily {
	switch strings.ToLower(goos) {
	case "linux":
		return OSLinux
	case "darwin":
		return OSDarwin
	default:
		return OSWindows
	}
}

// ExecutableSuffix returns ".exe" on windows and "" elsewhere.
func ExecutableSuffix(p Platform) string {
	if p.OS == OSWindows {
		return ".exe"
	}
	return ""
}

// ExecutableName returns the on-disk file name of tool for the platform.
func ExecutableName(tool string, p Platform) string {
	return tool + ExecutableSuffix(p)
}

// DownloadURL returns the binary URL for tool at version on the given platform.
// baseURL is the release host, e.g. https://dl.k8s.io.
func DownloadURL(baseURL, tool, version string, p Platform) string {
	base := strings.TrimRight(baseURL, "/")
	switch p.OS {
	case OSLinux:
		return fmt.Sprintf("%s/release/%s/bin/linux/%s/%s", base, version, p.Arch, tool)
	case OSDarwin:
		return fmt.Sprintf("%s/release/%s/bin/darwin/%s/%s", base, version, p.Arch, tool)
	case OSWindows:
		fallthrough
	default:
		return fmt.Sprintf("%s/release/%s/bin/windows/%s/%s.exe", base, version, p.Arch, tool)
	}
}
