// Package platform detects the host operating system, Linux distribution,
// available package manager, and WSL environment.
//
// Detection is read-only: it inspects /etc release files (honoring HOST_ETC),
// the kernel release string, and PATH. It never fails — anything that cannot
// be detected is simply reported as absent.
package platform

import "context"

// OSName identifies the host operating system family.
type OSName string

const (
	OSMacOS   OSName = "macos"
	OSLinux   OSName = "linux"
	OSWindows OSName = "windows"
	OSUnknown OSName = "unknown"
)

// Package manager names as probed in PATH.
const (
	PMBrew   = "brew"
	PMApt    = "apt"
	PMPacman = "pacman"
	PMDnf    = "dnf"
	PMYum    = "yum"
	PMZypper = "zypper"
	PMEmerge = "emerge"
	PMWinget = "winget"
)

// Platform is an immutable snapshot of the detected host environment.
// It is recomputed on every run; nothing is persisted.
type Platform struct {
	OS             OSName
	Distro         string // Linux distribution ID, empty elsewhere
	PackageManager string // empty when none was found
	WSL            bool
}

// HasPackageManager reports whether a usable package manager was detected.
func (p Platform) HasPackageManager() bool {
	return p.PackageManager != ""
}

// IsDebianFamily reports whether the distro uses apt-style packaging.
func (p Platform) IsDebianFamily() bool {
	return p.OS == OSLinux && (p.Distro == "debian" || p.Distro == "ubuntu")
}

// IsArchFamily reports whether the distro uses pacman-style packaging.
func (p Platform) IsArchFamily() bool {
	return p.OS == OSLinux && (p.Distro == "arch" || p.Distro == "manjaro")
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) Platform
}
