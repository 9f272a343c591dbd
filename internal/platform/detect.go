package platform

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// linuxManagers is the fixed probe order for Linux package managers.
// The first binary found in PATH wins.
var linuxManagers = []string{PMApt, PMPacman, PMDnf, PMYum, PMZypper, PMEmerge}

// Probe implements Detector against the real host.
type Probe struct {
	goos     string
	lookPath func(string) (string, error)
}

// New creates a platform detector for the current host.
func New() *Probe {
	return &Probe{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// Detect inspects the host and returns a platform snapshot.
// Absence of a package manager is not an error; the field is left empty.
func (p *Probe) Detect(ctx context.Context) Platform {
	switch p.goos {
	case "darwin":
		return Platform{
			OS:             OSMacOS,
			PackageManager: p.firstInPath(PMBrew),
		}
	case "linux":
		return Platform{
			OS:             OSLinux,
			Distro:         p.detectDistro(ctx),
			PackageManager: p.firstInPath(linuxManagers...),
			WSL:            p.detectWSL(ctx),
		}
	case "windows":
		return Platform{
			OS:             OSWindows,
			PackageManager: p.firstInPath(PMWinget),
		}
	default:
		return Platform{OS: OSUnknown}
	}
}

// detectDistro resolves the Linux distribution ID. It asks gopsutil first
// (which reads os-release), then parses os-release directly, then falls
// back to distribution marker files.
func (p *Probe) detectDistro(ctx context.Context) string {
	if id, _, _, err := host.PlatformInformationWithContext(ctx); err == nil {
		if id = normalizeID(id); id != "" {
			return id
		}
	}
	if id := parseOSRelease(filepath.Join(hostEtc(), "os-release")); id != "" {
		return id
	}
	return markerDistro(hostEtc())
}

// detectWSL reports whether the kernel release carries the Microsoft
// marker token used by WSL kernels.
func (p *Probe) detectWSL(ctx context.Context) bool {
	release, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return false
	}
	return isWSLKernel(release)
}

// firstInPath returns the first of the given binaries found in PATH,
// or "" when none is present.
func (p *Probe) firstInPath(names ...string) string {
	for _, name := range names {
		if _, err := p.lookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// hostEtc returns the directory holding release files, honoring the
// HOST_ETC override that gopsutil uses as well.
func hostEtc() string {
	if etc := os.Getenv("HOST_ETC"); etc != "" {
		return etc
	}
	return "/etc"
}

// parseOSRelease extracts the ID= field from an os-release style file.
// Returns "" when the file is missing or carries no ID.
func parseOSRelease(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		return normalizeID(strings.TrimPrefix(line, "ID="))
	}
	return ""
}

// markerDistro checks distribution marker files as a last resort.
func markerDistro(etc string) string {
	markers := []struct {
		file   string
		distro string
	}{
		{"debian_version", "debian"},
		{"redhat-release", "redhat"},
		{"arch-release", "arch"},
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(etc, m.file)); err == nil {
			return m.distro
		}
	}
	return ""
}

// isWSLKernel reports whether a kernel release string comes from WSL.
func isWSLKernel(release string) bool {
	return strings.Contains(strings.ToLower(release), "microsoft")
}

// normalizeID lowercases and unquotes an os-release value.
func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.Trim(id, `"'`)
	return strings.ToLower(id)
}
