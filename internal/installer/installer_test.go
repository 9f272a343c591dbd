package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kmoser/dotsync/internal/platform"
)

// recordingRunner captures commands instead of executing them. Commands
// whose joined form contains failOn return an error.
type recordingRunner struct {
	commands [][]string
	failOn   string
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := append([]string{name}, args...)
	r.commands = append(r.commands, cmd)
	if r.failOn != "" && strings.Contains(strings.Join(cmd, " "), r.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func catalogDir(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

const linuxCatalog = `
packages:
  essential:
    apt: [git, fzf]
    pacman: [git, fzf]
  development:
    apt: [golang]
`

const macosCatalog = `
packages:
  essential: [git, fzf]
casks:
  essential: [iterm2]
`

func newTestInstaller(p platform.Platform, dir string) (*Installer, *recordingRunner) {
	r := &recordingRunner{}
	return &Installer{Platform: p, CatalogDir: dir, Runner: r}, r
}

func TestInstallToolsAptUpdatesIndexFirst(t *testing.T) {
	dir := catalogDir(t, "linux.yaml", linuxCatalog)
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMApt}, dir)

	if !inst.InstallTools(context.Background(), []string{"essential"}) {
		t.Fatal("InstallTools failed")
	}

	want := [][]string{
		{"sudo", "apt", "update"},
		{"sudo", "apt", "install", "-y", "git", "fzf"},
	}
	if !reflect.DeepEqual(r.commands, want) {
		t.Errorf("commands = %v, want %v", r.commands, want)
	}
}

func TestInstallToolsPacmanSyncsDatabaseFirst(t *testing.T) {
	dir := catalogDir(t, "linux.yaml", linuxCatalog)
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMPacman}, dir)

	if !inst.InstallTools(context.Background(), []string{"essential"}) {
		t.Fatal("InstallTools failed")
	}

	want := [][]string{
		{"sudo", "pacman", "-Sy"},
		{"sudo", "pacman", "-S", "--noconfirm", "git", "fzf"},
	}
	if !reflect.DeepEqual(r.commands, want) {
		t.Errorf("commands = %v, want %v", r.commands, want)
	}
}

func TestInstallToolsBrewSeparatesCasks(t *testing.T) {
	dir := catalogDir(t, "macos.yaml", macosCatalog)
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSMacOS, PackageManager: platform.PMBrew}, dir)

	if !inst.InstallTools(context.Background(), []string{"essential"}) {
		t.Fatal("InstallTools failed")
	}

	want := [][]string{
		{"brew", "install", "git", "fzf"},
		{"brew", "install", "--cask", "iterm2"},
	}
	if !reflect.DeepEqual(r.commands, want) {
		t.Errorf("commands = %v, want %v", r.commands, want)
	}
}

func TestInstallToolsCategoryFailureDoesNotHaltOthers(t *testing.T) {
	dir := catalogDir(t, "linux.yaml", linuxCatalog)
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMApt}, dir)

	// "games" is not in the catalog; "development" still installs.
	ok := inst.InstallTools(context.Background(), []string{"games", "development"})
	if ok {
		t.Error("aggregate result must be failure when a category failed")
	}

	found := false
	for _, cmd := range r.commands {
		if strings.Contains(strings.Join(cmd, " "), "golang") {
			found = true
		}
	}
	if !found {
		t.Error("development category should still have been installed")
	}
}

func TestInstallToolsSubprocessFailure(t *testing.T) {
	dir := catalogDir(t, "linux.yaml", linuxCatalog)
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMApt}, dir)
	r.failOn = "install -y"

	if inst.InstallTools(context.Background(), []string{"essential"}) {
		t.Error("expected failure when the package manager exits non-zero")
	}
}

func TestInstallToolsNoPackageManager(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux}, t.TempDir())
	if inst.InstallTools(context.Background(), []string{"essential"}) {
		t.Error("expected failure without a package manager")
	}
	if len(r.commands) != 0 {
		t.Errorf("no commands should run, got %v", r.commands)
	}
}

func TestInstallToolsMissingCatalogFailsEachCategory(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMApt}, t.TempDir())
	if inst.InstallTools(context.Background(), []string{"essential", "development"}) {
		t.Error("expected failure for missing catalog")
	}
	if len(r.commands) != 0 {
		t.Errorf("no commands should run, got %v", r.commands)
	}
}

func TestInstallPackageManagerNoop(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux, PackageManager: platform.PMApt}, t.TempDir())
	if !inst.InstallPackageManager(context.Background()) {
		t.Error("existing package manager should be a no-op success")
	}
	if len(r.commands) != 0 {
		t.Errorf("no commands should run, got %v", r.commands)
	}
}

func TestInstallPackageManagerBootstrapsHomebrew(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSMacOS}, t.TempDir())
	if !inst.InstallPackageManager(context.Background()) {
		t.Fatal("bootstrap should succeed with a working runner")
	}
	if len(r.commands) != 1 || r.commands[0][0] != "/bin/bash" {
		t.Errorf("commands = %v, want a single /bin/bash invocation", r.commands)
	}
	if inst.Platform.PackageManager != platform.PMBrew {
		t.Errorf("PackageManager = %q, want brew after bootstrap", inst.Platform.PackageManager)
	}
}

func TestInstallPackageManagerBootstrapFailure(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSMacOS}, t.TempDir())
	r.failOn = "curl"
	if inst.InstallPackageManager(context.Background()) {
		t.Error("bootstrap failure must be reported")
	}
}

func TestInstallPackageManagerLinuxNeverBootstraps(t *testing.T) {
	inst, r := newTestInstaller(platform.Platform{OS: platform.OSLinux}, t.TempDir())
	if inst.InstallPackageManager(context.Background()) {
		t.Error("linux without a package manager must fail")
	}
	if len(r.commands) != 0 {
		t.Errorf("linux must not auto-bootstrap, got %v", r.commands)
	}
}

func TestInstallCommandsUnsupportedManager(t *testing.T) {
	if _, err := installCommands("nix", []string{"git"}); err == nil {
		t.Error("expected error for unsupported manager")
	}
}
