// Package installer resolves tool categories against the platform catalog
// and drives the host's package manager.
package installer

import (
	"context"
	"strings"

	"github.com/kmoser/dotsync/internal/catalog"
	"github.com/kmoser/dotsync/internal/logger"
	"github.com/kmoser/dotsync/internal/platform"
)

// Installer installs categorized tool sets for one detected platform.
type Installer struct {
	Platform   platform.Platform
	CatalogDir string
	Runner     Runner
}

// New creates an Installer that shells out to the real package manager.
func New(p platform.Platform, catalogDir string) *Installer {
	return &Installer{Platform: p, CatalogDir: catalogDir, Runner: ExecRunner{}}
}

// InstallPackageManager ensures a package manager is available. Hosts that
// already have one are a no-op success. macOS bootstraps Homebrew; Linux
// never auto-bootstraps a system package manager — the user gets a manual
// install hint instead.
func (i *Installer) InstallPackageManager(ctx context.Context) bool {
	if i.Platform.HasPackageManager() {
		logger.OK("Package manager '%s' already installed", i.Platform.PackageManager)
		return true
	}

	switch i.Platform.OS {
	case platform.OSMacOS:
		logger.Action("Installing Homebrew...")
		if err := i.Runner.Run(ctx, "/bin/bash", "-c", homebrewBootstrap); err != nil {
			logger.Fail("Failed to install Homebrew: %v", err)
			return false
		}
		i.Platform.PackageManager = platform.PMBrew
		logger.OK("Homebrew installed successfully")
		return true
	case platform.OSLinux:
		logger.Fail("No package manager detected. Please install one manually:")
		logger.Info("  - Ubuntu/Debian: apt should be pre-installed\n")
		logger.Info("  - Arch: pacman should be pre-installed\n")
		logger.Info("  - Fedora: dnf should be pre-installed\n")
		return false
	default:
		logger.Fail("Unsupported platform: %s", i.Platform.OS)
		return false
	}
}

// InstallTools installs every listed category. Categories are processed
// independently: a failed category is reported and the rest still run, but
// the aggregate result is failure if any category failed.
func (i *Installer) InstallTools(ctx context.Context, categories []string) bool {
	if !i.Platform.HasPackageManager() {
		logger.Fail("No package manager available")
		return false
	}

	cat, loadErr := catalog.Load(i.CatalogDir, i.Platform)

	ok := true
	for _, category := range categories {
		logger.Action("Installing %s tools...", category)

		if loadErr != nil {
			logger.Fail("Cannot read tool catalog: %v", loadErr)
			ok = false
			continue
		}

		set, err := cat.Resolve(category)
		if err != nil {
			logger.Fail("%v", err)
			ok = false
			continue
		}

		if !i.installSet(ctx, set) {
			ok = false
		}
	}
	return ok
}

// installSet drives the package manager for one resolved tool set.
func (i *Installer) installSet(ctx context.Context, set catalog.ToolSet) bool {
	switch tools := set.(type) {
	case catalog.Packages:
		return i.installPackages(ctx, tools)
	case catalog.PackagesAndCasks:
		ok := true
		if len(tools.Packages) > 0 {
			if !i.installPackages(ctx, tools.Packages) {
				ok = false
			}
		}
		if len(tools.Casks) > 0 {
			logger.Info("  Installing casks: %s\n", strings.Join(tools.Casks, ", "))
			if err := i.run(ctx, caskInstallCommand(tools.Casks)); err != nil {
				logger.Fail("Cask install failed: %v", err)
				ok = false
			}
		}
		return ok
	default:
		logger.Fail("Unknown tool set variant")
		return false
	}
}

func (i *Installer) installPackages(ctx context.Context, pkgs []string) bool {
	if len(pkgs) == 0 {
		return true
	}
	logger.Info("  Installing packages: %s\n", strings.Join(pkgs, ", "))

	cmds, err := installCommands(i.Platform.PackageManager, pkgs)
	if err != nil {
		logger.Fail("%v", err)
		return false
	}
	for _, cmd := range cmds {
		if err := i.run(ctx, cmd); err != nil {
			logger.Fail("%s install failed: %v", i.Platform.PackageManager, err)
			return false
		}
	}
	return true
}

func (i *Installer) run(ctx context.Context, cmd []string) error {
	logger.Debug("running: %s\n", strings.Join(cmd, " "))
	return i.Runner.Run(ctx, cmd[0], cmd[1:]...)
}
