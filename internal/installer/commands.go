package installer

import (
	"fmt"

	"github.com/kmoser/dotsync/internal/platform"
)

// homebrewBootstrap is the official Homebrew install one-liner. It is
// passed to `/bin/bash -c` so that the inner shell performs the command
// substitution and runs the downloaded script.
const homebrewBootstrap = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`

// installCommands returns the command sequences that install pkgs with the
// given package manager. Managers with a local package index (apt, pacman)
// get an index update first; system managers run under sudo.
func installCommands(pm string, pkgs []string) ([][]string, error) {
	switch pm {
	case platform.PMBrew:
		return [][]string{append([]string{"brew", "install"}, pkgs...)}, nil
	case platform.PMApt:
		return [][]string{
			{"sudo", "apt", "update"},
			append([]string{"sudo", "apt", "install", "-y"}, pkgs...),
		}, nil
	case platform.PMPacman:
		return [][]string{
			{"sudo", "pacman", "-Sy"},
			append([]string{"sudo", "pacman", "-S", "--noconfirm"}, pkgs...),
		}, nil
	case platform.PMDnf:
		return [][]string{append([]string{"sudo", "dnf", "install", "-y"}, pkgs...)}, nil
	case platform.PMYum:
		return [][]string{append([]string{"sudo", "yum", "install", "-y"}, pkgs...)}, nil
	case platform.PMZypper:
		return [][]string{append([]string{"sudo", "zypper", "--non-interactive", "install"}, pkgs...)}, nil
	case platform.PMEmerge:
		return [][]string{append([]string{"sudo", "emerge"}, pkgs...)}, nil
	case platform.PMWinget:
		return [][]string{append([]string{"winget", "install"}, pkgs...)}, nil
	default:
		return nil, fmt.Errorf("unsupported package manager: %s", pm)
	}
}

// caskInstallCommand returns the brew invocation for macOS casks.
func caskInstallCommand(casks []string) []string {
	return append([]string{"brew", "install", "--cask"}, casks...)
}
