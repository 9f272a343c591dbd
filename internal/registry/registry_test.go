package registry

import (
	"path/filepath"
	"testing"

	"github.com/kmoser/dotsync/internal/platform"
)

func TestBuiltinPathsAbsolute(t *testing.T) {
	entries := Builtin("/home/ada", "/home/ada/dotfiles/config", platform.Platform{OS: platform.OSLinux})
	if len(entries) == 0 {
		t.Fatal("no entries")
	}
	for _, e := range entries {
		if !filepath.IsAbs(e.HostPath) {
			t.Errorf("host path not absolute: %s", e.HostPath)
		}
		if !filepath.IsAbs(e.RepoPath) {
			t.Errorf("repo path not absolute: %s", e.RepoPath)
		}
	}
}

func TestBuiltinLinuxExtensions(t *testing.T) {
	linux := Builtin("/h", "/r", platform.Platform{OS: platform.OSLinux})
	mac := Builtin("/h", "/r", platform.Platform{OS: platform.OSMacOS})

	if len(linux) <= len(mac) {
		t.Errorf("linux registry (%d entries) should extend the base set (%d)", len(linux), len(mac))
	}

	if !hasHostPath(linux, "/h/.ssh/config") {
		t.Error("linux registry missing ssh config entry")
	}
	if !hasHostPath(linux, "/h/.psqlrc") {
		t.Error("linux registry missing psqlrc entry")
	}
	if hasHostPath(mac, "/h/.ssh/config") {
		t.Error("macos registry must not include linux-only ssh entry")
	}
}

func TestBuiltinEntryKinds(t *testing.T) {
	entries := Builtin("/h", "/r", platform.Platform{OS: platform.OSMacOS})

	var nvim, zshrc, aliases *Entry
	for i := range entries {
		switch entries[i].HostPath {
		case "/h/.config/nvim":
			nvim = &entries[i]
		case "/h/.zshrc":
			zshrc = &entries[i]
		case "/h/.zsh_aliases":
			aliases = &entries[i]
		}
	}

	if nvim == nil || !nvim.IsDirectory {
		t.Error("nvim entry should be a directory mapping")
	}
	if zshrc == nil || !zshrc.Templated {
		t.Error("zshrc entry should be templated")
	}
	if aliases == nil || aliases.Templated || aliases.IsDirectory {
		t.Error("aliases entry should be a plain file mapping")
	}
	if zshrc != nil && zshrc.RepoPath != "/r/zsh/zshrc" {
		t.Errorf("zshrc repo path = %s", zshrc.RepoPath)
	}
}

func TestBuiltinDeterministicOrder(t *testing.T) {
	a := Builtin("/h", "/r", platform.Platform{OS: platform.OSLinux})
	b := Builtin("/h", "/r", platform.Platform{OS: platform.OSLinux})
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("entry %d differs between calls", i)
		}
	}
}

func hasHostPath(entries []Entry, host string) bool {
	for _, e := range entries {
		if e.HostPath == host {
			return true
		}
	}
	return false
}
