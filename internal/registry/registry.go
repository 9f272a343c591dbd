// Package registry declares the fixed mapping between repository config
// files and their locations under the user's home directory.
package registry

import (
	"path/filepath"

	"github.com/kmoser/dotsync/internal/platform"
)

// Entry maps one host filesystem location to one repository location.
// Paths are absolute, resolved once at construction. Entries are processed
// as independent units of work; their order matters only for display.
type Entry struct {
	HostPath    string
	RepoPath    string
	Templated   bool
	IsDirectory bool
}

// builder resolves relative registry paths against the home directory and
// the repository config root.
type builder struct {
	home       string
	configRoot string
}

func (b builder) file(host, repo string) Entry {
	return Entry{
		HostPath: filepath.Join(b.home, host),
		RepoPath: filepath.Join(b.configRoot, repo),
	}
}

func (b builder) templated(host, repo string) Entry {
	e := b.file(host, repo)
	e.Templated = true
	return e
}

func (b builder) dir(host, repo string) Entry {
	e := b.file(host, repo)
	e.IsDirectory = true
	return e
}

// Builtin returns the declarative config registry for the given platform.
// The base set applies everywhere; SSH, less, htop, curl and psql entries
// are Linux-only (macOS manages those differently).
func Builtin(home, configRoot string, p platform.Platform) []Entry {
	b := builder{home: home, configRoot: configRoot}

	entries := []Entry{
		// Zsh
		b.templated(".zshrc", "zsh/zshrc"),
		b.file(".zsh_aliases", "zsh/aliases"),
		// Git
		b.templated(".config/git/config", "git/config"),
		// Starship
		b.file(".config/starship/starship.toml", "starship/starship.toml"),
		// Neovim, whole directory tree
		b.dir(".config/nvim", "nvim"),
	}

	if p.OS == platform.OSLinux {
		entries = append(entries,
			b.file(".ssh/config", "ssh/config"),
			b.file(".ssh/authorized_keys", "ssh/authorized_keys"),
			b.file(".lesskey", "less/lesskey"),
			b.file(".config/htop/htoprc", "htop/htoprc"),
			b.file(".config/curlrc", "curl/curlrc"),
			b.file(".psqlrc", "postgres/psqlrc"),
		)
	}

	return entries
}
