// Package engine moves config bytes between the repository and the host.
//
// Install (repo → host) is the risk-bearing direction: it overwrites live
// user config, so it always backs up existing state first. Sync (host →
// repo) treats the repository as disposable — it is version-controlled
// externally — and never backs up.
//
// Entries are processed sequentially and independently: a failure is
// recorded and the run continues with the next entry.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmoser/dotsync/internal/registry"
	"github.com/kmoser/dotsync/internal/settings"
	"github.com/kmoser/dotsync/internal/template"
)

// Engine performs install and sync operations over config entries.
// Settings are loaded once per run and passed in explicitly; the engine
// holds no ambient global state.
type Engine struct {
	Settings settings.Map
}

// Options configures a run over entries.
type Options struct {
	DryRun bool
}

// InstallAll installs every entry, repo → host. Failures are collected
// per entry; the aggregate succeeds only when every entry succeeded.
func (e *Engine) InstallAll(entries []registry.Entry, opts Options) *Result {
	result := &Result{}
	for _, entry := range entries {
		if opts.DryRun {
			planInstall(entry, result)
			continue
		}
		act, err := e.Install(entry)
		if err != nil {
			result.Errors = append(result.Errors, EntryError{Path: entry.RepoPath, Err: err})
			continue
		}
		result.Applied = append(result.Applied, act)
	}
	return result
}

// SyncAll syncs every entry, host → repo.
func (e *Engine) SyncAll(entries []registry.Entry, opts Options) *Result {
	result := &Result{}
	for _, entry := range entries {
		if opts.DryRun {
			planSync(entry, result)
			continue
		}
		act, err := e.SyncBack(entry)
		if err != nil {
			result.Errors = append(result.Errors, EntryError{Path: entry.HostPath, Err: err})
			continue
		}
		result.Applied = append(result.Applied, act)
	}
	return result
}

// Install copies one entry from the repository to the host, backing up
// whatever is already there.
func (e *Engine) Install(entry registry.Entry) (Action, error) {
	act := Action{HostPath: entry.HostPath, RepoPath: entry.RepoPath, Action: "installed"}

	if _, err := os.Stat(entry.RepoPath); err != nil {
		return act, fmt.Errorf("source not found: %s", entry.RepoPath)
	}

	if entry.IsDirectory {
		backup, err := e.installDir(entry)
		act.Backup = backup
		return act, err
	}
	backup, err := e.installFile(entry)
	act.Backup = backup
	return act, err
}

// installDir replaces the host directory with a fresh copy of the repo
// tree. An existing host directory is moved (not copied) to a single-slot
// sibling backup; any previous backup is discarded first.
func (e *Engine) installDir(entry registry.Entry) (string, error) {
	var backup string
	if _, err := os.Stat(entry.HostPath); err == nil {
		backup = dirBackupPath(entry.HostPath)
		if _, err := os.Stat(backup); err == nil {
			if err := os.RemoveAll(backup); err != nil {
				return "", fmt.Errorf("removing old backup: %w", err)
			}
		}
		if err := os.Rename(entry.HostPath, backup); err != nil {
			return "", fmt.Errorf("backing up %s: %w", entry.HostPath, err)
		}
	}

	if err := copyTree(entry.RepoPath, entry.HostPath); err != nil {
		return backup, fmt.Errorf("copying %s: %w", entry.RepoPath, err)
	}
	return backup, nil
}

// installFile writes the repository file over the host file, templating
// when the entry asks for it. An existing host file is first copied, with
// metadata, to a single-slot .backup sibling.
func (e *Engine) installFile(entry registry.Entry) (string, error) {
	if err := os.MkdirAll(filepath.Dir(entry.HostPath), 0755); err != nil {
		return "", fmt.Errorf("creating parent directories: %w", err)
	}

	var backup string
	if _, err := os.Stat(entry.HostPath); err == nil {
		backup = fileBackupPath(entry.HostPath)
		if err := copyFile(entry.HostPath, backup); err != nil {
			return "", fmt.Errorf("backing up %s: %w", entry.HostPath, err)
		}
	}

	content, err := os.ReadFile(entry.RepoPath)
	if err != nil {
		return backup, fmt.Errorf("reading %s: %w", entry.RepoPath, err)
	}

	text := string(content)
	if entry.Templated {
		text = template.Expand(text, e.Settings)
	}

	// In-place overwrite; perm applies only when the file is created.
	if err := os.WriteFile(entry.HostPath, []byte(text), 0644); err != nil {
		return backup, fmt.Errorf("writing %s: %w", entry.HostPath, err)
	}
	return backup, nil
}

// SyncBack copies one entry from the host into the repository. The sync
// direction never templates and never backs up: it moves literal host
// bytes over repository state that git already protects.
func (e *Engine) SyncBack(entry registry.Entry) (Action, error) {
	act := Action{HostPath: entry.HostPath, RepoPath: entry.RepoPath, Action: "synced"}

	if _, err := os.Stat(entry.HostPath); err != nil {
		return act, fmt.Errorf("host path not found: %s", entry.HostPath)
	}

	if entry.IsDirectory {
		if err := os.RemoveAll(entry.RepoPath); err != nil {
			return act, fmt.Errorf("clearing %s: %w", entry.RepoPath, err)
		}
		if err := os.MkdirAll(filepath.Dir(entry.RepoPath), 0755); err != nil {
			return act, fmt.Errorf("creating parent directories: %w", err)
		}
		if err := copyTree(entry.HostPath, entry.RepoPath); err != nil {
			return act, fmt.Errorf("copying %s: %w", entry.HostPath, err)
		}
		return act, nil
	}

	if err := os.MkdirAll(filepath.Dir(entry.RepoPath), 0755); err != nil {
		return act, fmt.Errorf("creating parent directories: %w", err)
	}
	if err := copyFile(entry.HostPath, entry.RepoPath); err != nil {
		return act, fmt.Errorf("copying %s: %w", entry.HostPath, err)
	}
	return act, nil
}

// planInstall records what Install would do without touching the filesystem.
func planInstall(entry registry.Entry, result *Result) {
	if _, err := os.Stat(entry.RepoPath); err != nil {
		result.Errors = append(result.Errors, EntryError{
			Path: entry.RepoPath,
			Err:  fmt.Errorf("source not found: %s", entry.RepoPath),
		})
		return
	}
	act := Action{HostPath: entry.HostPath, RepoPath: entry.RepoPath, Action: "would install"}
	if _, err := os.Stat(entry.HostPath); err == nil {
		if entry.IsDirectory {
			act.Backup = dirBackupPath(entry.HostPath)
		} else {
			act.Backup = fileBackupPath(entry.HostPath)
		}
	}
	result.Applied = append(result.Applied, act)
}

// planSync records what SyncBack would do without touching the filesystem.
func planSync(entry registry.Entry, result *Result) {
	if _, err := os.Stat(entry.HostPath); err != nil {
		result.Errors = append(result.Errors, EntryError{
			Path: entry.HostPath,
			Err:  fmt.Errorf("host path not found: %s", entry.HostPath),
		})
		return
	}
	result.Applied = append(result.Applied, Action{
		HostPath: entry.HostPath,
		RepoPath: entry.RepoPath,
		Action:   "would sync",
	})
}
