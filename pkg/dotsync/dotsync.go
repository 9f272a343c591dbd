// Package dotsync provides the embeddable Go API for dotsync.
//
// dotsync installs and synchronizes personal configuration files and
// development tools across macOS and Linux. This package exposes the
// pieces the CLI is built from: platform detection, the config registry,
// the install/sync engine, and the tool installer.
//
// # Basic usage
//
//	client, err := dotsync.New(ctx, dotsync.Options{
//	    RepoRoot: "/home/ada/dotfiles",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Install config files from the repository into the home directory.
//	result := client.InstallConfigs(dotsync.RunOptions{})
//
//	// Pull live edits back into the repository.
//	result = client.SyncConfigs(dotsync.RunOptions{})
package dotsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmoser/dotsync/internal/engine"
	"github.com/kmoser/dotsync/internal/installer"
	"github.com/kmoser/dotsync/internal/platform"
	"github.com/kmoser/dotsync/internal/registry"
	"github.com/kmoser/dotsync/internal/settings"
)

// Re-exported result and entry types.
type (
	// Result aggregates per-entry outcomes of an install or sync run.
	Result = engine.Result
	// Action records what happened to a single config entry.
	Action = engine.Action
	// EntryError ties a failure to the entry that caused it.
	EntryError = engine.EntryError
	// Entry is one host ⇄ repository config mapping.
	Entry = registry.Entry
	// Platform is the detected host snapshot.
	Platform = platform.Platform
)

// Options configures a Client.
type Options struct {
	// RepoRoot is the dotfiles repository root. Required.
	// Config files live under RepoRoot/config, tool catalogs under
	// RepoRoot/tools, and settings at RepoRoot/settings.toml.
	RepoRoot string

	// Home overrides the user's home directory. Defaults to os.UserHomeDir.
	Home string

	// SettingsPath overrides the settings file location.
	SettingsPath string
}

// RunOptions configures one install or sync run.
type RunOptions struct {
	DryRun bool
}

// Client ties the detected platform, the config registry, and the loaded
// settings together. Settings are loaded once at construction and passed
// explicitly into every engine call.
type Client struct {
	repoRoot    string
	home        string
	platform    platform.Platform
	settings    settings.Map
	settingsErr error
}

// New detects the platform, loads settings, and returns a ready Client.
// A missing or malformed settings file is not fatal; the warning is
// available via SettingsWarning.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.RepoRoot == "" {
		return nil, fmt.Errorf("RepoRoot is required")
	}
	repoRoot, err := filepath.Abs(opts.RepoRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving repo root: %w", err)
	}

	home := opts.Home
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
	}

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = filepath.Join(repoRoot, "settings.toml")
	}

	m, settingsErr := settings.Load(settingsPath, home, repoRoot)

	return &Client{
		repoRoot:    repoRoot,
		home:        home,
		platform:    platform.New().Detect(ctx),
		settings:    m,
		settingsErr: settingsErr,
	}, nil
}

// Platform returns the detected host snapshot.
func (c *Client) Platform() Platform {
	return c.platform
}

// SettingsWarning returns the non-fatal error from settings loading,
// or nil when the settings file parsed cleanly.
func (c *Client) SettingsWarning() error {
	return c.settingsErr
}

// Entries returns the config registry for the detected platform.
func (c *Client) Entries() []Entry {
	return registry.Builtin(c.home, filepath.Join(c.repoRoot, "config"), c.platform)
}

// InstallConfigs installs every registered config entry, repo → host.
func (c *Client) InstallConfigs(opts RunOptions) *Result {
	eng := &engine.Engine{Settings: c.settings}
	return eng.InstallAll(c.Entries(), engine.Options{DryRun: opts.DryRun})
}

// SyncConfigs copies every registered config entry back, host → repo.
func (c *Client) SyncConfigs(opts RunOptions) *Result {
	eng := &engine.Engine{Settings: c.settings}
	return eng.SyncAll(c.Entries(), engine.Options{DryRun: opts.DryRun})
}

// Installer returns a tool installer for the detected platform, reading
// catalogs from RepoRoot/tools.
func (c *Client) Installer() *installer.Installer {
	return installer.New(c.platform, filepath.Join(c.repoRoot, "tools"))
}
