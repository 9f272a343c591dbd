package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmoser/dotsync/internal/logger"
	"github.com/kmoser/dotsync/internal/platform"
	"github.com/kmoser/dotsync/pkg/dotsync"
)

// newClient builds a dotsync client from the global flags.
func newClient(cmd *cobra.Command) (*dotsync.Client, error) {
	client, err := dotsync.New(cmd.Context(), dotsync.Options{RepoRoot: repoPath})
	if err != nil {
		return nil, fmt.Errorf("opening dotfiles repository %s: %w", repoPath, err)
	}
	return client, nil
}

// printPlatform renders the detected platform the way --platform-info shows it.
func printPlatform(p platform.Platform) {
	logger.Info("OS: %s\n", p.OS)
	if p.Distro != "" {
		logger.Info("Distribution: %s\n", p.Distro)
	}
	if p.PackageManager != "" {
		logger.Info("Package Manager: %s\n", p.PackageManager)
	} else {
		logger.Info("Package Manager: None detected\n")
	}
	if p.WSL {
		logger.Info("Environment: WSL\n")
	}
}

// printResult prints per-entry actions and failures of an engine run.
func printResult(result *dotsync.Result) {
	for _, act := range result.Applied {
		switch act.Action {
		case "synced", "would sync":
			logger.Info("  %s → %s\n", act.HostPath, act.RepoPath)
		default:
			logger.Info("  %s → %s\n", act.RepoPath, act.HostPath)
		}
		if act.Backup != "" {
			logger.Info("    (backed up to %s)\n", act.Backup)
		}
	}
	for _, e := range result.Errors {
		logger.Fail("%v", e)
	}
}
