package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmoser/dotsync/internal/logger"
	"github.com/kmoser/dotsync/pkg/dotsync"
)

var syncRepoCmd = &cobra.Command{
	Use:   "sync-repo",
	Short: "Copy host configs back into the repository",
	Long: `Copies every registered config file or directory from the home
directory back into the repository. The sync direction never templates
and never backs up: the repository is version-controlled, so its
previous state is already protected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		logger.Action("Syncing configuration files back to repository...")
		result := client.SyncConfigs(dotsync.RunOptions{DryRun: dryRun})
		printResult(result)

		if !result.OK() {
			logger.Fail("Failed to sync some configuration files")
			return fmt.Errorf("%d config entr%s failed to sync",
				len(result.Errors), plural(len(result.Errors), "y", "ies"))
		}
		logger.OK("Configuration files synced to repository")
		return nil
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	rootCmd.AddCommand(syncRepoCmd)
}
