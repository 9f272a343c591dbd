package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmoser/dotsync/internal/logger"
	"github.com/kmoser/dotsync/pkg/dotsync"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	repoPath     string
	debug        bool
	noColor      bool
	dryRun       bool
	installAll   bool
	configsOnly  bool
	platformInfo bool
	toolList     []string
)

var rootCmd = &cobra.Command{
	Use:   "dotsync",
	Short: "Install and synchronize dotfiles and tools across platforms",
	Long: `dotsync installs a personal dotfiles repository onto the current host:
it detects the platform and package manager, installs categorized tool
sets, and copies or templates configuration files into the home
directory, backing up whatever it overwrites.

With no flags, dotsync installs essential tools and all config files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug, noColor)
	},
	RunE: runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dotsync %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", ".", "path to the dotfiles repository")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would be done without doing it")

	rootCmd.Flags().BoolVar(&installAll, "all", false, "install everything (all tool categories + configs)")
	rootCmd.Flags().BoolVar(&configsOnly, "configs", false, "install configuration files")
	rootCmd.Flags().BoolVar(&platformInfo, "platform-info", false, "show platform information and exit")
	rootCmd.Flags().StringSliceVar(&toolList, "tools", nil, "install tools from the given categories")
	rootCmd.Flags().Lookup("tools").NoOptDefVal = "essential"

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	if platformInfo {
		printPlatform(client.Platform())
		return nil
	}

	plan := buildPlan(installAll, cmd.Flags().Changed("tools"), configsOnly, toolList)

	logger.Info("🚀 Dotfiles Installer\n")
	logger.Info("%s\n", strings.Repeat("=", 50))
	printPlatform(client.Platform())
	logger.Info("\n")

	if warn := client.SettingsWarning(); warn != nil {
		logger.Warn("settings: %v\n", warn)
	}

	if dryRun {
		logger.Info("DRY RUN MODE - No changes will be made\n\n")
	}
	if plan.Tools {
		logger.Action("Will install tools: %s", strings.Join(plan.Categories, ", "))
	}
	if plan.Configs {
		logger.Action("Will install configuration files")
	}

	if dryRun {
		if plan.Configs {
			printResult(client.InstallConfigs(dotsync.RunOptions{DryRun: true}))
		}
		logger.Info("\nDry run completed. Use without --dry-run to actually install.\n")
		return nil
	}
	logger.Info("\n")

	success := true

	if plan.Tools {
		logger.Info("📦 Installing Tools\n")
		logger.Info("%s\n", strings.Repeat("-", 30))

		inst := client.Installer()
		if !inst.InstallPackageManager(cmd.Context()) {
			logger.Fail("Failed to set up package manager")
			success = false
		} else if !inst.InstallTools(cmd.Context(), plan.Categories) {
			logger.Fail("Failed to install some tools")
			success = false
		}
		logger.Info("\n")
	}

	if plan.Configs {
		logger.Info("⚙️  Installing Configuration Files\n")
		logger.Info("%s\n", strings.Repeat("-", 40))

		result := client.InstallConfigs(dotsync.RunOptions{})
		printResult(result)
		if !result.OK() {
			logger.Fail("Failed to install some configuration files")
			success = false
		}
		logger.Info("\n")
	}

	if !success {
		logger.Fail("Installation completed with errors")
		return fmt.Errorf("installation completed with errors")
	}

	logger.Success("🎉 Installation completed successfully!\n")
	logger.Info("\nNext steps:\n")
	logger.Info("1. Restart your terminal or run: source ~/.zshrc\n")
	logger.Info("2. Customize settings.toml with your preferences\n")
	logger.Info("3. Run 'dotsync --configs' again to apply template changes\n")
	return nil
}

// plan captures what a root invocation should do.
type plan struct {
	Tools      bool
	Configs    bool
	Categories []string
}

// buildPlan maps the flag surface to a run plan. No flags means the
// default behavior: essential tools plus configs. --all expands to every
// category; --tools with no value defaults to essential.
func buildPlan(all, toolsSet, configs bool, categories []string) plan {
	p := plan{
		Tools:      all || toolsSet,
		Configs:    all || configs,
		Categories: categories,
	}

	if !p.Tools && !p.Configs {
		p.Tools = true
		p.Configs = true
		p.Categories = []string{"essential"}
		return p
	}

	if all {
		p.Categories = []string{"essential", "development", "optional"}
	} else if p.Tools && len(p.Categories) == 0 {
		p.Categories = []string{"essential"}
	}
	return p
}
