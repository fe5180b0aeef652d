package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/match"
	"github.com/danieljhkim/refolder/internal/naming"
)

var (
	version = "dev"

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// runFlags holds the command-line flags of one command instance.
type runFlags struct {
	matching      string
	subfolders    int
	prefix        string
	suffix        string
	recursive     bool
	dryRun        bool
	force         bool
	failFast      bool
	caseSensitive bool
	jsonOutput    bool
	verbose       bool
	configPath    string

	logger *zap.Logger
}

// rootCmd is the root command for refolder.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     "refolder <path>",
		Version: version,
		Short:   "Distribute files into evenly sized subfolders",
		Long: `refolder moves the files of a directory into N balanced subfolders.

Files matching --matching are split in sorted order into contiguous groups
named <prefix>-1..N (or <prefix>-a.. with --suffix letters). Folders left by an
earlier run are dissolved and redistributed, so running again with a different
--subfolders count rebalances the same files.`,
		Example: `  refolder ./photos --subfolders 4 --matching "*.jpg" --dry-run
  refolder . -s 3 -p batch --suffix letters`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(flags.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			flags.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flags.logger != nil {
				_ = flags.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefolder(cmd, args[0], flags)
		},
	}

	cmd.SetHelpFunc(customHelpFunc)
	cmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&flags.matching, "matching", "m", match.DefaultPattern, "Glob matched against file names")
	f.IntVarP(&flags.subfolders, "subfolders", "s", 0, "Number of subfolders to create (required)")
	f.StringVarP(&flags.prefix, "prefix", "p", naming.DefaultPrefix, "Subfolder name prefix")
	f.StringVar(&flags.suffix, "suffix", string(naming.StyleNumbers),
		"Subfolder suffix style ("+styleNames()+")")
	f.BoolVarP(&flags.recursive, "recursive", "r", false, "Include files in nested subdirectories")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Print the planned actions without changing anything")
	f.BoolVarP(&flags.force, "force", "f", false, "Overwrite existing destination files")
	f.BoolVar(&flags.failFast, "fail-fast", false, "Stop at the first failed move")
	f.BoolVar(&flags.caseSensitive, "case-sensitive", false, "Match --matching case-sensitively")
	f.BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")
	f.StringVar(&flags.configPath, "config", "", "Defaults file (default $REFOLDER_CONFIG or ~/.config/refolder/config.toml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	_ = cmd.MarkFlagRequired("subfolders")

	cmd.AddCommand(newCompletionCmd())
	return cmd
}

// wordSepNormalizeFunc accepts underscores in flag names, so --fail_fast
// matches the fail_fast key of the defaults file.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func styleNames() string {
	styles := naming.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return strings.Join(names, "|")
}

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
	rootCmd.Version = v
}

// customHelpFunc prints help with colored section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.Example != "" {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	hasCommands := false
	for _, c := range cmd.Commands() {
		if c.Hidden || !c.IsAvailableCommand() {
			continue
		}
		if !hasCommands {
			help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
			help.WriteString("\n")
			hasCommands = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasCommands {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// newCompletionCmd generates shell completion scripts.
func newCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: `Generate the autocompletion script for refolder for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
		Args: cobra.NoArgs,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	return completionCmd
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
