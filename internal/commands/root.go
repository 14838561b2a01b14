// ABOUTME: Root command and CLI initialization for cursorgen
// ABOUTME: Sets up cobra command structure and flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	repoRoot  string
	checkOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "cursorgen",
	Short: "Generate Cursor plugin artifacts from repo metadata",
	Long: `cursorgen keeps Claude and Cursor plugin metadata in sync.

It derives two generated files from existing repo metadata:
  - .cursor-plugin/plugin.json  from .claude-plugin/plugin.json and skills/*/SKILL.md
  - .mcp.json                   from gemini-extension.json when available

Running it is idempotent: unchanged inputs produce byte-identical outputs
and no file writes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(repoRoot, checkOnly)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	rootCmd.Flags().StringVar(&repoRoot, "root", "", "Repository root containing the metadata files (default: current directory)")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Validate generated files are up-to-date without writing changes")
}
