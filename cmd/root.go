package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "mcstats",
	Short: "Minecraft server leaderboard compiler",
	Long: `Aggregate per-player Minecraft and Cobblemon stat files into ranked
leaderboards, persist them to SQLite and a spreadsheet template, and render
leaderboard images. All behavior is driven by the config file.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.ini", "path to config file")

	rootCmd.AddCommand(showCmd)
}
