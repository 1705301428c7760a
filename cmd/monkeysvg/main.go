package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/forkmonkey/cmd/monkeysvg/commands"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "monkeysvg",
	Short: "Monkey DNA renderer",
	Long:  `Command line interface rendering monkey DNA records as SVG, PNG or PDF images.`,

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.Setup(configPath, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with default settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default from config, then info)")

	// Add commands
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.ThumbnailCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.TraitsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
