// Command influencehub runs the marketplace API and its maintenance tasks.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// version is set at build time with -ldflags "-X main.version=...".
	version = "dev"

	envFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "influencehub",
	Short: "Brand and influencer marketplace backend",
	Long: `influencehub serves the campaign, influencer, notification and AI
matching API, and loads influencer data from CSV exports.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
