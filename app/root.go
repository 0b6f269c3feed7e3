// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suggestion-box",
	Short: "Suggestion Box is an anonymous suggestion service for the Mary Jean II crew",
	Long: `Suggestion Box is an anonymous suggestion web service for the Mary Jean II crew
that lets crew members submit suggestions and administrators review, delete,
export and email weekly reports of them.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
