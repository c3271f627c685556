package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sortedcontainers",
	Short: "Compute union, intersection and difference of line-oriented sets and bags",
}

func init() {
	rootCmd.AddCommand(buildUnionCmd())
	rootCmd.AddCommand(buildIntersectionCmd())
	rootCmd.AddCommand(buildDifferenceCmd())
	rootCmd.AddCommand(buildOccurrencesCmd())
	rootCmd.AddCommand(buildVersionCmd())
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
