package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Println("Simply Supported Beam Diagram Tool")
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
