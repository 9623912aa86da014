package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsmgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fsmgen version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
