package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/netgrid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of netgrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netgrid version %s\n", strings.TrimSpace(netgrid.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
