package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netgrid",
	Short: "netgrid is an addressable device network simulator",
	Long:  `Netgrid assembles a tree of addressable devices (mainframes, relays, terminals) and streams character traffic between them onto a line-buffered console.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Topology config file (YAML); built-in default grid when unset")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
