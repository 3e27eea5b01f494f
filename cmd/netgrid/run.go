package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/netgrid/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Transmit text across the grid onto the console",
	Long:  `Builds the device grid, sends a message from the mainframe to the terminal in fixed-size character packets, and paints the resulting console surface.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		text, _ := cmd.Flags().GetString("text")
		width, _ := cmd.Flags().GetInt("width")
		lines, _ := cmd.Flags().GetInt("lines")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		if len(args) > 0 && !cmd.Flags().Changed("text") {
			text = args[0]
		}

		err := cli.Run(cli.RunOptions{
			ConfigPath: configPath,
			Text:       text,
			Width:      width,
			Lines:      lines,
			Debug:      debug,
			NoBanner:   noBanner,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("text", "hello world", "Text to transmit")
	runCmd.Flags().Int("width", 0, "Console line width (0 = config or terminal width)")
	runCmd.Flags().Int("lines", 0, "Console display lines (0 = config or terminal height)")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
