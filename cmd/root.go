package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cpctrain",
	Short: "CPC training-run launcher",
	Long:  "cpctrain prepares a reproducible experiment directory, snapshots the source tree into it, and launches the CPC training process with the project's default hyperparameters.",
}

func Execute() error {
	return rootCmd.Execute()
}

func exitError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
