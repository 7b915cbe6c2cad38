package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsellier/cpctrain/internal/training"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded training runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := training.NewRunStore().List()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%-36s  %-8s  %s  exit %-3d  %s\n",
				run.ID, run.Status, run.StartedAt.Format("2006-01-02 15:04:05"),
				run.ExitCode, run.CheckpointPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
