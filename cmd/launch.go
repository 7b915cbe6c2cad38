package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tsellier/cpctrain/internal/config"
	"github.com/tsellier/cpctrain/internal/launch"
)

var launchCmd = &cobra.Command{
	Use:   "launch [training args...]",
	Short: "Snapshot the source tree and launch a training run",
	Long: `Launch prepares the experiment directory named by --pathCheckpoint, copies a
filtered snapshot of the source tree into <pathCheckpoint>/code/, appends the
invocation to <pathCheckpoint>/out.txt, and runs the training process with the
default hyperparameters. Every argument is forwarded to the trainer verbatim, so
any default can be overridden by repeating its flag.`,
	// All tokens after "launch" belong to the trainer, including flags we have
	// never heard of. Cobra must not try to parse them.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
			return cmd.Help()
		}

		cfg, err := config.DefaultConfig()
		if err != nil {
			exitError("%v", err)
		}

		code, err := launch.New(cfg).Run(args)
		if err != nil {
			exitError("%v", err)
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
}
