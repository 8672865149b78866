package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
	"github.com/rpgo/investsim/internal/output"
)

const defaultExampleConfigFile = "investsim.yaml"

func newExampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example configuration",
		Long:  `Writes the example configuration as YAML, or as TOML when the file ends in .toml.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := defaultExampleConfigFile
			if len(args) == 1 {
				filename = args[0]
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(example, filename); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
			return nil
		},
	}
}
