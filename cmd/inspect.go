package cmd

import (
	"github.com/k1LoW/artstub"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "show dimensions, size and fingerprints of a PNG",
	Long:  `show dimensions, size and fingerprints of a PNG.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := artstub.Inspect(args[0])
		if err != nil {
			return err
		}
		cmd.Print(in.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
