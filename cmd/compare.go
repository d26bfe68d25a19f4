package cmd

import (
	"fmt"

	"github.com/k1LoW/artstub"
	"github.com/k1LoW/artstub/config"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [FILE]",
	Short: "check that an existing placeholder matches a fresh render",
	Long:  `check that an existing placeholder matches a fresh render.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(configPath, profile)
		if err != nil {
			return err
		}
		target := cfg.Output
		if len(args) == 1 {
			target = args[0]
		}
		current, err := artstub.NewImageFromFile(target)
		if err != nil {
			return err
		}
		g, err := artstub.New(artstub.WithTheme(themeFromConfig(cfg)))
		if err != nil {
			return err
		}
		fresh, err := g.Generate(ctx)
		if err != nil {
			return err
		}
		if !current.Equivalent(fresh) {
			return fmt.Errorf("%s is stale: it no longer matches a fresh render", target)
		}
		cmd.Printf("%s is up to date\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
