package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after merging defaults, the config file,
SNOWFIELD_* environment variables and flags. The output is a valid config
file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			source := a.loader.ConfigFile()
			if source == "" {
				source = "defaults"
			}
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(w, "# source: %s\n", source); err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
}
