package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/listmenu/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect listmenu configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var output string
	get := &cobra.Command{
		Use:   "get",
		Short: "Print the effective configuration (defaults, file and flags merged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := config.ParseFormat(output)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	get.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|toml")

	cmd.AddCommand(get)
	return cmd
}
