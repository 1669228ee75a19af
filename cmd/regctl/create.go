package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <hive> <path>",
		Short: "Create a registry key",
		Long: `The create command creates a key, including any missing intermediate
keys. Creating a key that already exists succeeds without change.

Example:
  regctl create HKCU "Software\ExampleApp\Settings"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
}

func runCreate(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	key, err := hive.Create(registry.Path(args[1]), registry.Read|registry.Write)
	if err != nil {
		return err
	}
	defer key.Close()

	logger.Info("key created", "key", key.String())
	return nil
}
