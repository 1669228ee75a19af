package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newSaveCmd())
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <hive> <file>",
		Short: "Serialize a hive to an on-disk image",
		Long: `The save command writes the hive's subtree to a hive image file.
The caller's token must hold the backup privilege.

Example:
  regctl save HKCU user-backup.hiv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(args)
		},
	}
}

func runSave(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	if err := hive.Save(registry.Path(args[1])); err != nil {
		return err
	}
	logger.Info("hive saved", "hive", hive, "file", args[1])
	return nil
}
