package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newLoadCmd())
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <hive> <name> <file>",
		Short: "Mount a hive image under a root namespace",
		Long: `The load command attaches an on-disk hive image to the live registry
tree, mounted under <hive> as subkey <name>. This changes system-wide
state visible to every process and requires the restore privilege.

Example:
  regctl load HKLM TempHive user-backup.hiv`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args)
		},
	}
}

func runLoad(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	if err := hive.Load(registry.Path(args[1]), registry.Path(args[2])); err != nil {
		return err
	}
	logger.Info("hive mounted", "under", hive.String()+`\`+args[1], "file", args[2])
	return nil
}
