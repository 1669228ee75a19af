package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newUnloadCmd())
}

func newUnloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unload <hive> <name>",
		Short: "Detach a previously mounted hive",
		Long: `The unload command detaches a hive mounted with load. It fails while
any process still holds open handles below the mount point, so close
your own handles first.

Example:
  regctl unload HKLM TempHive`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnload(args)
		},
	}
}

func runUnload(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	if err := hive.Unload(registry.Path(args[1])); err != nil {
		return err
	}
	logger.Info("hive unloaded", "mount", hive.String()+`\`+args[1])
	return nil
}
