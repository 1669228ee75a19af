package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <hive> <path> <value>",
		Short: "Read a single registry value",
		Long: `The get command reads one value from a key. Use an empty value name
("") for the key's default value.

Example:
  regctl get HKCU "Software\ExampleApp" Greeting
  regctl get HKLM "Software\Microsoft\Windows NT\CurrentVersion" ProductName`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	key, err := hive.Open(registry.Path(args[1]), registry.Read)
	if err != nil {
		return err
	}
	defer key.Close()

	v, err := key.Value(args[2])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"key":   key.String(),
			"name":  args[2],
			"type":  v.Type.String(),
			"data":  v.String(),
			"bytes": hex.EncodeToString(v.Data),
		})
	}
	printInfo("%s  %s\n", v.Type, v.String())
	return nil
}
