package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newLsCmd())
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <hive> [path]",
		Short: "List the subkeys and values of a key",
		Long: `The ls command lists the direct subkeys and the values of a registry key.

Example:
  regctl ls HKLM "Software\Microsoft"
  regctl ls HKCU`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(args)
		},
	}
}

type valueEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

func runLs(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	}
	logger.Debug("opening key", "hive", hive, "path", path)

	key, err := hive.Open(registry.Path(path), registry.Read)
	if err != nil {
		return err
	}
	defer key.Close()

	keys, err := key.Keys()
	if err != nil {
		return err
	}
	names, err := key.Values()
	if err != nil {
		return err
	}

	values := make([]valueEntry, 0, len(names))
	for _, name := range names {
		v, valErr := key.Value(name)
		if valErr != nil {
			// Value deleted between enumeration and read; skip it.
			logger.Debug("value vanished during listing", "name", name, "err", valErr)
			continue
		}
		values = append(values, valueEntry{Name: name, Type: v.Type.String(), Data: v.String()})
	}

	if jsonOut {
		return printJSON(map[string]any{
			"key":    key.String(),
			"keys":   keys,
			"values": values,
		})
	}

	printInfo("%s\n", key.String())
	for _, name := range keys {
		printInfo("  %s\\\n", name)
	}
	for _, v := range values {
		name := v.Name
		if name == "" {
			name = "(Default)"
		}
		printInfo("  %-30s %-14s %s\n", name, v.Type, v.Data)
	}
	return nil
}
