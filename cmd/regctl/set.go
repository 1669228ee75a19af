package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	setType string
	setList []string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "sz",
		"Value type: sz, expand_sz, multi_sz, dword, qword, binary")
	cmd.Flags().StringSliceVar(&setList, "list", nil,
		"Elements for multi_sz (repeatable; overrides <data>)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <hive> <path> <value> [data]",
		Short: "Write a registry value",
		Long: `The set command writes one value, creating the key if necessary.

Data is interpreted per --type: a string for sz/expand_sz, a decimal or
0x-prefixed number for dword/qword, hex bytes for binary, and --list
elements for multi_sz.

Example:
  regctl set HKCU "Software\ExampleApp" Greeting "hello"
  regctl set HKCU "Software\ExampleApp" Retries 5 --type dword
  regctl set HKCU "Software\ExampleApp" Servers --type multi_sz --list a,b`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func buildValue(args []string) (registry.Value, error) {
	data := ""
	if len(args) > 3 {
		data = args[3]
	}
	switch setType {
	case "sz":
		return registry.StringValue(data)
	case "expand_sz":
		return registry.ExpandStringValue(data)
	case "multi_sz":
		return registry.MultiStringValue(setList)
	case "dword":
		n, err := strconv.ParseUint(data, 0, 32)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid dword %q: %w", data, err)
		}
		return registry.DWordValue(uint32(n)), nil
	case "qword":
		n, err := strconv.ParseUint(data, 0, 64)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid qword %q: %w", data, err)
		}
		return registry.QWordValue(n), nil
	case "binary":
		b, err := hex.DecodeString(data)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid hex data: %w", err)
		}
		return registry.BinaryValue(b), nil
	}
	return registry.Value{}, fmt.Errorf("unknown value type %q", setType)
}

func runSet(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	v, err := buildValue(args)
	if err != nil {
		return err
	}

	key, err := hive.Create(registry.Path(args[1]), registry.Read|registry.Write)
	if err != nil {
		return err
	}
	defer key.Close()

	if err := key.SetValue(args[2], v); err != nil {
		return err
	}
	logger.Info("value written", "key", key.String(), "name", args[2], "type", v.Type)
	return nil
}
