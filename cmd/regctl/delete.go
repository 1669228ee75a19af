package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	deleteRecursive bool
	deleteForce     bool
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVarP(&deleteRecursive, "recursive", "r", false,
		"Delete subkeys too (required if the key has subkeys)")
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hive> <path>",
		Short: "Delete a registry key",
		Long: `The delete command removes a key. Without --recursive it refuses keys
that still have subkeys. A recursive delete is irreversible and, if it
fails partway, may already have removed part of the subtree.

Example:
  regctl delete HKCU "Software\OldApp"
  regctl delete HKCU "Software\OldApp" --recursive --force`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	target := hive.String() + `\` + args[1]

	if !deleteForce && !quiet {
		printInfo("Delete %s", target)
		if deleteRecursive {
			printInfo(" and all subkeys")
		}
		printInfo("? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	if err := hive.Delete(registry.Path(args[1]), deleteRecursive); err != nil {
		if errors.Is(err, registry.ErrNotEmpty) {
			return fmt.Errorf("%w (use --recursive to delete subkeys)", err)
		}
		return err
	}
	logger.Info("key deleted", "key", target, "recursive", deleteRecursive)
	return nil
}
