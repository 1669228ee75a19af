package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var treeDepth int

var (
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	keyStyle    = lipgloss.NewStyle().Bold(true)
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dataStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVarP(&treeDepth, "depth", "d", 3, "Maximum recursion depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <hive> [path]",
		Short: "Recursively print a registry subtree",
		Long: `The tree command renders a key and its descendants, with values.

Example:
  regctl tree HKCU "Software\ExampleApp"
  regctl tree HKLM "Software" --depth 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	hive, err := parseHiveArg(args[0])
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	key, err := hive.Open(registry.Path(path), registry.Read)
	if err != nil {
		return err
	}
	defer key.Close()

	printInfo("%s\n", keyStyle.Render(key.String()))
	return printSubtree(key, "", 1)
}

func printSubtree(key *registry.Key, indent string, depth int) error {
	names, err := key.Values()
	if err != nil {
		return err
	}
	for _, name := range names {
		v, valErr := key.Value(name)
		if valErr != nil {
			continue
		}
		display := name
		if display == "" {
			display = "(Default)"
		}
		printInfo("%s%s %s %s = %s\n",
			indent,
			branchStyle.Render("-"),
			display,
			typeStyle.Render("["+v.Type.String()+"]"),
			dataStyle.Render(v.String()),
		)
	}

	if treeDepth > 0 && depth >= treeDepth {
		return nil
	}
	subkeys, err := key.Keys()
	if err != nil {
		return err
	}
	for _, name := range subkeys {
		printInfo("%s%s %s\n", indent, branchStyle.Render("+"), keyStyle.Render(name))
		sub, subErr := key.Open(registry.Path(name), registry.Read)
		if subErr != nil {
			// Key vanished or access denied partway down; note and continue.
			logger.Debug("skipping subtree", "key", name, "err", subErr)
			continue
		}
		err = printSubtree(sub, indent+"  ", depth+1)
		sub.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
