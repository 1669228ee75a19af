package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	// Global flags, overridable through REGCTL_* environment variables.
	verbose bool
	quiet   bool
	jsonOut bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "regctl",
	})
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Inspect and manipulate the live Windows registry",
	Long: `regctl operates on the running system's registry: listing keys and
values, creating and deleting keys, writing values, and mounting or
serializing whole hives. Hives accept canonical names (HKEY_LOCAL_MACHINE)
or the usual abbreviations (HKLM, HKCU, HKCR, HKU, HKCC).`,
	Version: "0.1.0",
	PersistentPreRun: func(*cobra.Command, []string) {
		verbose = viper.GetBool("verbose")
		quiet = viper.GetBool("quiet")
		jsonOut = viper.GetBool("json")
		switch {
		case quiet:
			logger.SetLevel(log.ErrorLevel)
		case verbose:
			logger.SetLevel(log.DebugLevel)
		default:
			logger.SetLevel(log.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	viper.SetEnvPrefix("REGCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// parseHiveArg resolves the first positional argument into a Hive.
func parseHiveArg(s string) (registry.Hive, error) {
	h, err := registry.ParseHive(s)
	if err != nil {
		return 0, fmt.Errorf("unknown hive %q (try HKLM, HKCU, HKCR, HKU, HKCC)", s)
	}
	return h, nil
}

// printJSON outputs data as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printInfo prints a data line unless quiet mode is on.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
