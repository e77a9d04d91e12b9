package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/mcinit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcinit configuration",
	Long: `Manage mcinit configuration settings.

Configuration is stored in $XDG_CONFIG_HOME/mcinit/config.toml.

Examples:
  mcinit config list
  mcinit config get timeout
  mcinit config set eula true`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := settings.Get(args[0])
		if !ok {
			return usageError{unknownKey(args[0])}
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := settings.Get(args[0]); !ok {
			return usageError{unknownKey(args[0])}
		}
		if err := settings.Set(args[0], args[1]); err != nil {
			return usageError{err}
		}

		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := settings.Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings with their values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range config.SortedKeys() {
			value, _ := settings.Get(key)
			fmt.Fprintf(out, "%-18s %s\n", key, value)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd, configPathCmd)
}

func unknownKey(key string) error {
	msg := fmt.Sprintf("unknown config key: %s\n\nAvailable keys:", key)
	keys := config.AvailableKeys()
	for _, k := range config.SortedKeys() {
		msg += fmt.Sprintf("\n  %-18s %s", k, keys[k])
	}
	return fmt.Errorf("%s", msg)
}
