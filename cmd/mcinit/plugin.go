package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	mchttp "github.com/handiism/mcinit/internal/http"
	"github.com/handiism/mcinit/internal/plugins"
)

var searchLimit int

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Look up server plugins on Modrinth",
	Long: `Look up server plugins in the Modrinth catalog.

Examples:
  mcinit plugin info luckperms
  mcinit plugin search worldedit --limit 5`,
}

var pluginInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a plugin's title, description and download count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pluginClient().Project(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Title:       %s\n", p.Title)
		fmt.Fprintf(out, "Description: %s\n", p.Description)
		fmt.Fprintf(out, "Downloads:   %s\n", humanize.Comma(p.Downloads))
		return nil
	},
}

var pluginSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search plugins by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		hits, err := pluginClient().Search(cmd.Context(), query, searchLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(hits) == 0 {
			fmt.Fprintf(out, "No plugins found for %q.\n", query)
			return nil
		}
		for _, p := range hits {
			fmt.Fprintf(out, "%-24s %12s  %s\n", p.Slug, humanize.Comma(p.Downloads), p.Title)
		}
		return nil
	},
}

func init() {
	pluginSearchCmd.Flags().IntVar(&searchLimit, "limit", plugins.DefaultLimit, "Maximum number of results")
	pluginCmd.AddCommand(pluginInfoCmd, pluginSearchCmd)
}

func pluginClient() *plugins.Client {
	return plugins.NewClient(mchttp.NewClient(settings.HTTPOptions()), settings.ModrinthAPI)
}
