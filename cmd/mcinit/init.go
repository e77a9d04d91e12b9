package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/mcinit/internal/download"
	"github.com/handiism/mcinit/internal/progress"
	"github.com/handiism/mcinit/internal/provider"
	"github.com/handiism/mcinit/internal/tui"
)

var (
	outputFlag string
	eulaFlag   bool
	iconFlag   string
	plainFlag  bool

	snapshotFlag bool
	buildFlag    int

	loaderVersionFlag     string
	installerVersionFlag  string
	unstableLoaderFlag    bool
	unstableInstallerFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Download a server jar",
	Long: `Resolve a server release and download its jar.

An omitted version (or "latest") selects the provider's latest release.

Examples:
  mcinit init vanilla
  mcinit init vanilla --snapshot
  mcinit init paper 1.20.6 --eula
  mcinit init fabric 1.21 --unstable-loader`,
}

var initVanillaCmd = &cobra.Command{
	Use:   "vanilla [version]",
	Short: "Download the official server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, provider.NameVanilla, provider.Request{
			Version:  versionArg(args),
			Snapshot: snapshotFlag,
		})
	},
}

var initPaperCmd = &cobra.Command{
	Use:   "paper [version]",
	Short: "Download a Paper server build",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildFlag < 0 {
			return usageError{fmt.Errorf("invalid build %d: must not be negative", buildFlag)}
		}
		return runInit(cmd, provider.NamePaper, provider.Request{
			Version: versionArg(args),
			Build:   buildFlag,
		})
	},
}

var initFabricCmd = &cobra.Command{
	Use:   "fabric [version]",
	Short: "Download the Fabric server launcher",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, provider.NameFabric, provider.Request{
			Version:           versionArg(args),
			LoaderVersion:     latestToEmpty(loaderVersionFlag),
			InstallerVersion:  latestToEmpty(installerVersionFlag),
			UnstableLoader:    unstableLoaderFlag,
			UnstableInstaller: unstableInstallerFlag,
		})
	},
}

func init() {
	initCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Path of the server jar (default from config, server.jar)")
	initCmd.PersistentFlags().BoolVar(&eulaFlag, "eula", false, "Accept the Minecraft EULA by writing eula.txt")
	initCmd.PersistentFlags().StringVar(&iconFlag, "icon", "", "Image to convert into server-icon.png")
	initCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Print plain progress lines instead of the interactive view")

	initVanillaCmd.Flags().BoolVar(&snapshotFlag, "snapshot", false, "Use the latest snapshot instead of the latest release")

	initPaperCmd.Flags().IntVar(&buildFlag, "build", 0, "Build number (default latest)")

	initFabricCmd.Flags().StringVar(&loaderVersionFlag, "loader-version", "", "Fabric loader version (default latest stable)")
	initFabricCmd.Flags().StringVar(&installerVersionFlag, "installer-version", "", "Fabric installer version (default latest stable)")
	initFabricCmd.Flags().BoolVar(&unstableLoaderFlag, "unstable-loader", false, "Allow an unstable loader as latest")
	initFabricCmd.Flags().BoolVar(&unstableInstallerFlag, "unstable-installer", false, "Allow an unstable installer as latest")

	initCmd.AddCommand(initVanillaCmd, initPaperCmd, initFabricCmd)
}

func versionArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return latestToEmpty(args[0])
}

func latestToEmpty(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "latest") {
		return ""
	}
	return v
}

func runInit(cmd *cobra.Command, name string, req provider.Request) error {
	s := *settings
	if outputFlag != "" {
		s.Output = outputFlag
	}
	if eulaFlag {
		s.EULA = true
	}

	opts := []download.ManagerOption{download.WithLogger(logger)}
	if iconFlag != "" {
		opts = append(opts, download.WithIcon(iconFlag))
	}

	ctx := cmd.Context()

	if !plainFlag && progress.ShouldShowProgress() {
		notices := tui.NewNotices()
		manager := download.NewManager(&s, notices.Notify, opts...)
		if err := tui.Run(ctx, manager, name, req, notices, verbose); err != nil {
			return reportedError{err}
		}
		return nil
	}

	manager := download.NewManager(&s, noticePrinter(cmd.ErrOrStderr()), opts...)
	return manager.Run(ctx, name, req, progress.NewLineSink(cmd.OutOrStdout(), progress.DefaultInterval))
}

// noticePrinter prints manager notices, hiding verbose ones unless
// --verbose is set.
func noticePrinter(w io.Writer) func(download.Notice) {
	return func(n download.Notice) {
		if n.Level == download.LevelVerbose && !verbose {
			return
		}
		if quietFlag && n.Level != download.LevelError {
			return
		}

		prefix := "   "
		switch n.Level {
		case download.LevelError:
			prefix = "✗ "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "✓ "
		case download.LevelInfo:
			prefix = "› "
		}
		fmt.Fprintln(w, prefix+n.Text)
	}
}
