package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/mcinit/internal/config"
	"github.com/handiism/mcinit/internal/log"
	"github.com/handiism/mcinit/internal/provider"
)

var (
	// Version is the current version of mcinit
	Version = "0.1.0"

	// settings holds the loaded configuration
	settings *config.Settings

	// logger is the process logger configured from the verbosity flags
	logger log.Logger = log.NewNoop()

	configPath string
	quietFlag  bool
	verbose    bool
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "mcinit",
	Short: "Set up Minecraft servers from vanilla, Paper or Fabric releases",
	Long: `mcinit resolves a Minecraft server release against the provider's
manifest and downloads the server jar, optionally accepting the EULA and
installing a server icon.

Examples:
  mcinit init vanilla
  mcinit init paper 1.21 --build 101 --eula
  mcinit init fabric --loader-version 0.16.0 -o servers/fabric/server.jar`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/mcinit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug logs")

	rootCmd.AddCommand(initCmd, pluginCmd, configCmd)
}

// setup configures logging and loads settings for every command.
func setup(stderr io.Writer) error {
	logger = log.NewText(stderr, log.LevelFromFlags(quietFlag, verbose, debugFlag))
	log.SetDefault(logger)

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	settings, err = config.Load(path)
	if err != nil {
		return err
	}
	settings.ApplyEnv(logger)
	logger.Debug("loaded config", "path", path)
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		printError(os.Stderr, err)
	}
	stop()
	os.Exit(exitCodeFor(err))
}

// printError prints the failure and, when there is one, a hint.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var re *provider.ResolutionError
	if errors.As(err, &re) {
		if s := re.Suggestion(); s != "" {
			fmt.Fprintf(w, "\nSuggestion: %s\n", s)
		}
	}
}
