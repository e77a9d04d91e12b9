package main

import (
	"errors"

	"github.com/handiism/mcinit/internal/download"
	"github.com/handiism/mcinit/internal/plugins"
	"github.com/handiism/mcinit/internal/provider"
	"github.com/handiism/mcinit/internal/tui"
)

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitNotFound indicates the requested version, build, loader,
	// installer or plugin does not exist
	ExitNotFound = 3

	// ExitNetwork indicates a manifest could not be fetched or parsed
	ExitNetwork = 4

	// ExitDownloadFailed indicates the artifact request or transfer failed
	ExitDownloadFailed = 5

	// ExitInterrupted indicates the user cancelled
	ExitInterrupted = 130
)

// usageError marks errors caused by bad arguments.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// reportedError wraps an error the UI already showed to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func exitCodeFor(err error) int {
	var (
		usage       usageError
		resolution  *provider.ResolutionError
		statusErr   *download.StatusError
		transferErr *download.TransferError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, tui.ErrInterrupted):
		return ExitInterrupted
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, provider.ErrNotFound), errors.Is(err, plugins.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &resolution):
		return ExitNetwork
	case errors.As(err, &statusErr), errors.As(err, &transferErr), errors.Is(err, download.ErrIncomplete):
		return ExitDownloadFailed
	}
	return ExitGeneral
}
