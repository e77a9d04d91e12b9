package provider

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	mchttp "github.com/handiism/mcinit/internal/http"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("release not found")

// Axis identifies which part of a request could not be satisfied.
type Axis int

const (
	AxisVersion Axis = iota
	AxisBuild
	AxisLoader
	AxisInstaller
)

func (a Axis) String() string {
	switch a {
	case AxisVersion:
		return "version"
	case AxisBuild:
		return "build"
	case AxisLoader:
		return "loader"
	case AxisInstaller:
		return "installer"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func (a Axis) label() string {
	switch a {
	case AxisVersion:
		return "Minecraft version"
	case AxisBuild:
		return "Build"
	case AxisLoader:
		return "Loader version"
	case AxisInstaller:
		return "Installer version"
	}
	return a.String()
}

// NotFoundError reports a requested identifier that the manifest does not
// offer, together with the latest value on that axis.
type NotFoundError struct {
	Provider  string
	Axis      Axis
	Requested string
	Latest    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found. Latest is %s", e.Axis.label(), e.Requested, e.Latest)
}

// Is reports true for ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ErrorType classifies resolution failures.
type ErrorType int

const (
	// ErrTypeNetwork is a transport failure with no more specific class.
	ErrTypeNetwork ErrorType = iota
	ErrTypeTimeout
	ErrTypeDNS
	ErrTypeConnection
	ErrTypeTLS
	// ErrTypeStatus is a non-2xx manifest response.
	ErrTypeStatus
	// ErrTypeParsing is a manifest body that is not the expected JSON.
	ErrTypeParsing
	// ErrTypeManifest is a well-formed manifest missing required data.
	ErrTypeManifest
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeNetwork:
		return "network"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeDNS:
		return "dns"
	case ErrTypeConnection:
		return "connection"
	case ErrTypeTLS:
		return "tls"
	case ErrTypeStatus:
		return "status"
	case ErrTypeParsing:
		return "parsing"
	case ErrTypeManifest:
		return "manifest"
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// ResolutionError is a transport, parse or content failure while querying
// a manifest.
type ResolutionError struct {
	Provider string
	Type     ErrorType
	Message  string
	Err      error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s resolver: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s resolver: %s", e.Provider, e.Message)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Suggestion returns a short hint for the user, or "".
func (e *ResolutionError) Suggestion() string {
	switch e.Type {
	case ErrTypeTimeout:
		return "The manifest server is slow to answer; try again or raise the timeout with 'mcinit config set timeout 60s'"
	case ErrTypeDNS, ErrTypeConnection, ErrTypeNetwork:
		return "Check your internet connection and try again"
	case ErrTypeTLS:
		return "There may be a certificate issue; check your system time and proxy settings"
	case ErrTypeStatus:
		return "The provider API rejected the request; it may be down or the endpoint setting may be wrong"
	case ErrTypeParsing, ErrTypeManifest:
		return "The provider returned unexpected data; the endpoint setting may point at the wrong API"
	}
	return ""
}

// ClassifyError returns the most specific ErrorType for err.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrTypeNetwork
	}

	var statusErr *mchttp.StatusError
	if errors.As(err, &statusErr) {
		return ErrTypeStatus
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrTypeParsing
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTypeTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return ErrTypeTimeout
		}
		return ErrTypeDNS
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return ErrTypeTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return ErrTypeTimeout
		}
		return ErrTypeConnection
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrTypeTimeout
		}
		msg := urlErr.Err.Error()
		if strings.Contains(msg, "certificate") || strings.Contains(msg, "x509") || strings.Contains(msg, "tls") {
			return ErrTypeTLS
		}
	}

	return ErrTypeNetwork
}

func fetchError(provider, message string, err error) *ResolutionError {
	return &ResolutionError{
		Provider: provider,
		Type:     ClassifyError(err),
		Message:  message,
		Err:      err,
	}
}

func manifestError(provider, format string, args ...any) *ResolutionError {
	return &ResolutionError{
		Provider: provider,
		Type:     ErrTypeManifest,
		Message:  fmt.Sprintf(format, args...),
	}
}
