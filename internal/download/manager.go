package download

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/mcinit/internal/config"
	mchttp "github.com/handiism/mcinit/internal/http"
	ioutils "github.com/handiism/mcinit/internal/io"
	"github.com/handiism/mcinit/internal/log"
	"github.com/handiism/mcinit/internal/model"
	"github.com/handiism/mcinit/internal/provider"
)

// NoticeLevel indicates the severity/type of a notice.
type NoticeLevel int

const (
	LevelInfo NoticeLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Notice is a user-facing lifecycle message.
type Notice struct {
	Text  string
	Level NoticeLevel
}

// Sink consumes a progress stream until it closes. Implementations must
// keep receiving until the channel is closed or return an error.
type Sink interface {
	Consume(events <-chan Event) error
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithIcon converts the image at path into server-icon.png during Prepare.
func WithIcon(path string) ManagerOption {
	return func(m *Manager) {
		m.iconPath = path
	}
}

// WithLogger sets the logger handed to resolvers and the downloader.
func WithLogger(l log.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source used for the EULA timestamp.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager coordinates a server setup: EULA and icon, resolution, download.
type Manager struct {
	settings     *config.Settings
	httpClient   *mchttp.Client
	imageService *ioutils.ImageService
	logger       log.Logger
	iconPath     string
	now          func() time.Time

	onNotice func(Notice)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onNotice func(Notice), opts ...ManagerOption) *Manager {
	m := &Manager{
		settings:     settings,
		imageService: ioutils.NewImageService(),
		logger:       log.Default(),
		now:          time.Now,
		onNotice:     onNotice,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.httpClient = mchttp.NewClient(settings.HTTPOptions())
	return m
}

// Output returns the destination path of the server jar.
func (m *Manager) Output() string {
	return m.settings.Output
}

// Prepare writes eula.txt and server-icon.png next to the output when
// requested. It runs before resolution.
func (m *Manager) Prepare(ctx context.Context) error {
	dir := filepath.Dir(m.settings.Output)

	if m.settings.EULA {
		path, err := ioutils.WriteEULA(dir, m.now())
		if err != nil {
			return fmt.Errorf("write eula: %w", err)
		}
		m.notice(Notice{Text: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose})
	}

	if m.iconPath != "" {
		path, err := m.imageService.WriteServerIcon(ctx, m.iconPath, dir)
		if err != nil {
			return fmt.Errorf("write server icon: %w", err)
		}
		m.notice(Notice{Text: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose})
	}

	return nil
}

// Resolve runs the named resolver against the configured endpoint.
func (m *Manager) Resolve(ctx context.Context, name string, req provider.Request) (*model.Release, error) {
	opts, err := m.settings.ResolverOptions(name, m.logger)
	if err != nil {
		return nil, err
	}
	resolver, err := provider.New(name, m.httpClient, opts...)
	if err != nil {
		return nil, err
	}

	m.notice(Notice{Text: fmt.Sprintf("Resolving %s release", resolver.Name()), Level: LevelVerbose})

	rel, err := resolver.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	m.notice(Notice{Text: fmt.Sprintf("Found %s", rel), Level: LevelInfo})
	return rel, nil
}

// Start creates the output directory and begins downloading rel.
func (m *Manager) Start(ctx context.Context, rel *model.Release) (<-chan Event, error) {
	if err := ioutils.EnsureParentDir(m.settings.Output); err != nil {
		return nil, err
	}
	return m.downloader().Start(ctx, rel.URL, m.settings.Output), nil
}

// Run prepares the directory, resolves the release and downloads it while
// sink renders the progress stream.
func (m *Manager) Run(ctx context.Context, name string, req provider.Request, sink Sink) error {
	if err := m.Prepare(ctx); err != nil {
		return err
	}

	rel, err := m.Resolve(ctx, name, req)
	if err != nil {
		return err
	}

	if err := ioutils.EnsureParentDir(m.settings.Output); err != nil {
		return err
	}

	events := make(chan Event, EventBuffer)
	dest := m.settings.Output
	m.notice(Notice{Text: fmt.Sprintf("Downloading %s to %s", rel.Descriptor(), dest), Level: LevelInfo})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		return m.downloader().Run(gctx, rel.URL, dest, events)
	})
	g.Go(func() error {
		return sink.Consume(events)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	m.notice(Notice{Text: fmt.Sprintf("Saved %s %s", dest, m.sizeOf(dest)), Level: LevelSuccess})
	return nil
}

func (m *Manager) downloader() *Downloader {
	return NewDownloader(m.httpClient, m.logger)
}

func (m *Manager) sizeOf(path string) string {
	n, err := fileSize(path)
	if err != nil {
		return ""
	}
	return "(" + humanize.Bytes(uint64(n)) + ")"
}

func (m *Manager) notice(n Notice) {
	if m.onNotice != nil {
		m.onNotice(n)
	}
}
