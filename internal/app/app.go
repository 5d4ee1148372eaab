// Package app implements the application layer for jsl.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.trai.ch/jsl/internal/adapters/detector"
	"go.trai.ch/jsl/internal/adapters/render"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/jsl/internal/engine/cycle"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	opener   ports.CatalogOpener
	pages    ports.PageLoader
	engine   *cycle.Engine
	emitters ports.EmitterFactory
	logger   ports.Logger
	events   ports.EventLog
	settings *domain.Settings
}

// New creates a new App instance.
func New(
	opener ports.CatalogOpener,
	pages ports.PageLoader,
	engine *cycle.Engine,
	emitters ports.EmitterFactory,
	log ports.Logger,
	events ports.EventLog,
	settings *domain.Settings,
) *App {
	return &App{
		opener:   opener,
		pages:    pages,
		engine:   engine,
		emitters: emitters,
		logger:   log,
		events:   events,
		settings: settings,
	}
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// ResolveOptions configuration for the Resolve method.
// Zero values fall back to the loaded settings.
type ResolveOptions struct {
	CatalogPath string
	Format      string
	Concurrency int
	Out         io.Writer
}

// Resolve runs one request cycle per page file and renders the reports in the order the
// files were given. Pages are resolved concurrently against a shared catalog. A page that
// fails is logged and left out of the output; the call then returns
// domain.ErrResolutionFailed after the remaining reports have been written.
func (a *App) Resolve(ctx context.Context, pagePaths []string, opts ResolveOptions) error {
	if len(pagePaths) == 0 {
		return domain.ErrNoPagesSpecified
	}

	renderer, err := a.renderer(opts.Format)
	if err != nil {
		return err
	}

	cat, release, err := a.opener.Open(ctx, a.catalogPath(opts.CatalogPath))
	if err != nil {
		return zerr.Wrap(err, "failed to open catalog")
	}
	defer release()

	reports := make([]*domain.PageReport, len(pagePaths))
	failures := make([]error, len(pagePaths))

	var g errgroup.Group
	g.SetLimit(a.concurrency(opts.Concurrency))
	for i, path := range pagePaths {
		g.Go(func() error {
			report, err := a.resolvePage(ctx, cat, path)
			if err != nil {
				failures[i] = zerr.With(err, "page", path)
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	var (
		done   []domain.PageReport
		failed bool
	)
	for i, r := range reports {
		if failures[i] != nil {
			a.logger.Error(failures[i])
			failed = true
			continue
		}
		done = append(done, *r)
	}

	a.record(done)

	if err := renderer.Render(a.output(opts.Out), done); err != nil {
		return zerr.Wrap(err, "failed to render reports")
	}

	if failed {
		return domain.ErrResolutionFailed
	}
	return nil
}

// record persists the diagnostics of every resolved page in a single write.
// A failing event log is reported but does not fail the resolution.
func (a *App) record(reports []domain.PageReport) {
	if !a.settings.EventLogEnabled {
		return
	}

	var diags []domain.Diagnostic
	for _, r := range reports {
		diags = append(diags, r.Diagnostics...)
	}
	if len(diags) == 0 {
		return
	}

	if err := a.events.Append(diags...); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to record diagnostics"))
	}
}

func (a *App) resolvePage(ctx context.Context, cat ports.Catalog, path string) (*domain.PageReport, error) {
	page, err := a.pages.Load(path)
	if err != nil {
		return nil, err
	}

	emitter := a.emitters.New()
	c := a.engine.Begin(page.URL, cat, emitter)

	for _, reg := range page.Registrations {
		if err := c.Apply(reg); err != nil {
			return nil, zerr.With(err, "cycle_id", c.ID())
		}
	}

	result, err := c.Finalize(ctx)
	if err != nil {
		return nil, zerr.With(err, "cycle_id", c.ID())
	}

	return &domain.PageReport{
		CycleID:     c.ID(),
		Source:      page.Source,
		URL:         page.URL,
		InstallMode: c.InstallMode(),
		Manifest:    emitter.Manifest(),
		Diagnostics: result.Diagnostics,
	}, nil
}

// ListCatalog writes the catalog at path, libraries in ascending id order.
// format is "yaml" or "text"; an empty format selects text.
func (a *App) ListCatalog(ctx context.Context, path, format string, out io.Writer) error {
	cat, release, err := a.opener.Open(ctx, a.catalogPath(path))
	if err != nil {
		return zerr.Wrap(err, "failed to open catalog")
	}
	defer release()

	snapshot, err := cat.Snapshot()
	if err != nil {
		return zerr.Wrap(err, "failed to read catalog")
	}

	switch format {
	case "", "text":
		return render.CatalogTable(a.output(out), snapshot)
	case "yaml":
		return render.CatalogYAML(a.output(out), snapshot)
	default:
		return zerr.With(zerr.New("unsupported catalog format"), "format", format)
	}
}

// ImportCatalog copies the catalog at src into the SQLite catalog at dst.
func (a *App) ImportCatalog(ctx context.Context, src, dst string) error {
	cat, release, err := a.opener.Open(ctx, src)
	if err != nil {
		return zerr.Wrap(err, "failed to open source catalog")
	}
	defer release()

	snapshot, err := cat.Snapshot()
	if err != nil {
		return zerr.Wrap(err, "failed to read source catalog")
	}

	if err := a.opener.Import(ctx, snapshot, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to import catalog"), "destination", dst)
	}

	a.logger.Info(fmt.Sprintf("imported %d libraries into %s", len(snapshot.Libraries), dst))
	return nil
}

// Events writes the diagnostics recorded for cycleID as JSON.
func (a *App) Events(_ context.Context, cycleID string, out io.Writer) error {
	events, err := a.events.ByCycle(cycleID)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read event log"), "cycle_id", cycleID)
	}
	if events == nil {
		events = []domain.Diagnostic{}
	}

	enc := json.NewEncoder(a.output(out))
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return zerr.Wrap(err, "failed to encode events")
	}
	return nil
}

func (a *App) renderer(flag string) (ports.Renderer, error) {
	if flag == "" {
		flag = a.settings.OutputFormat
	}
	return render.New(detector.ResolveFormat(detector.DetectEnvironment(), flag))
}

func (a *App) catalogPath(flag string) string {
	if flag != "" {
		return flag
	}
	return a.settings.CatalogPath
}

func (a *App) concurrency(flag int) int {
	if flag > 0 {
		return flag
	}
	if a.settings.Concurrency > 0 {
		return a.settings.Concurrency
	}
	return runtime.NumCPU()
}

func (a *App) output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
