// Package app wires configuration, keymaps, the chord session, file
// watching and metrics together for the keychord command.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/input/chordtree"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/tracker"
)

// Application owns one chord session and keeps its bindings in sync with
// the configured keymap files.
type Application struct {
	cfg      *config.Config
	log      *logrus.Entry
	loader   *keymap.Loader
	registry *prometheus.Registry
	session  *tracker.Session

	mu       sync.Mutex
	sources  []string
	watcher  *watcher.Watcher
	server   *http.Server
	addr     net.Addr
	onReload []func(ReloadResult)
	running  bool
}

// ReloadResult describes one attempt to rebuild the bindings.
type ReloadResult struct {
	// Nodes is the size of the new tree, or zero if the reload failed.
	Nodes int
	// Warnings are per-binding problems; those bindings were skipped.
	Warnings []error
	// Err is set when the keymap could not be loaded at all. The previous
	// bindings stay in place.
	Err error
}

// New loads the configured keymaps and creates the session.
func New(cfg *config.Config, log *logrus.Logger) (*Application, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	app := &Application{
		cfg:      cfg,
		log:      log.WithField("component", "app"),
		registry: prometheus.NewRegistry(),
	}
	app.loader = keymap.NewLoader(log.WithField("component", "keymap"))
	for _, dir := range cfg.Keymap.SearchPaths {
		app.loader.AddSearchPath(dir)
	}

	tree, sources, warnings, err := app.build()
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}
	app.sources = sources

	app.registry.MustRegister(collectors.NewGoCollector())
	app.session = tracker.NewSession(tree,
		tracker.WithLogger(log.WithField("component", "session")),
		tracker.WithMetrics(tracker.NewMetrics(app.registry)),
	)
	app.log.WithFields(logrus.Fields{
		"session":  app.session.ID(),
		"nodes":    tree.Len(),
		"sources":  sources,
		"warnings": len(warnings),
	}).Info("bindings loaded")
	return app, nil
}

// Session returns the chord session.
func (app *Application) Session() *tracker.Session {
	return app.session
}

// Registry returns the metrics registry the session reports to.
func (app *Application) Registry() *prometheus.Registry {
	return app.registry
}

// Sources returns the keymap files currently providing bindings. It is
// empty when the built-in defaults are in use.
func (app *Application) Sources() []string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return append([]string(nil), app.sources...)
}

// MetricsAddr returns the address the metrics endpoint listens on, or nil.
func (app *Application) MetricsAddr() net.Addr {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.addr
}

// OnReload registers a callback run after every reload attempt.
func (app *Application) OnReload(fn func(ReloadResult)) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.onReload = append(app.onReload, fn)
}

// LoadDocuments reads the configured keymaps. An explicit keymap path must
// load; search paths may be empty, in which case the built-in defaults are
// used. Files that fail to load are returned as errors alongside the
// documents that did load.
func (app *Application) LoadDocuments() ([]*keymap.Document, []error, error) {
	if path := app.cfg.Keymap.Path; path != "" {
		doc, err := app.loader.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return []*keymap.Document{doc}, nil, nil
	}

	docs, errs := app.loader.LoadAll()
	if len(docs) == 0 {
		if len(errs) > 0 {
			return nil, errs, fmt.Errorf("%w: %w", ErrNoBindings, errors.Join(errs...))
		}
		app.log.Debug("no keymap files found, using defaults")
		return []*keymap.Document{keymap.Defaults()}, nil, nil
	}
	return docs, errs, nil
}

func (app *Application) build() (*chordtree.Tree, []string, []error, error) {
	docs, fileErrs, err := app.LoadDocuments()
	if err != nil {
		return nil, nil, nil, err
	}
	tree, warnings := keymap.Build(app.log, docs...)

	var sources []string
	for _, doc := range docs {
		if doc.Source != "" && doc.Source != "default" {
			sources = append(sources, doc.Source)
		}
	}
	return tree, sources, append(fileErrs, warnings...), nil
}

// Reload rebuilds the bindings from disk and swaps them into the session.
// If loading fails the session keeps its current bindings.
func (app *Application) Reload() ReloadResult {
	var result ReloadResult
	tree, sources, warnings, err := app.build()
	if err != nil {
		app.log.WithError(err).Error("reload failed, keeping current bindings")
		result.Err = err
	} else {
		app.session.Rebind(tree)
		result.Nodes = tree.Len()
		result.Warnings = warnings
		app.setSources(sources)
	}

	app.mu.Lock()
	hooks := append([]func(ReloadResult){}, app.onReload...)
	app.mu.Unlock()
	for _, fn := range hooks {
		fn(result)
	}
	return result
}

// setSources records the new source list and keeps the watcher in step.
func (app *Application) setSources(sources []string) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.watcher != nil {
		for _, old := range app.sources {
			_ = app.watcher.Unwatch(old)
		}
		for _, path := range sources {
			if err := app.watcher.Watch(path); err != nil {
				app.log.WithError(err).WithField("path", path).Warn("cannot watch keymap")
			}
		}
	}
	app.sources = sources
}

// Start begins watching keymap files and serving metrics, as configured.
func (app *Application) Start() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running {
		return ErrAlreadyRunning
	}

	if app.cfg.Keymap.Watch {
		w, err := watcher.New(
			watcher.WithDebounce(app.cfg.Keymap.Debounce.Std()),
			watcher.WithLogger(app.log.WithField("component", "watcher")),
		)
		if err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
		watchPaths := app.sources
		if p := app.cfg.Keymap.Path; p != "" && len(watchPaths) == 0 {
			watchPaths = []string{p}
		}
		for _, path := range watchPaths {
			if err := w.Watch(path); err != nil {
				_ = w.Close()
				return &InitError{Component: "watcher", Err: err}
			}
		}
		w.OnChange(func(ev watcher.Event) {
			app.log.WithFields(logrus.Fields{
				"path": ev.Path,
				"op":   ev.Op.String(),
			}).Info("keymap changed")
			app.Reload()
		})
		app.watcher = w
	}

	if app.cfg.Metrics.Enabled {
		ln, err := net.Listen("tcp", app.cfg.Metrics.Addr)
		if err != nil {
			if app.watcher != nil {
				_ = app.watcher.Close()
				app.watcher = nil
			}
			return &InitError{Component: "metrics", Err: err}
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
		app.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		app.addr = ln.Addr()
		go func(srv *http.Server) {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				app.log.WithError(err).Error("metrics server stopped")
			}
		}(app.server)
		app.log.WithField("addr", app.addr.String()).Info("serving metrics")
	}

	app.running = true
	return nil
}

// Close stops the watcher and the metrics server.
func (app *Application) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	app.mu.Lock()
	w, srv := app.detachLocked()
	app.mu.Unlock()
	return shutdown(ctx, w, srv)
}

// detachLocked takes ownership of the running components so they can be
// stopped without holding app.mu; a reload in flight needs the lock.
func (app *Application) detachLocked() (*watcher.Watcher, *http.Server) {
	w, srv := app.watcher, app.server
	app.watcher, app.server, app.addr = nil, nil, nil
	app.running = false
	return w, srv
}

func shutdown(ctx context.Context, w *watcher.Watcher, srv *http.Server) error {
	var errs []error
	if w != nil {
		errs = append(errs, w.Close())
	}
	if srv != nil {
		errs = append(errs, srv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
