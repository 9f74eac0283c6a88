package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"homeprice/internal/controller"
)

const watchDebounce = 200 * time.Millisecond

func runWatch(ctx context.Context, e *env, opts predictOptions) error {
	if opts.input == "" {
		return fmt.Errorf("--watch requires --input")
	}
	g, gctx := errgroup.WithContext(ctx)
	var ctrlOpts []controller.Option
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		ctrlOpts = append(ctrlOpts, controller.WithMetrics(controller.NewMetrics(reg)))
		srv := &http.Server{Addr: opts.metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), ReadHeaderTimeout: 5 * time.Second}
		serveUntilDone(gctx, g, srv, e.log)
	}
	ctrl := newController(e, ctrlOpts...)

	var printMu sync.Mutex
	submit := func(ctx context.Context) {
		values, err := collectValues(opts.input, opts.sets)
		if err != nil {
			e.log.Error().Err(err).Msg("read input")
			return
		}
		out, err := ctrl.SubmitValues(ctx, values)
		if controller.IsInFlight(err) {
			e.log.Info().Str("input", opts.input).Msg("change dropped, prediction in flight")
			return
		}
		if err != nil {
			e.log.Error().Err(err).Msg("submit")
			return
		}
		printMu.Lock()
		defer printMu.Unlock()
		_ = report(ctx, e, out, opts.animate)
	}

	g.Go(func() error {
		submit(gctx)
		return watchFile(gctx, opts.input, watchDebounce, e.log, submit)
	})
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchFile calls fn once per burst of changes to path, after the burst
// has been quiet for debounce. fn runs on its own goroutine, so a change
// that arrives while fn is still running starts another call.
func watchFile(ctx context.Context, path string, debounce time.Duration, log zerolog.Logger, fn func(context.Context)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()
	// editors that save by rename replace the file, so watch its directory
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	var running errgroup.Group
	defer running.Wait()

	tick := time.NewTicker(max(debounce/4, time.Millisecond))
	defer tick.Stop()
	var pending bool
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("input changed")
			pending, last = true, time.Now()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		case <-tick.C:
			if pending && time.Since(last) >= debounce {
				pending = false
				running.Go(func() error {
					fn(ctx)
					return nil
				})
			}
		}
	}
}

// serveUntilDone runs srv on g and shuts it down when ctx ends.
func serveUntilDone(ctx context.Context, g *errgroup.Group, srv *http.Server, log zerolog.Logger) {
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown error")
		}
		return nil
	})
}
