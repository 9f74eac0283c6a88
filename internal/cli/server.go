package cli

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"homeprice/internal/stubapi"
)

func runStubServer(ctx context.Context, e *env) error {
	stubapi.SetLogger(e.log)
	stubapi.SetCORSOrigins(e.cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              e.cfg.StubAddr,
		Handler:           stubapi.NewMux(stubapi.AreaValuer{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	serveUntilDone(gctx, g, srv, e.log)
	return g.Wait()
}
