package cli

import (
	"context"
	"fmt"
	"time"

	"homeprice/internal/predictclient"
)

const defaultHealthTimeout = 5 * time.Second

func runHealth(ctx context.Context, e *env) error {
	timeout := e.cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	h, err := predictclient.New(e.cfg.Endpoint, predictclient.WithLogger(e.log)).Health(ctx)
	if err != nil {
		return fmt.Errorf("health %s: %w", e.cfg.Endpoint, err)
	}
	fmt.Fprintf(e.stdout, "status: %s\nmodel_loaded: %t\nscaler_loaded: %t\n", h.Status, h.ModelLoaded, h.ScalerLoaded)
	if !h.ModelLoaded || !h.ScalerLoaded {
		return fmt.Errorf("service at %s is not ready", e.cfg.Endpoint)
	}
	return nil
}
