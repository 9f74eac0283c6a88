package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"homeprice/internal/anim"
	"homeprice/internal/config"
	"homeprice/internal/controller"
	"homeprice/internal/form"
	"homeprice/internal/predictclient"
	"homeprice/pkg/types"
)

const frameInterval = 33 * time.Millisecond

type predictOptions struct {
	input       string
	sets        []string
	animate     bool
	watch       bool
	metricsAddr string
}

// collectValues reads the input file, if any, and applies --set
// overrides. Select fields missing from both start at their initial
// option; missing number fields stay empty and are sent as null.
func collectValues(input string, sets []string) (map[string]string, error) {
	values := form.New().Values()
	if input != "" {
		v, err := config.LoadValues(input)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		for k, s := range v {
			if _, ok := form.Lookup(k); !ok {
				return nil, fmt.Errorf("input %s: unknown field %q", input, k)
			}
			values[k] = s
		}
	}
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		k = strings.TrimSpace(k)
		if _, known := form.Lookup(k); !known {
			return nil, fmt.Errorf("--set %q: unknown field %q", kv, k)
		}
		values[k] = v
	}
	return values, nil
}

func newController(e *env, opts ...controller.Option) *controller.Controller {
	client := predictclient.New(e.cfg.Endpoint, predictclient.WithLogger(e.log))
	base := []controller.Option{
		controller.WithLogger(e.log),
		controller.WithPublisher(controller.NewLogPublisher(e.log)),
		controller.WithTimeout(e.cfg.RequestTimeout()),
		controller.WithStrict(e.cfg.Strict),
	}
	return controller.New(client, append(base, opts...)...)
}

func runPredict(ctx context.Context, e *env, opts predictOptions) error {
	values, err := collectValues(opts.input, opts.sets)
	if err != nil {
		return err
	}
	out, err := newController(e).SubmitValues(ctx, values)
	if err != nil {
		return err
	}
	return report(ctx, e, out, opts.animate)
}

// report prints a completed cycle. A failed cycle prints the toast text to
// stderr and returns a predictionFailedError.
func report(ctx context.Context, e *env, out controller.Outcome, animate bool) error {
	if !out.OK() {
		fmt.Fprintf(e.stderr, "Prediction Error: %s\n", out.Message)
		return predictionFailedError{message: out.Message}
	}
	resp := *out.Response
	lakhs := anim.NewCounter(resp.PredictedPrice, "₹ ", " Lakhs")
	crores := anim.NewCounter(resp.PredictedPriceCrores, "₹ ", " Crores")
	if animate {
		lakhs.Duration = e.cfg.AnimationDuration()
		if err := animateCounter(ctx, e.stdout, lakhs); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(e.stdout, lakhs.Text(lakhs.Duration))
	}
	fmt.Fprintln(e.stdout, crores.Text(crores.Duration))
	printDetails(e.stdout, resp)
	return nil
}

func printDetails(w io.Writer, resp types.PredictResponse) {
	fmt.Fprintf(w, "Confidence range: ₹ %s L – ₹ %s L\n", anim.Fixed2(resp.ConfidenceLower), anim.Fixed2(resp.ConfidenceUpper))
	fmt.Fprintf(w, "Features used: %d\n", resp.FeaturesUsed)
	if resp.ModelAccuracy != "" {
		fmt.Fprintf(w, "Model accuracy: %s\n", resp.ModelAccuracy)
	}
}

// animateCounter redraws c in place once per frame until it settles.
func animateCounter(ctx context.Context, w io.Writer, c anim.Counter) error {
	start := time.Now()
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		el := time.Since(start)
		fmt.Fprintf(w, "\r%s", c.Text(el))
		if c.Done(el) {
			fmt.Fprintln(w)
			return nil
		}
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return ctx.Err()
		case <-t.C:
		}
	}
}
