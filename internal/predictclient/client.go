// Package predictclient talks to the prediction endpoint over HTTP.
package predictclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"homeprice/pkg/types"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client posts prediction requests to a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithLogger installs a structured logger.
func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }

// New constructs a client for baseURL (e.g. http://localhost:5000).
// The underlying http.Client has no overall timeout; deadlines come from
// the context passed to each call.
func New(baseURL string, opts ...Option) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Transport: tr},
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the endpoint root the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// Predict POSTs req to /predict and decodes the JSON body whatever the
// HTTP status. An application failure comes back as a response with
// Success false and a nil error.
func (c *Client) Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error) {
	var out types.PredictResponse
	body, err := json.Marshal(req)
	if err != nil {
		return out, err
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	rid := uuid.NewString()
	hreq.Header.Set("X-Request-ID", rid)

	start := time.Now()
	status, b, err := c.do(ctx, hreq)
	if err == nil {
		out, err = decodePredict(status, b)
	}
	c.log.Debug().Str("request_id", rid).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("predict")
	return out, err
}

// Health queries GET /health.
func (c *Client) Health(ctx context.Context) (types.HealthResponse, error) {
	var out types.HealthResponse
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return out, err
	}
	hreq.Header.Set("Accept", "application/json")
	status, b, err := c.do(ctx, hreq)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, &DecodeError{Status: status, Err: err}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, hreq *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(hreq)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, &TransportError{Err: ctx.Err()}
		}
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Err: err}
	}
	return resp.StatusCode, b, nil
}
