package controller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"homeprice/internal/form"
	"homeprice/pkg/types"
)

// Predictor is the network side of a cycle.
type Predictor interface {
	Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error)
}

// Controller owns the submit state machine.
type Controller struct {
	pred    Predictor
	pub     EventPublisher
	log     zerolog.Logger
	metrics *Metrics
	timeout time.Duration
	strict  bool
	now     func() time.Time

	mu    sync.Mutex
	state State
	gen   uint64
	last  *Outcome
}

// Option configures a Controller.
type Option func(*Controller)

func WithPublisher(p EventPublisher) Option { return func(c *Controller) { c.pub = p } }
func WithLogger(l zerolog.Logger) Option    { return func(c *Controller) { c.log = l } }
func WithMetrics(m *Metrics) Option         { return func(c *Controller) { c.metrics = m } }

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option { return func(c *Controller) { c.timeout = d } }

// WithStrict makes SubmitValues refuse values that do not parse instead of
// sending them as null.
func WithStrict(strict bool) Option { return func(c *Controller) { c.strict = strict } }

// New returns an Idle controller submitting through p.
func New(p Predictor, opts ...Option) *Controller {
	c := &Controller{
		pred:  p,
		pub:   noopPublisher{},
		log:   zerolog.Nop(),
		now:   time.Now,
		state: StateIdle,
	}
	for _, o := range opts {
		o(c)
	}
	if c.pub == nil {
		c.pub = noopPublisher{}
	}
	return c
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InFlight reports whether a cycle is Submitting. The submit control
// should be disabled exactly while this is true.
func (c *Controller) InFlight() bool { return c.State() == StateSubmitting }

// Generation returns the number of the most recently started cycle.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Last returns the outcome of the most recently completed cycle.
func (c *Controller) Last() (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return Outcome{}, false
	}
	return *c.last, true
}

// SubmitValues builds a request from raw form values and submits it.
// Values that do not parse are sent as null unless the controller is
// strict, in which case a *form.UnparsedError is returned and no cycle
// starts.
func (c *Controller) SubmitValues(ctx context.Context, values map[string]string) (Outcome, error) {
	req, unparsed := form.BuildRequest(values)
	if len(unparsed) > 0 {
		if c.strict {
			return Outcome{}, form.RequireParsed(unparsed)
		}
		c.log.Warn().Strs("fields", unparsed).Msg("sending unparsed fields as null")
	}
	return c.Submit(ctx, req)
}

// Submit runs one full cycle for req and blocks until it completes. The
// only error is ErrInFlight; every network or server failure is reported
// through the Outcome. The controller is back in StateIdle when Submit
// returns, including when the predictor panics.
func (c *Controller) Submit(ctx context.Context, req types.PredictRequest) (out Outcome, err error) {
	gen, err := c.begin()
	if err != nil {
		c.metrics.reject()
		return Outcome{}, err
	}
	start := c.now()
	out = Outcome{Generation: gen, State: StateFailed, Kind: FailureTransport, Message: MsgNetworkError}
	defer func() { c.finish(&out, start) }()
	out = c.run(ctx, gen, req)
	return out, nil
}

func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return 0, ErrInFlight
	}
	c.gen++
	gen := c.gen
	c.state = StateSubmitting
	c.mu.Unlock()
	c.pub.Publish(Event{Name: EventSubmitStart, Generation: gen})
	c.log.Debug().Uint64("generation", gen).Msg("submit start")
	return gen, nil
}

func (c *Controller) run(ctx context.Context, gen uint64, req types.PredictRequest) Outcome {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.pred.Predict(ctx, req)
	if err != nil {
		c.log.Error().Err(err).Uint64("generation", gen).Msg("prediction request failed")
		return Outcome{Generation: gen, State: StateFailed, Kind: FailureTransport, Message: MsgNetworkError, Err: err}
	}
	if resp.Success {
		return Outcome{Generation: gen, State: StateSuccess, Response: &resp}
	}
	msg := resp.Error
	if msg == "" {
		msg = MsgPredictionFailed
	}
	return Outcome{Generation: gen, State: StateFailed, Kind: FailureApplication, Response: &resp, Message: msg}
}

func (c *Controller) finish(out *Outcome, start time.Time) {
	out.Duration = c.now().Sub(start)
	c.mu.Lock()
	c.state = out.State
	c.mu.Unlock()

	name := EventSubmitSuccess
	if !out.OK() {
		name = EventSubmitFailed
	}
	fields := map[string]any{"duration": out.Duration}
	if out.Kind != FailureNone {
		fields["kind"] = string(out.Kind)
	}
	c.pub.Publish(Event{Name: name, Generation: out.Generation, Fields: fields})
	c.metrics.observe(*out)

	c.mu.Lock()
	last := *out
	c.last = &last
	c.state = StateIdle
	c.mu.Unlock()
	c.pub.Publish(Event{Name: EventIdle, Generation: out.Generation})
	c.log.Info().Uint64("generation", out.Generation).Str("state", string(out.State)).Dur("dur", out.Duration).Msg("submit end")
}
