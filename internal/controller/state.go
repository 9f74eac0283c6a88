package controller

import (
	"time"

	"homeprice/pkg/types"
)

// State is the phase of the submit cycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// FailureKind separates server-reported failures from failures to get a
// usable response at all.
type FailureKind string

const (
	FailureNone        FailureKind = ""
	FailureApplication FailureKind = "application"
	FailureTransport   FailureKind = "transport"
)

// Outcome is the result of one completed cycle.
type Outcome struct {
	// Generation numbers cycles from 1 in submission order.
	Generation uint64
	// State is StateSuccess or StateFailed.
	State State
	Kind  FailureKind
	// Response is set on success and on application failure.
	Response *types.PredictResponse
	// Message is the text to show the user on failure.
	Message string
	// Err is the underlying cause of a transport failure. It is logged,
	// not shown.
	Err      error
	Duration time.Duration
}

// OK reports whether the cycle ended in StateSuccess.
func (o Outcome) OK() bool { return o.State == StateSuccess }
