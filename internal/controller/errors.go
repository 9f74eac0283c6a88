package controller

import "errors"

// ErrInFlight is returned by Submit while another cycle is Submitting.
var ErrInFlight = errors.New("prediction already in flight")

// IsInFlight reports whether err is ErrInFlight.
func IsInFlight(err error) bool { return errors.Is(err, ErrInFlight) }

// Fallback messages shown when the server gives none or cannot be reached.
const (
	MsgPredictionFailed = "Prediction failed. Please try again."
	MsgNetworkError     = "Network error. Please check your connection and try again."
)
