package anim

import "time"

// Toast timings.
const (
	ToastVisible = 5000 * time.Millisecond
	ToastExit    = 300 * time.Millisecond
)

// ToastPhase is where a toast is in its lifecycle.
type ToastPhase int

const (
	ToastShowing ToastPhase = iota
	ToastLeaving
	ToastGone
)

// Toast is a transient error notification.
type Toast struct {
	Title   string
	Message string
	Shown   time.Time
	Visible time.Duration
	Exit    time.Duration
}

// NewToast creates a toast shown at now with the default timings.
func NewToast(message string, now time.Time) Toast {
	return Toast{Title: "Prediction Error", Message: message, Shown: now, Visible: ToastVisible, Exit: ToastExit}
}

// Phase returns the lifecycle phase at now.
func (t Toast) Phase(now time.Time) ToastPhase {
	age := now.Sub(t.Shown)
	switch {
	case age < t.Visible:
		return ToastShowing
	case age < t.Visible+t.Exit:
		return ToastLeaving
	default:
		return ToastGone
	}
}

// ExpiresAt is when the toast is removed.
func (t Toast) ExpiresAt() time.Time { return t.Shown.Add(t.Visible + t.Exit) }
