package form

import "math"

// Feedback is the advisory styling state of a number input.
type Feedback int

const (
	FeedbackNeutral Feedback = iota
	FeedbackInRange
	FeedbackOutOfRange
)

func (fb Feedback) String() string {
	switch fb {
	case FeedbackInRange:
		return "in-range"
	case FeedbackOutOfRange:
		return "out-of-range"
	default:
		return "neutral"
	}
}

// Check returns the feedback shown while the user types raw into f.
// Only a value that parses and falls outside [Min, Max] is out of range;
// an empty or unparsable value compares false both ways and therefore
// reads as in range. Select fields never get feedback.
func (f Field) Check(raw string) Feedback {
	if f.Widget != WidgetNumber {
		return FeedbackNeutral
	}
	v, ok := parseStrictFloat(raw)
	if ok && (v < f.Min || v > f.Max) {
		return FeedbackOutOfRange
	}
	return FeedbackInRange
}

// Valid reports whether raw satisfies every constraint of f: present,
// numeric, inside the bounds and on a step boundary.
func (f Field) Valid(raw string) bool {
	if f.Widget == WidgetSelect {
		_, ok := f.OptionLabel(raw)
		return ok
	}
	v, ok := parseStrictFloat(raw)
	if !ok || v < f.Min || v > f.Max {
		return false
	}
	if f.Step > 0 {
		r := math.Remainder(v-f.Min, f.Step)
		if math.Abs(r) > 1e-9 {
			return false
		}
	}
	return true
}

// Blur returns the feedback after focus leaves f. A valid value clears
// the styling; anything else keeps what was shown while typing.
func (f Field) Blur(raw string, current Feedback) Feedback {
	if f.Valid(raw) {
		return FeedbackNeutral
	}
	return current
}
