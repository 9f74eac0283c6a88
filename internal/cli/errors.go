package cli

import "errors"

// predictionFailedError reports a completed cycle that ended in failure.
// Its message has already been shown to the user.
type predictionFailedError struct{ message string }

func (e predictionFailedError) Error() string { return "prediction failed: " + e.message }

// IsPredictionFailed reports whether err is a failed prediction cycle.
func IsPredictionFailed(err error) bool {
	var pf predictionFailedError
	return errors.As(err, &pf)
}
