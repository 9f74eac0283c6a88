package controller

import "github.com/rs/zerolog"

// LogPublisher writes each event to a zerolog logger at debug level.
type LogPublisher struct{ log zerolog.Logger }

func NewLogPublisher(l zerolog.Logger) LogPublisher { return LogPublisher{log: l} }

func (p LogPublisher) Publish(e Event) {
	p.log.Debug().Str("event", e.Name).Uint64("generation", e.Generation).Fields(e.Fields).Msg("controller event")
}
