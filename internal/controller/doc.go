// Package controller runs the request/response cycle of the prediction
// form. It is structured into small files by concern:
//
//   - controller.go: Controller type, constructor, Submit and the state
//     transitions Idle → Submitting → {Success, Failed} → Idle.
//   - state.go: State and Outcome types.
//   - errors.go: ErrInFlight and the user-facing fallback messages.
//   - events.go: Event and EventPublisher; eventpub_memory.go keeps events
//     in memory for tests.
//   - metrics.go: Prometheus instrumentation of completed cycles.
//
// One cycle may be in flight at a time. A Submit that arrives while
// another is Submitting returns ErrInFlight without touching the network,
// whether it came from a key press or a programmatic trigger such as a
// file watcher.
package controller
