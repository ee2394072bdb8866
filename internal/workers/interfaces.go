// Package workers runs the background maintenance tasks of the planner:
// reminder rehydration at startup and periodic pruning of past reminders.
package workers

// Worker is one background task. Run either blocks for the duration of the
// work or arms its own goroutines/timers and returns.
type Worker interface {
	Run()
}
