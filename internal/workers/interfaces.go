// Package workers runs the service's background maintenance loops,
// currently the expired auth-session cleaner. The Workers aggregate starts
// every registered worker with one call from main.
package workers

// Worker is a background task that Run starts. Implementations either
// block or spawn their own goroutines; the session cleaner does the
// latter.
type Worker interface {
	Run()
}
