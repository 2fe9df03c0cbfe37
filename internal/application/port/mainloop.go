package port

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer (false if it already ran or was stopped).
	Stop() bool
}

// MainLoop serialises work onto the single control thread.
type MainLoop interface {
	// Post queues fn to run on the control thread. Safe from any goroutine.
	Post(fn func())

	// AfterFunc runs fn on the control thread once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}
