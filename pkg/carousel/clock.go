package carousel

import (
	"sync"
	"time"
)

// Clock schedules recurring callbacks.
type Clock interface {
	// Every calls fn every d until the returned stop function is called.
	// stop must not block waiting for an in-flight fn.
	Every(d time.Duration, fn func()) (stop func())
}

// RealClock is a Clock backed by time.Ticker.
type RealClock struct{}

func (RealClock) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
