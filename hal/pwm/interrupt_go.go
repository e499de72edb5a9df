//go:build !tinygo

package pwm

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// hostCritical stands in for masked interrupts so host tests driving the
// simulated registers from several goroutines stay consistent.
var hostCritical sync.Mutex

// disableInterrupts enters the critical section
func disableInterrupts() State {
	hostCritical.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	hostCritical.Unlock()
}
