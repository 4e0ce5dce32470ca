package domain

import "github.com/jonboulle/clockwork"

// clock is the time source for record key generation. Production code uses
// the real clock; tests inject a fake via SetClock for deterministic keys.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
