package cycle

import "time"

// SetClock replaces the time source and id generator of cycles started by e.
// This is exported for testing purposes only.
func (e *Engine) SetClock(now func() time.Time, newID func() string) {
	e.now = now
	e.newID = newID
}
