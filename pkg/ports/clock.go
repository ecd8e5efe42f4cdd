package ports

import "time"

// Clock is a monotonic millisecond counter. The engine samples it at
// test entry and exit for elapsed-time reporting. Implementations must
// not block.
type Clock interface {
	Now() uint32
}

// SystemClock implements Clock on the Go runtime's monotonic clock.
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock creates a clock counting milliseconds from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

func (c *SystemClock) Now() uint32 {
	return uint32(time.Since(c.epoch).Milliseconds())
}
