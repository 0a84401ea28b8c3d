package sim

// Clock is the simulated time of a run. It only moves forward, by a fixed
// step, and is owned exclusively by whichever loop drives the animation.
// Simulated dt is decoupled from the rendering frame rate.
type Clock struct {
	Now float64
	Dt  float64
}

func NewClock(dt float64) *Clock {
	return &Clock{Dt: dt}
}

// Advance moves the clock one step and returns the new time.
func (c *Clock) Advance() float64 {
	c.Now += c.Dt
	return c.Now
}

// Reset rewinds the clock to t = 0.
func (c *Clock) Reset() {
	c.Now = 0
}

// Expired reports whether a finite duration has been exhausted.
// A zero duration never expires. The small tolerance absorbs the
// accumulation error of repeated Dt additions at the boundary.
func (c *Clock) Expired(duration float64) bool {
	return duration > 0 && c.Now >= duration-1e-9
}
