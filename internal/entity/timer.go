package entity

// Epsilon absorbs floating point drift when accumulated frame deltas should
// land exactly on a duration.
const Epsilon = 1e-9

// Countdown counts down from a duration to zero.
// The zero value is an expired countdown.
type Countdown struct {
	remaining float64
}

// Start (re)arms the countdown with the given duration.
func (c *Countdown) Start(duration float64) {
	c.remaining = duration
}

// Stop expires the countdown immediately.
func (c *Countdown) Stop() {
	c.remaining = 0
}

// Tick advances the countdown by dt.
// It returns true only on the tick that reaches zero.
func (c *Countdown) Tick(dt float64) bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= Epsilon {
		c.remaining = 0
		return true
	}
	return false
}

// Active reports whether time is left.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the time left in seconds.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Interval accumulates time and fires every period seconds.
type Interval struct {
	elapsed float64
	period  float64
}

// NewInterval creates an interval firing every period seconds.
func NewInterval(period float64) Interval {
	return Interval{period: period}
}

// Tick accumulates dt and reports whether the period elapsed.
// The accumulator resets to zero when it fires.
func (i *Interval) Tick(dt float64) bool {
	i.elapsed += dt
	if i.elapsed+Epsilon >= i.period {
		i.elapsed = 0
		return true
	}
	return false
}

// SetPeriod changes the period without touching the accumulator.
func (i *Interval) SetPeriod(period float64) {
	i.period = period
}

// Period returns the current period.
func (i *Interval) Period() float64 {
	return i.period
}

// Reset zeroes the accumulator.
func (i *Interval) Reset() {
	i.elapsed = 0
}

// Elapsed returns the accumulated time since the last firing.
func (i *Interval) Elapsed() float64 {
	return i.elapsed
}
