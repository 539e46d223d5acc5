package scene

// Clock is the scene time. Tick is its only mutator.
type Clock struct {
	start, step float64
	t           float64
}

func NewClock(start, step float64) *Clock {
	return &Clock{start: start, step: step, t: start}
}

func (c *Clock) Now() float64  { return c.t }
func (c *Clock) Step() float64 { return c.step }

// Tick advances time by one step and returns the new time.
func (c *Clock) Tick() float64 {
	c.t += c.step
	return c.t
}

// Reset rewinds to the start time.
func (c *Clock) Reset() { c.t = c.start }
