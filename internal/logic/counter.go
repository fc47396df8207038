package logic

// CounterFrames is how many frames a stats counter takes to reach its target
const CounterFrames = 100

// Counter animates a number from zero up to Target
type Counter struct {
	Target  int
	current float64
	done    bool
}

// NewCounter starts a counter at zero
func NewCounter(target int) *Counter {
	return &Counter{Target: target}
}

// Step advances one frame and returns the value to display
func (c *Counter) Step() int {
	if c.done {
		return c.Target
	}
	if c.current < float64(c.Target) {
		c.current += float64(c.Target) / CounterFrames
		if c.current < float64(c.Target) {
			return int(c.current)
		}
	}
	c.done = true
	return c.Target
}

// Done reports whether the counter shows its final value
func (c *Counter) Done() bool {
	return c.done
}

// Value is the number currently displayed
func (c *Counter) Value() int {
	if c.done {
		return c.Target
	}
	return int(c.current)
}
