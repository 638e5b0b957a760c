// Package timing caps the loop rate by sleeping away what is left of each
// frame's budget.
package timing

import "time"

// Pacer measures one frame at a time. Begin stamps the frame start and End
// sleeps for whatever is left of Budget. Slow frames are not compensated.
type Pacer struct {
	Budget time.Duration

	Now   func() time.Time
	Sleep func(time.Duration)

	start time.Time
}

func NewPacer(budget time.Duration) *Pacer {
	return &Pacer{
		Budget: budget,
		Now:    time.Now,
		Sleep:  time.Sleep,
	}
}

// Begin records the start of a frame.
func (p *Pacer) Begin() {
	p.start = p.Now()
}

// Elapsed returns the time since Begin in whole milliseconds.
func (p *Pacer) Elapsed() time.Duration {
	return p.Now().Sub(p.start).Truncate(time.Millisecond)
}

// SleepFor returns how long to sleep after a frame that took frameTime.
func (p *Pacer) SleepFor(frameTime time.Duration) time.Duration {
	if frameTime >= p.Budget {
		return 0
	}
	return p.Budget - frameTime
}

// End sleeps out the rest of the frame budget and returns the slept duration.
func (p *Pacer) End() time.Duration {
	d := p.SleepFor(p.Elapsed())
	if d > 0 {
		p.Sleep(d)
	}
	return d
}
