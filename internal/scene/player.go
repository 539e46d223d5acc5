package scene

import "log/slog"

// Player drives a Scene from a Clock for a host render loop.
type Player struct {
	scene   *Scene
	clock   *Clock
	log     *slog.Logger
	last    Frame
	hasLast bool
	skipped int
}

func NewPlayer(s *Scene, c *Clock, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{scene: s, clock: c, log: log}
}

func (p *Player) Scene() *Scene { return p.scene }
func (p *Player) Clock() *Clock { return p.clock }
func (p *Player) Skipped() int  { return p.skipped }

// Next ticks the clock and builds the frame for the new time. It reports
// false when the frame failed; the host should skip drawing it.
func (p *Player) Next() (Frame, bool) {
	t := p.clock.Tick()
	f, err := p.scene.Frame(t)
	if err != nil {
		p.skipped++
		p.log.Warn("skipping frame", "t", t, "err", err)
		return Frame{}, false
	}
	p.last, p.hasLast = f, true
	return f, true
}

// Last returns the most recent successful frame.
func (p *Player) Last() (Frame, bool) { return p.last, p.hasLast }

// Frames ticks n times and returns the frames that succeeded.
func (p *Player) Frames(n int) []Frame {
	out := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		if f, ok := p.Next(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Reset rewinds the clock and forgets the last frame.
func (p *Player) Reset() {
	p.clock.Reset()
	p.last, p.hasLast = Frame{}, false
	p.skipped = 0
}
