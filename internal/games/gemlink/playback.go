package gemlink

import (
	"github.com/vovakirdan/gemlink/internal/config"
	"github.com/vovakirdan/gemlink/internal/match"
)

// Sprite is a tile drawn during the fall phase.
// Y is in board rows, y-up, and may be fractional or above the top row.
type Sprite struct {
	Type match.TileType
	X    int
	Y    float64
}

// Playback replays one resolution's effect log over a fixed number of ticks:
// cleared tiles flash first, then falling tiles and spawns drop into place.
type Playback struct {
	before  *match.Grid
	after   *match.Grid
	effects match.EffectLog
	timing  config.PlaybackConfig

	moveTo  map[match.Cell]match.Move
	spawnAt map[match.Cell]match.Spawn
	cleared map[match.Cell]bool

	tick  int
	total int
}

// NewPlayback builds the timeline for a resolution that turned before into after.
func NewPlayback(before, after *match.Grid, effects match.EffectLog, timing config.PlaybackConfig) *Playback {
	p := &Playback{
		before:  before,
		after:   after,
		effects: effects,
		timing:  timing,
		moveTo:  make(map[match.Cell]match.Move, len(effects.Fallen)),
		spawnAt: make(map[match.Cell]match.Spawn, len(effects.Spawned)),
		cleared: make(map[match.Cell]bool, len(effects.Cleared)),
	}
	for _, c := range effects.Cleared {
		p.cleared[c] = true
	}

	fallEnd := 0
	for _, m := range effects.Fallen {
		p.moveTo[m.To] = m
		fallEnd = max(fallEnd, p.fallDuration(m.Distance()))
	}
	for _, s := range effects.Spawned {
		p.spawnAt[s.Cell] = s
		fallEnd = max(fallEnd, p.spawnStart(s)+p.fallDuration(p.spawnDistance(s)))
	}
	p.total = timing.ClearTicks + fallEnd
	return p
}

// fallDuration grows with the distance fallen.
func (p *Playback) fallDuration(distance int) int {
	return p.timing.FallTicks + distance*p.timing.FallDelayTicks
}

// spawnStart staggers spawns in the same column, bottom one first.
func (p *Playback) spawnStart(s match.Spawn) int {
	return s.Drop * p.timing.SpawnDelayTicks
}

// spawnDistance is measured from a start row stacked above the board.
func (p *Playback) spawnDistance(s match.Spawn) int {
	return p.after.Height() + s.Drop - s.Cell.Y
}

// Advance moves the timeline forward one tick.
func (p *Playback) Advance() {
	if p.tick < p.total {
		p.tick++
	}
}

// Active reports whether there is anything left to show.
func (p *Playback) Active() bool {
	return p.tick < p.total
}

// Total returns the timeline length in ticks.
func (p *Playback) Total() int {
	return p.total
}

// Clearing reports whether the cleared tiles are still on screen.
func (p *Playback) Clearing() bool {
	return p.tick < p.timing.ClearTicks
}

// ClearTick returns the tick within the clear phase, for flashing.
func (p *Playback) ClearTick() int {
	return p.tick
}

// IsCleared reports whether c was part of the resolved chain.
func (p *Playback) IsCleared(c match.Cell) bool {
	return p.cleared[c]
}

// Before returns the grid as it was when the chain was committed.
func (p *Playback) Before() *match.Grid {
	return p.before
}

// Sprites returns every tile of the final grid at its current fall position.
func (p *Playback) Sprites() []Sprite {
	t := p.tick - p.timing.ClearTicks
	sprites := make([]Sprite, 0, p.after.Width()*p.after.Height())

	for x := 0; x < p.after.Width(); x++ {
		for y := 0; y < p.after.Height(); y++ {
			c := match.C(x, y)
			tile, ok := p.after.TileAt(c)
			if !ok {
				continue
			}
			sp := Sprite{Type: tile, X: x, Y: float64(y)}
			if m, moved := p.moveTo[c]; moved {
				sp.Y = lerp(float64(m.From.Y), float64(m.To.Y), progress(t, 0, p.fallDuration(m.Distance())))
			} else if s, spawned := p.spawnAt[c]; spawned {
				from := float64(p.after.Height() + s.Drop)
				sp.Y = lerp(from, float64(y), progress(t, p.spawnStart(s), p.fallDuration(p.spawnDistance(s))))
			}
			sprites = append(sprites, sp)
		}
	}
	return sprites
}

// progress returns the eased completion of a segment starting at start.
func progress(t, start, duration int) float64 {
	if duration <= 0 {
		if t >= start {
			return 1
		}
		return 0
	}
	f := float64(t-start) / float64(duration)
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return easeOutQuad(f)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
