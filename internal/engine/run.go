package engine

import "math/rand"

// State is the run's overall state. Exactly one value holds at any
// time. Won and Lost are terminal until an explicit Restart.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the run.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Win condition: every obstacle must have scrolled this far past the
// corridor's bottom edge.
const winOverscroll = 50

// Listener receives progress notifications from a run. The run fires
// RunStarted once per Start/Restart, before any tick. Completion is not
// pushed: the host observes the Won terminal state and commits it
// itself, so the engine never owns persistence.
type Listener interface {
	RunStarted(levelID string)
}

// Run models exactly one in-progress game session. It exclusively owns
// its world state; external callers only read snapshots and invoke the
// control operations. All methods must be called from a single
// goroutine - the engine relies on the host's tick source delivering
// ticks serially.
type Run struct {
	desc     LevelDescriptor
	bounds   Bounds
	seed     int64
	rng      *rand.Rand
	listener Listener

	state        State
	obstacles    []Obstacle
	collectibles []Collectible
	player       PlayerState
	runes        int
	gameTime     float64
	scrollOffset float64
	tick         uint64
}

// NewRun creates a run for the given level. The seed makes generation
// reproducible; the listener may be nil.
func NewRun(desc LevelDescriptor, seed int64, listener Listener) *Run {
	r := &Run{listener: listener, seed: seed}
	r.Setup(desc)
	return r
}

// Setup resets the run to idle for the given level: world cleared,
// runes and time zeroed, player back at the default position, RNG
// rewound to the seed. Always legal, from any state.
func (r *Run) Setup(desc LevelDescriptor) {
	r.desc = desc
	r.rng = rand.New(rand.NewSource(r.seed))
	r.state = StateIdle
	r.obstacles = nil
	r.collectibles = nil
	r.player = defaultPlayerState()
	r.runes = 0
	r.gameTime = 0
	r.scrollOffset = 0
	r.tick = 0
}

// Start generates the level layout and begins playing. Legal only from
// idle; anything else is a silent no-op, which makes a double Start
// (e.g. a double tap) harmless.
func (r *Run) Start(b Bounds) {
	if r.state != StateIdle {
		return
	}
	r.bounds = b
	r.obstacles, r.collectibles = GenerateLevel(r.desc, b, r.rng)
	r.state = StatePlaying
	if r.listener != nil {
		r.listener.RunStarted(r.desc.ID)
	}
}

// Pause freezes the run. Legal only while playing.
func (r *Run) Pause() {
	if r.state == StatePlaying {
		r.state = StatePaused
	}
}

// Resume continues a paused run from the frozen state, with no
// time-skip compensation. Legal only while paused.
func (r *Run) Resume() {
	if r.state == StatePaused {
		r.state = StatePlaying
	}
}

// Restart is Setup followed by Start with the previously known bounds.
// Restarting a run that never started leaves it idle.
func (r *Run) Restart(desc LevelDescriptor) {
	bounds := r.bounds
	r.Setup(desc)
	if bounds.Width > 0 && bounds.Height > 0 {
		r.Start(bounds)
	}
}

// SetTarget stores a clamped movement target for the player. Ignored
// entirely unless the run is playing.
func (r *Run) SetTarget(x, y float64) {
	if r.state != StatePlaying {
		return
	}
	r.player.setTarget(x, y)
}

// Advance runs one simulation tick of dt seconds: player smoothing,
// then motion, then collision, then the win check. Outside the playing
// state it does nothing, so the host's tick source may keep firing
// across pause and terminal states without corrupting anything.
func (r *Run) Advance(dt float64) {
	if r.state != StatePlaying {
		return
	}

	r.tick++
	r.gameTime += dt
	params := r.desc.Difficulty.Params()
	r.scrollOffset += params.BaseSpeed * scrollFactor * dt

	r.player.step()

	for i := range r.obstacles {
		advanceObstacle(&r.obstacles[i], dt, params, r.bounds, r.gameTime)
	}
	for i := range r.collectibles {
		advanceCollectible(&r.collectibles[i], dt, params)
	}

	center := PlayerCorridorPos(r.player.Pos, r.bounds)

	for i := range r.obstacles {
		o := r.obstacles[i]
		if !o.Visible {
			continue
		}
		if circleHitsObstacle(center, PlayerRadius, o) {
			// First hit ends the tick; no multi-collision resolution.
			r.state = StateLost
			return
		}
	}

	for i := range r.collectibles {
		c := &r.collectibles[i]
		if c.Collected {
			continue
		}
		if circlesOverlap(center, c.Pos, PlayerRadius+RuneRadius) {
			c.Collected = true
			r.runes++
		}
	}

	if r.won() {
		r.state = StateWon
	}
}

// won reports whether every obstacle has fully scrolled past the
// corridor. An empty obstacle set never wins: a zero-obstacle level is
// a catalog authoring error, and looping forever beats silently
// declaring victory.
func (r *Run) won() bool {
	if len(r.obstacles) == 0 {
		return false
	}
	for _, o := range r.obstacles {
		if o.Pos.Y <= r.bounds.Height+winOverscroll {
			return false
		}
	}
	return true
}

// State returns the current run state.
func (r *Run) State() State {
	return r.state
}

// Runes returns the number of runes collected so far. After a win this
// is the run's final score.
func (r *Run) Runes() int {
	return r.runes
}

// Descriptor returns the level the run was set up with.
func (r *Run) Descriptor() LevelDescriptor {
	return r.desc
}

// Bounds returns the corridor bounds from the last Start. Zero before
// the first Start.
func (r *Run) Bounds() Bounds {
	return r.bounds
}
