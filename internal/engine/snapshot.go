package engine

// Snapshot is the full published world state after a tick. Obstacle
// and collectible slices are copies; mutating them does not touch the
// run. Because ticks run to completion on a single goroutine, a
// snapshot taken between ticks can never observe a torn mid-tick
// state.
type Snapshot struct {
	Tick         uint64
	State        State
	PlayerPos    Vec2
	Obstacles    []Obstacle
	Collectibles []Collectible
	Runes        int
	ScrollOffset float64
}

// Snapshot returns the current published state.
func (r *Run) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(r.obstacles))
	copy(obstacles, r.obstacles)
	collectibles := make([]Collectible, len(r.collectibles))
	copy(collectibles, r.collectibles)

	return Snapshot{
		Tick:         r.tick,
		State:        r.state,
		PlayerPos:    r.player.Pos,
		Obstacles:    obstacles,
		Collectibles: collectibles,
		Runes:        r.runes,
		ScrollOffset: r.scrollOffset,
	}
}

// Hash folds the snapshot into a single value for determinism testing.
// Float fields are folded at millesimal precision so two runs of the
// same seed and input sequence hash identically.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)
	h = h*31 + quantize(snap.PlayerPos.X)
	h = h*31 + quantize(snap.PlayerPos.Y)
	h = h*31 + uint64(snap.Runes)
	h = h*31 + quantize(snap.ScrollOffset)
	for _, o := range snap.Obstacles {
		h = h*31 + uint64(o.ID)
		h = h*31 + quantize(o.Pos.X)
		h = h*31 + quantize(o.Pos.Y)
		h = h*31 + quantize(o.Rotation)
		if o.Visible {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}
	for _, c := range snap.Collectibles {
		h = h*31 + uint64(c.ID)
		h = h*31 + quantize(c.Pos.Y)
		if c.Collected {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}
	return h
}

func quantize(v float64) uint64 {
	return uint64(int64(v * 1000))
}
