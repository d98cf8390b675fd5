package dino

// nextInterval draws the number of ticks until the next obstacle.
func (w *World) nextInterval() int {
	o := w.cfg.Obstacles
	return randomInt(w.rng, o.MinInterval, o.MaxInterval)
}

// updateSpawner counts down and spawns one obstacle at the right edge when
// the countdown runs out.
func (w *World) updateSpawner() {
	w.countdown--
	if w.countdown > 0 {
		return
	}

	o := w.cfg.Obstacles
	height := float64(randomInt(w.rng, o.MinHeight, o.MaxHeight))
	width := randomFloat(w.rng, o.MinWidth, o.MaxWidth)

	w.obstacles = append(w.obstacles, Obstacle{
		X:      w.cfg.Field.Width,
		Y:      w.GroundY() - height,
		Width:  width,
		Height: height,
	})
	w.countdown = w.nextInterval()
}

// advanceObstacles scrolls every obstacle, checks it against the actor and
// drops the ones that left the field, one point each. It rebuilds the
// slice instead of deleting in place.
func (w *World) advanceObstacles() (levelUp, hit bool) {
	actor := w.actor.Rect()
	kept := make([]Obstacle, 0, len(w.obstacles))

	for i, o := range w.obstacles {
		o.X -= w.speed

		if actor.Overlaps(o.Rect()) {
			kept = append(kept, o)
			w.obstacles = append(kept, w.obstacles[i+1:]...)
			return levelUp, true
		}

		if o.X+o.Width < 0 {
			if w.addPoint() {
				levelUp = true
			}
			continue
		}
		kept = append(kept, o)
	}

	w.obstacles = kept
	return levelUp, false
}

// addPoint increments the score and applies a level up when due.
func (w *World) addPoint() bool {
	w.score++
	if !w.progression.LevelUp(w.score) {
		return false
	}
	w.level++
	w.speed += w.progression.SpeedStep()
	return true
}
