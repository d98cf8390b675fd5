package dino

// advanceDecor spawns clouds on schedule and moves/fades clouds and dust.
// Decorations never touch score or collision.
func (w *World) advanceDecor() {
	d := w.cfg.Decor

	if d.CloudEvery > 0 && w.tick%d.CloudEvery == 0 {
		w.clouds = append(w.clouds, Cloud{
			X: w.cfg.Field.Width,
			Y: randomFloat(w.rng, d.CloudMinY, d.CloudMaxY),
		})
	}

	clouds := w.clouds[:0:0]
	for _, c := range w.clouds {
		c.X -= d.CloudSpeed
		if c.X+d.CloudWidth >= 0 {
			clouds = append(clouds, c)
		}
	}
	w.clouds = clouds

	particles := w.particles[:0:0]
	for _, p := range w.particles {
		p.X -= p.Speed
		p.Alpha -= d.DustFade
		if p.Alpha > 0 {
			particles = append(particles, p)
		}
	}
	w.particles = particles
}
