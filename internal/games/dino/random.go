package dino

// RandomSource is the only source of randomness in the simulation.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type RandomSource interface {
	Float64() float64 // Uniform in [0, 1)
	Intn(n int) int   // Uniform in [0, n)
}

// randomInt returns an integer uniformly drawn from [lo, hi].
func randomInt(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randomFloat returns a float uniformly drawn from [lo, hi).
func randomFloat(rng RandomSource, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
