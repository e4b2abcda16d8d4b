package sim

import "math/rand"

// DrawSource supplies the random draws that seed new flight plans. Values
// must be uniform in [0, 1000).
type DrawSource interface {
	Draw(n int) []float64
}

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic DrawSource for the given seed.
func NewSeededSource(seed int64) DrawSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Draw(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = s.rng.Float64() * 1000
	}
	return vals
}
