package wordlist

import "math/rand/v2"

// DefaultSampleSize is how many words the tool prints.
const DefaultSampleSize = 20

// Sampler draws random subsets of a word list.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler backed by the process-seeded global generator.
func NewSampler() *Sampler {
	return &Sampler{}
}

// NewSeededSampler returns a Sampler whose output is reproducible for a given seed.
func NewSeededSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample shuffles a copy of words and returns the first min(n, len(words)) of them.
// words is not modified.
func (s *Sampler) Sample(words []string, n int) []string {
	if n <= 0 {
		return []string{}
	}

	shuffled := make([]string, len(words))
	copy(shuffled, words)

	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if s.rng != nil {
		s.rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	return shuffled[:min(n, len(shuffled))]
}
