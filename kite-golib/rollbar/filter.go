package rollbar

import (
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sampler accepts one in every n events on average, and never more than
// one event per interval
type sampler struct {
	mu      sync.Mutex
	n       int
	random  *rand.Rand
	limiter *rate.Limiter
}

func newSampler(n int, interval time.Duration) *sampler {
	if n < 1 {
		n = 1
	}
	return &sampler{
		n:       n,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Accept is safe for concurrent use
func (s *sampler) Accept() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.random.Intn(s.n) != 0 {
		return false
	}
	return s.limiter.Allow()
}
