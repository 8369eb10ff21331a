package fetch

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Pacer spaces out consecutive requests per source so we stay polite with
// upstream rate limits. One limiter per source name, created lazily.
type Pacer struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewPacer(reqPerSec float64, burst int) *Pacer {
	return &Pacer{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (p *Pacer) limiterFor(source string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if lim, ok := p.m[source]; ok {
		return lim
	}
	lim := rate.NewLimiter(p.r, p.b)
	p.m[source] = lim
	return lim
}

// Wait blocks until the source may issue its next request, or ctx is done.
func (p *Pacer) Wait(ctx context.Context, source string) error {
	return p.limiterFor(source).Wait(ctx)
}
