package frame

import (
	"sync"
	"time"
)

// Clock fornece o instante usado pelas animações.
type Clock interface {
	Now() time.Time
}

// SystemClock usa o relógio do sistema.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock só avança quando pedido. Usado nos testes e em replays.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock cria um relógio parado em start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance avança o relógio em d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
