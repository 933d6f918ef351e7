package history

import (
	"math/rand"
	"time"

	"github.com/trendscribe/trendscribe/internal/topic"
)

// Gate filters topics against the usage ledger and makes the final pick.
type Gate struct {
	rand *rand.Rand
	now  func() time.Time
}

func NewGate() *Gate {
	return &Gate{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NewGateWithSeed pins the random source and clock, for tests.
func NewGateWithSeed(seed int64, now func() time.Time) *Gate {
	return &Gate{rand: rand.New(rand.NewSource(seed)), now: now}
}

// Now returns the gate's view of the current time in UTC. The ledger
// entry written after a pick uses the same clock the window check used.
func (g *Gate) Now() time.Time { return g.now().UTC() }

// Select returns one topic chosen uniformly at random, preferring topics
// whose id has not been used within the trailing window. When every topic
// was recently used the pick falls back to the full list: a stale post
// beats no post. topics must be non-empty; callers short-circuit the run
// before this point when upstream produced nothing.
func (g *Gate) Select(topics []topic.Topic, ledger *Ledger, windowDays int) topic.Topic {
	cutoff := g.now().UTC().AddDate(0, 0, -windowDays)

	var fresh []topic.Topic
	for _, t := range topics {
		if !ledger.UsedWithin(t.ID, cutoff) {
			fresh = append(fresh, t)
		}
	}

	pool := fresh
	if len(pool) == 0 {
		pool = topics
	}
	return pool[g.rand.Intn(len(pool))]
}
