package board

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/idilsaglam/dailytodo/internal/model"
)

// MaxRandomID bounds random ids to integers a float64 holds exactly.
const MaxRandomID = int64(1) << 53

// ErrUnknownIDStrategy is returned for an id strategy name we don't know.
var ErrUnknownIDStrategy = errors.New("unknown id strategy")

// IDGenerator hands out card ids. taken reports ids already in use.
type IDGenerator interface {
	Next(taken func(int64) bool) int64
}

// RandomIDs draws ids uniformly from [0, MaxRandomID) and redraws on collision.
type RandomIDs struct {
	rng *rand.Rand
}

// NewRandomIDs uses rng, or the global source when rng is nil.
func NewRandomIDs(rng *rand.Rand) *RandomIDs {
	return &RandomIDs{rng: rng}
}

func (r *RandomIDs) Next(taken func(int64) bool) int64 {
	for {
		var id int64
		if r.rng != nil {
			id = r.rng.Int64N(MaxRandomID)
		} else {
			id = rand.Int64N(MaxRandomID)
		}
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// CounterIDs hands out increasing ids starting at next.
type CounterIDs struct {
	next int64
}

// NewCounterIDs starts counting at start.
func NewCounterIDs(start int64) *CounterIDs {
	return &CounterIDs{next: start}
}

func (c *CounterIDs) Next(taken func(int64) bool) int64 {
	for taken != nil && taken(c.next) {
		c.next++
	}
	id := c.next
	c.next++
	return id
}

// NewIDGenerator builds the generator named by strategy ("random" or "counter").
// A counter starts above the highest seeded id; when no id is left above
// it, random ids are used instead.
func NewIDGenerator(strategy string, seeded []model.Item) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", "random":
		return NewRandomIDs(nil), nil
	case "counter":
		var highest int64
		for _, it := range seeded {
			highest = max(highest, it.ID)
		}
		if highest == math.MaxInt64 {
			return NewRandomIDs(nil), nil
		}
		return NewCounterIDs(highest + 1), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownIDStrategy, strategy)
}
