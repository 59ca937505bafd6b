// Package draw implements weighted selection over the roulette catalog.
package draw

import (
	"fmt"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

// Source yields uniformly distributed values in [0, 1)
type Source func() float64

// Validate checks the catalog preconditions shared by Pick, Engine and Audit
func Validate(catalog []domain.RewardOutcome) error {
	if len(catalog) == 0 {
		return domain.ErrEmptyCatalog
	}
	for i, o := range catalog {
		// also rejects NaN
		if !(o.Weight > 0) {
			return fmt.Errorf("%w: outcome %q at index %d has weight %v", domain.ErrInvalidWeight, o.ID, i, o.Weight)
		}
	}
	return nil
}

// TotalWeight sums the weights of the catalog
func TotalWeight(catalog []domain.RewardOutcome) float64 {
	total := 0.0
	for _, o := range catalog {
		total += o.Weight
	}
	return total
}

// Pick returns one outcome with probability weight/totalWeight.
//
// The catalog is walked in order and the first outcome whose running weight sum
// is >= r is selected, where r = src() * totalWeight. If floating point rounding
// leaves nothing selected the first entry is returned.
func Pick(catalog []domain.RewardOutcome, src Source) (domain.RewardOutcome, error) {
	if err := Validate(catalog); err != nil {
		return domain.RewardOutcome{}, err
	}
	return pick(catalog, TotalWeight(catalog), src()), nil
}

func pick(catalog []domain.RewardOutcome, total, u float64) domain.RewardOutcome {
	r := u * total
	cumulative := 0.0
	for _, o := range catalog {
		cumulative += o.Weight
		if cumulative >= r {
			return o
		}
	}
	return catalog[0]
}

// Probabilities returns weight/totalWeight for each outcome, in catalog order
func Probabilities(catalog []domain.RewardOutcome) []float64 {
	total := TotalWeight(catalog)
	out := make([]float64, len(catalog))
	if total <= 0 {
		return out
	}
	for i, o := range catalog {
		out[i] = o.Weight / total
	}
	return out
}

// Engine draws from a validated, immutable catalog
type Engine struct {
	catalog []domain.RewardOutcome
	total   float64
	src     Source
	tapeSrc Source
}

// NewEngine validates the catalog and copies it. A nil src uses utils.RandomFloat.
func NewEngine(catalog []domain.RewardOutcome, src Source) (*Engine, error) {
	if err := Validate(catalog); err != nil {
		return nil, err
	}
	if src == nil {
		src = utils.RandomFloat
	}
	c := make([]domain.RewardOutcome, len(catalog))
	copy(c, catalog)
	return &Engine{catalog: c, total: TotalWeight(c), src: src, tapeSrc: utils.RandomFloat}, nil
}

// WithTapeSource replaces the source used for filler tape cells.
// The authoritative draw keeps its own source.
func (e *Engine) WithTapeSource(src Source) *Engine {
	if src != nil {
		e.tapeSrc = src
	}
	return e
}

// Draw selects exactly one outcome
func (e *Engine) Draw() domain.RewardOutcome {
	return pick(e.catalog, e.total, e.src())
}

// Catalog returns a copy of the engine's outcomes
func (e *Engine) Catalog() []domain.RewardOutcome {
	c := make([]domain.RewardOutcome, len(e.catalog))
	copy(c, e.catalog)
	return c
}

// Tape builds the cosmetic strip shown while the roulette spins. Every cell is an
// independent draw from the tape source, except winnerIndex which holds winner. Out of range
// arguments are clamped so the winner is always present.
func (e *Engine) Tape(length, winnerIndex int, winner domain.RewardOutcome) []domain.RewardOutcome {
	if length < 1 {
		length = 1
	}
	if winnerIndex < 0 {
		winnerIndex = 0
	}
	if winnerIndex >= length {
		winnerIndex = length - 1
	}
	tape := make([]domain.RewardOutcome, length)
	for i := range tape {
		if i == winnerIndex {
			tape[i] = winner
			continue
		}
		tape[i] = pick(e.catalog, e.total, e.tapeSrc())
	}
	return tape
}
