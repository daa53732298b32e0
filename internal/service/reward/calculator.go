// Package reward computes the token reward earned by a journal entry.
// The computation is pure and deterministic given the entry and its
// predecessor; results are never cached because the predecessor can change
// between calls.
package reward

import (
	"math/big"
	"time"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

const (
	// minContentLength gates reward eligibility: shorter entries earn nothing.
	minContentLength = 100

	// longContentLength grants the length bonus.
	longContentLength = 500

	// consistencyWindow is the maximum gap to the previous entry for the
	// consistency bonus.
	consistencyWindow = 24 * time.Hour
)

// Bonus percentages of the base reward. All bonus math stays in the
// integer domain: base × pct / 100.
const (
	lengthBonusPct      = 50
	mediaBonusPct       = 50
	consistencyBonusPct = 20
)

// Calculator computes entry rewards in 18-decimal fixed point.
type Calculator struct{}

// NewCalculator returns a reward calculator.
func NewCalculator() *Calculator { return &Calculator{} }

// Compute returns the reward for entry. previous is the user's most recent
// earlier entry, or nil if none exists. Entries below the minimum content
// length compute to zero and are not reward eligible.
func (c *Calculator) Compute(entry *domain.JournalEntry, previous *domain.JournalEntry) *domain.RewardComputation {
	comp := &domain.RewardComputation{
		EntryID: entry.ID,
		Amount:  domain.ZeroTokens(),
		Basis: domain.RewardBasis{
			ContentLengthBonus: domain.ZeroTokens(),
			MediaBonus:         domain.ZeroTokens(),
			ConsistencyBonus:   domain.ZeroTokens(),
		},
	}

	if len(entry.Content) < minContentLength {
		return comp
	}

	base := domain.OneToken()
	total := domain.NewTokenAmount(base)

	if len(entry.Content) >= longContentLength {
		comp.Basis.ContentLengthBonus = percentOf(base, lengthBonusPct)
		total = total.Add(comp.Basis.ContentLengthBonus)
	}

	if entry.HasMedia() {
		comp.Basis.MediaBonus = percentOf(base, mediaBonusPct)
		total = total.Add(comp.Basis.MediaBonus)
	}

	if previous != nil && entry.CreatedAt.Sub(previous.CreatedAt) <= consistencyWindow {
		comp.Basis.ConsistencyBonus = percentOf(base, consistencyBonusPct)
		total = total.Add(comp.Basis.ConsistencyBonus)
	}

	comp.Amount = total
	return comp
}

// percentOf returns base × pct / 100 as a token amount.
func percentOf(base *big.Int, pct int64) *domain.TokenAmount {
	v := new(big.Int).Mul(base, big.NewInt(pct))
	v.Div(v, big.NewInt(100))
	return domain.NewTokenAmount(v)
}
