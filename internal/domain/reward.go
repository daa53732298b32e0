package domain

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// TokenDecimals is the fixed-point precision of the reward token.
// All amounts are integers scaled by 10^18 to match on-chain precision.
const TokenDecimals = 18

// OneToken returns 10^18 base units, the base reward B.
func OneToken() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
}

// TokenAmount is a non-negative token amount in base units. It exists so the
// rest of the codebase never mixes float arithmetic into token math.
type TokenAmount struct {
	value *big.Int
}

// NewTokenAmount wraps base units into a TokenAmount. The value is copied.
func NewTokenAmount(baseUnits *big.Int) *TokenAmount {
	return &TokenAmount{value: new(big.Int).Set(baseUnits)}
}

// ZeroTokens returns a zero amount.
func ZeroTokens() *TokenAmount {
	return &TokenAmount{value: new(big.Int)}
}

// ParseTokenAmount parses a base-unit decimal string (e.g. "2200000000000000000").
func ParseTokenAmount(s string) (*TokenAmount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("token amount %q: %w", s, ErrValidation)
	}
	return &TokenAmount{value: v}, nil
}

// BigInt returns a copy of the underlying base-unit value.
func (a *TokenAmount) BigInt() *big.Int {
	return new(big.Int).Set(a.value)
}

// Sign returns -1, 0 or +1 like big.Int.Sign.
func (a *TokenAmount) Sign() int { return a.value.Sign() }

// Cmp compares a to b like big.Int.Cmp.
func (a *TokenAmount) Cmp(b *TokenAmount) int { return a.value.Cmp(b.value) }

// Add returns a new amount a+b; neither operand is modified.
func (a *TokenAmount) Add(b *TokenAmount) *TokenAmount {
	return &TokenAmount{value: new(big.Int).Add(a.value, b.value)}
}

// String returns the base-unit decimal representation.
func (a *TokenAmount) String() string { return a.value.String() }

// RewardBasis itemizes the bonuses that produced a computed reward.
// Amounts are base units; a zero component means the bonus did not apply.
type RewardBasis struct {
	ContentLengthBonus *TokenAmount
	MediaBonus         *TokenAmount
	ConsistencyBonus   *TokenAmount
}

// RewardComputation is the ephemeral result of the reward calculator for a
// single entry. It is computed fresh on demand and never persisted, because
// its inputs (the previous entry) can change between calls.
type RewardComputation struct {
	EntryID uuid.UUID
	Amount  *TokenAmount
	Basis   RewardBasis
}

// Eligible reports whether the computed amount is positive.
func (c *RewardComputation) Eligible() bool {
	return c.Amount != nil && c.Amount.Sign() > 0
}
