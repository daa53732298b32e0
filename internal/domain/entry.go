package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a user's journal entry. The reward fields (RewardStatus,
// RewardAmount, DistributedAt) are written exclusively by the distribution
// service; everything else is immutable after creation.
type JournalEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Content       string
	Media         []MediaAttachment
	WalletAddress string
	CreatedAt     time.Time

	RewardStatus  RewardStatus
	RewardAmount  *TokenAmount
	DistributedAt *time.Time
}

// HasMedia reports whether the entry carries at least one attachment.
func (e *JournalEntry) HasMedia() bool {
	return len(e.Media) > 0
}

// IsSettled reports whether the reward decision is terminal.
func (e *JournalEntry) IsSettled() bool {
	return e.RewardStatus.IsTerminal()
}

// IsRewardEligible reports whether a non-zero reward was computed for the
// entry. Entries below the minimum content length stay pending with a nil
// amount and never settle.
func (e *JournalEntry) IsRewardEligible() bool {
	return e.RewardAmount != nil && e.RewardAmount.Sign() > 0
}

// MediaAttachment is a media file attached to a journal entry. Only kind
// and URL matter to the backend; capture and upload happen client-side.
type MediaAttachment struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
}
