package domain

// RewardStatus represents the settlement state of an entry's reward.
// Transitions are append-only: PENDING may move to APPROVED or DENIED,
// both of which are terminal.
type RewardStatus string

const (
	RewardStatusPending  RewardStatus = "PENDING"
	RewardStatusApproved RewardStatus = "APPROVED"
	RewardStatusDenied   RewardStatus = "DENIED"
)

func (s RewardStatus) String() string { return string(s) }

func (s RewardStatus) IsValid() bool {
	switch s {
	case RewardStatusPending, RewardStatusApproved, RewardStatusDenied:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s RewardStatus) IsTerminal() bool {
	return s == RewardStatusApproved || s == RewardStatusDenied
}

// MediaKind identifies the type of a media attachment on a journal entry.
type MediaKind string

const (
	MediaKindImage MediaKind = "IMAGE"
	MediaKindAudio MediaKind = "AUDIO"
	MediaKindVideo MediaKind = "VIDEO"
)

func (k MediaKind) String() string { return string(k) }

func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindImage, MediaKindAudio, MediaKindVideo:
		return true
	}
	return false
}
