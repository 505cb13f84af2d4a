package sse

// RollCompletedPayload is sent after a roll grants its drops
type RollCompletedPayload struct {
	PlayerID       int64   `json:"player_id"`
	Requested      int     `json:"requested"`
	Delivered      int     `json:"delivered"`
	RemainingCoins int     `json:"remaining_coins"`
	UserCardIDs    []int64 `json:"user_card_ids"`
	NewCards       int     `json:"new_cards"`
	Warning        string  `json:"warning,omitempty"`
}

// JobUpdatedPayload is sent when an async job reaches a final state
type JobUpdatedPayload struct {
	JobID      string `json:"job_id"`
	JobType    string `json:"job_type"`
	Status     string `json:"status"`
	TargetKind string `json:"target_kind,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
