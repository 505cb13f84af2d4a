package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Background job scheduled"
	LogMsgJobDisabled  = "Background job disabled, no schedule configured"
	LogMsgJobNotQueued = "Scheduled job could not be queued"
)

// ErrMsgInvalidSchedule prefixes cron parse errors.
const ErrMsgInvalidSchedule = "invalid schedule"
