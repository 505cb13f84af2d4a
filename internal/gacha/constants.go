package gacha

// Roll formula
const (
	// MinBaseRoll and MaxBaseRoll bound the uniform base roll.
	MinBaseRoll = 1
	MaxBaseRoll = 100
	// LevelBonusPerLevel is added to the roll for every player level.
	LevelBonusPerLevel = 0.5
	// MaxLevelBonus caps the level bonus.
	MaxLevelBonus = 20.0
	// MaxFinalRoll caps the final roll.
	MaxFinalRoll = 100.0
)

// Defaults
const (
	DefaultRollCost        = 100
	DefaultBatchSize       = 5
	DefaultMaxPlanAttempts = 20
)

// Shortfall reasons reported when a batch delivers fewer drops than requested.
const (
	ShortfallNone              = ""
	ShortfallAttemptsExhausted = "attempts_exhausted"
	ShortfallLegacyExhausted   = "legacy_exhausted"
)

// Warning messages returned with short batches
const (
	WarnMsgLegacyExhausted   = "Fewer cards than expected: the remaining candidates are retired cards."
	WarnMsgAttemptsExhausted = "Fewer cards than expected: the catalog could not fill the batch."
)

// Log messages
const (
	LogMsgRollStarted        = "Roll started"
	LogMsgRollCompleted      = "Roll completed"
	LogMsgShortBatch         = "Roll batch delivered fewer drops than requested"
	LogMsgCandidateFallback  = "No configuration for rarity, using fallback variant"
	LogMsgLegacyCollision    = "Discarding candidate matching a legacy card"
	LogMsgUnresolvedStyle    = "Configuration style not found, using fallback style"
	LogMsgUnresolvedTheme    = "Configuration theme not found, using fallback theme"
	LogMsgDebitFailed        = "Failed to debit roll cost"
	LogMsgGrantFailed        = "Failed to grant cards after debit"
	LogMsgImageFailedForDrop = "Drop granted without artwork"
)

// Error messages
const (
	ErrMsgFailedToLoadCatalog     = "failed to load catalog"
	ErrMsgFailedToLoadLegacyCards = "failed to load legacy cards"
	ErrMsgFailedToDebit           = "failed to debit roll cost"
	ErrMsgFailedToGrant           = "failed to grant cards"
	ErrMsgFailedToGetPlayer       = "failed to get player"
)
