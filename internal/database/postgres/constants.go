package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgRowIteration              = "row iteration error"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToQueryRarities   = "failed to query rarities"
	ErrMsgFailedToQueryStyles     = "failed to query styles"
	ErrMsgFailedToQueryThemes     = "failed to query themes"
	ErrMsgFailedToQuerySeries     = "failed to query series"
	ErrMsgFailedToQueryCharacters = "failed to query characters"
	ErrMsgFailedToQueryVariants   = "failed to query character variants"
	ErrMsgFailedToQueryReferences = "failed to query reference images"
	ErrMsgFailedToQueryLegacyKeys = "failed to query legacy card keys"
	ErrMsgFailedToDecodeConfigs   = "failed to decode card configurations"
	ErrMsgFailedToApplySeed       = "failed to apply catalog seed"
)

// defaultRarityColor matches the column default for rarities without a color.
const defaultRarityColor = "#FFFFFF"

// Error Messages - Collection Operations
const (
	ErrMsgFailedToGetPlayer        = "failed to get player"
	ErrMsgFailedToUpdateCoins      = "failed to update player coins"
	ErrMsgFailedToGetOrCreateCard  = "failed to get or create card"
	ErrMsgFailedToGrantCard        = "failed to grant card"
	ErrMsgFailedToQueryCollection  = "failed to query collection"
	ErrMsgFailedToGetOwnedCard     = "failed to get owned card"
	ErrMsgFailedToQueryMissingKeys = "failed to query keys without image"
)

// Error Messages - Image Operations
const (
	ErrMsgFailedToQueryImages = "failed to query generated images"
	ErrMsgFailedToCreateImage = "failed to create generated image"
	ErrMsgFailedToUpdateImage = "failed to update generated image"
	ErrMsgFailedToGetImage    = "failed to get generated image"
)

// Error Messages - Async Job Operations
const (
	ErrMsgFailedToCreateJob = "failed to create async job"
	ErrMsgFailedToGetJob    = "failed to get async job"
	ErrMsgFailedToUpdateJob = "failed to update async job"
)

// Log Messages
const (
	LogMsgSkippingInvalidConfiguration = "Skipping undecodable card configuration"
	LogMsgFailedToRollback             = "Failed to rollback transaction"
)
