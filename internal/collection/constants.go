package collection

// MediaPathPrefix is the route serving stored artwork.
const MediaPathPrefix = "/media/generated/"

// Log messages
const (
	LogMsgRerollRequested   = "Artwork reroll requested"
	LogMsgRerollFailed      = "Artwork reroll failed"
	LogMsgBackfillSkipped   = "Skipping backfill for unknown catalog entry"
	LogMsgBackfillCompleted = "Artwork backfill completed"
)

// Error messages
const (
	ErrMsgFailedToLoadCatalog    = "failed to load catalog"
	ErrMsgFailedToListCollection = "failed to list collection"
	ErrMsgFailedToLoadImages     = "failed to load artwork"
	ErrMsgUnknownCatalogEntry    = "card references unknown catalog entry"
	ErrMsgFailedToListMissingArt = "failed to list cards missing artwork"
)
