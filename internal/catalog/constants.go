package catalog

import "time"

// snapshotKey is the single cache slot holding the current snapshot.
const snapshotKey = "catalog"

// DefaultCacheTTL is how long a loaded snapshot is reused.
const DefaultCacheTTL = 30 * time.Second

// Log messages
const (
	LogMsgCatalogLoaded         = "Catalog snapshot loaded"
	LogMsgDroppedConfigurations = "Dropped invalid card configurations"
)

// MaxRollThreshold is the highest final roll a rarity can require.
const MaxRollThreshold = 100

// Error messages
const (
	ErrMsgFailedToLoadCatalog = "failed to load catalog"
	ErrMsgFailedToLoadSeed    = "failed to load catalog seed"
)
