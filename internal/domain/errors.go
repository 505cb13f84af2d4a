package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgNoRarities           = "no rarities defined"
	ErrMsgCatalogIncomplete    = "missing game data (variants/styles/themes)"
	ErrMsgInvalidConfiguration = "invalid card configuration"

	// Player errors
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgInsufficientFunds = "not enough coins"

	// Collection errors
	ErrMsgUserCardNotFound = "card not found in collection"
	ErrMsgImageNotFound    = "image not found"

	// Generation errors
	ErrMsgImageGeneration  = "image generation failed"
	ErrMsgRerollInProgress = "artwork reroll already in progress"

	// Async job errors
	ErrMsgJobNotFound     = "job not found"
	ErrMsgNoJobHandler    = "no handler registered for job type"
	ErrMsgJobTargetKind   = "unexpected job target"
	ErrMsgMissingArtifact = "no image data found in callback payload"
	ErrMsgJobHandler      = "job handler failed"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrNoRarities           = errors.New(ErrMsgNoRarities)
	ErrCatalogIncomplete    = errors.New(ErrMsgCatalogIncomplete)
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)

	// Player errors
	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Collection errors
	ErrUserCardNotFound = errors.New(ErrMsgUserCardNotFound)
	ErrImageNotFound    = errors.New(ErrMsgImageNotFound)

	// Generation errors
	ErrImageGeneration  = errors.New(ErrMsgImageGeneration)
	ErrRerollInProgress = errors.New(ErrMsgRerollInProgress)

	// Async job errors
	ErrJobNotFound     = errors.New(ErrMsgJobNotFound)
	ErrNoJobHandler    = errors.New(ErrMsgNoJobHandler)
	ErrJobTargetKind   = errors.New(ErrMsgJobTargetKind)
	ErrMissingArtifact = errors.New(ErrMsgMissingArtifact)
	ErrJobHandler      = errors.New(ErrMsgJobHandler)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
