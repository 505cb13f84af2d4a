package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// keyColumns splits keys into parallel arrays for unnest() based lookups.
func keyColumns(keys []domain.ImageKey) (variants, rarities, styles, themes []int64) {
	variants = make([]int64, len(keys))
	rarities = make([]int64, len(keys))
	styles = make([]int64, len(keys))
	themes = make([]int64, len(keys))
	for i, k := range keys {
		variants[i] = k.VariantID
		rarities[i] = k.RarityID
		styles[i] = k.StyleID
		themes[i] = k.ThemeID
	}
	return variants, rarities, styles, themes
}

// notFound converts pgx.ErrNoRows into the given domain error.
func notFound(err error, domainErr error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErr
	}
	return err
}
