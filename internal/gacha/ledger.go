package gacha

import (
	"context"
	"fmt"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// Ledger persists coin debits and card grants.
type Ledger struct {
	repo repository.Collection
}

// NewLedger creates a ledger over the collection repository.
func NewLedger(repo repository.Collection) *Ledger {
	return &Ledger{repo: repo}
}

// Debit charges cost to the player in its own transaction, with the player
// row locked. Returns the updated player. Insufficient funds leave the
// player untouched.
func (l *Ledger) Debit(ctx context.Context, playerID int64, cost int) (*domain.Player, error) {
	tx, err := l.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDebit, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.Coins < cost {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, player.Coins, cost)
	}

	player.Coins -= cost
	if err := tx.UpdatePlayerCoins(ctx, player.ID, player.Coins); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDebit, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDebit, err)
	}
	return player, nil
}

// Grant get-or-creates the card for every key and adds one copy of each to
// the player's collection, in order, within one transaction. A key listed
// twice is stacked twice.
func (l *Ledger) Grant(ctx context.Context, playerID int64, keys []domain.ImageKey) ([]domain.Grant, error) {
	tx, err := l.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrant, err)
	}
	defer repository.SafeRollback(ctx, tx)

	grants := make([]domain.Grant, 0, len(keys))
	for _, key := range keys {
		card, err := tx.GetOrCreateCard(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrant, err)
		}
		uc, isNew, err := tx.GrantCard(ctx, playerID, card.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrant, err)
		}
		grants = append(grants, domain.Grant{Card: *card, UserCard: *uc, IsNew: isNew})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrant, err)
	}
	return grants, nil
}
