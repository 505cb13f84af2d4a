package repository

import (
	"context"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// Collection defines persistence for players, cards and ownership
type Collection interface {
	GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error)
	GetOwnedCard(ctx context.Context, playerID, userCardID int64) (*domain.OwnedCard, error)
	// ListCollection returns the player's cards. With includeUnowned every
	// catalog card is returned and unowned ones carry a nil UserCard.
	ListCollection(ctx context.Context, playerID int64, includeUnowned bool) ([]domain.OwnedCard, error)
	// ListOwnedKeysWithoutImage returns owned card keys that have neither a
	// ready image nor a pending one created at or after pendingSince.
	ListOwnedKeysWithoutImage(ctx context.Context, limit int, pendingSince time.Time) ([]domain.ImageKey, error)

	BeginTx(ctx context.Context) (CollectionTx, error)
}

// CollectionTx defines the operations run inside a roll transaction
type CollectionTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error)
	UpdatePlayerCoins(ctx context.Context, playerID int64, coins int) error
	GetOrCreateCard(ctx context.Context, key domain.ImageKey) (*domain.Card, error)
	// GrantCard adds one copy of the card to the player's collection and
	// reports whether the ownership row was created.
	GrantCard(ctx context.Context, playerID, cardID int64) (*domain.UserCard, bool, error)
}
