package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// CollectionRepository implements the collection repository for PostgreSQL
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

const playerColumns = `id, username, level, xp, gatcha_coins`

const ownedCardColumns = `
	c.id, c.variant_id, c.rarity_id, c.style_id, c.theme_id, c.legacy,
	uc.id, uc.player_id, uc.card_id, uc.count, uc.obtained_at
`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	if err := row.Scan(&p.ID, &p.Username, &p.Level, &p.XP, &p.Coins); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayer retrieves a player by id
func (r *CollectionRepository) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	p, err := scanPlayer(r.db.QueryRow(ctx, query, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, notFound(err, domain.ErrPlayerNotFound))
	}
	return p, nil
}

func scanOwnedCard(row pgx.Row) (domain.OwnedCard, error) {
	var oc domain.OwnedCard
	var (
		ucID, ucPlayer, ucCard *int64
		ucCount                *int
		ucObtained             pgtype.Timestamptz
	)
	err := row.Scan(
		&oc.Card.ID,
		&oc.Card.VariantID,
		&oc.Card.RarityID,
		&oc.Card.StyleID,
		&oc.Card.ThemeID,
		&oc.Card.Legacy,
		&ucID,
		&ucPlayer,
		&ucCard,
		&ucCount,
		&ucObtained,
	)
	if err != nil {
		return oc, err
	}
	if ucID != nil {
		oc.UserCard = &domain.UserCard{
			ID:         *ucID,
			PlayerID:   *ucPlayer,
			CardID:     *ucCard,
			Count:      *ucCount,
			ObtainedAt: ucObtained.Time,
		}
	}
	return oc, nil
}

// GetOwnedCard retrieves one of the player's cards by its ownership id
func (r *CollectionRepository) GetOwnedCard(ctx context.Context, playerID, userCardID int64) (*domain.OwnedCard, error) {
	query := `
		SELECT ` + ownedCardColumns + `
		FROM user_cards uc
		JOIN cards c ON c.id = uc.card_id
		WHERE uc.id = $1 AND uc.player_id = $2
	`

	oc, err := scanOwnedCard(r.db.QueryRow(ctx, query, userCardID, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedCard, notFound(err, domain.ErrUserCardNotFound))
	}
	return &oc, nil
}

// ListCollection retrieves the player's cards, optionally with every unowned catalog card
func (r *CollectionRepository) ListCollection(ctx context.Context, playerID int64, includeUnowned bool) ([]domain.OwnedCard, error) {
	join := "JOIN"
	if includeUnowned {
		join = "LEFT JOIN"
	}
	query := `
		SELECT ` + ownedCardColumns + `
		FROM cards c
		` + join + ` user_cards uc ON uc.card_id = c.id AND uc.player_id = $1
		ORDER BY uc.obtained_at DESC NULLS LAST, c.id
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCollection, err)
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OwnedCard, error) {
		return scanOwnedCard(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCollection, err)
	}
	return cards, nil
}

// ListOwnedKeysWithoutImage retrieves owned card keys that still need artwork.
// A pending image older than pendingSince no longer counts.
func (r *CollectionRepository) ListOwnedKeysWithoutImage(ctx context.Context, limit int, pendingSince time.Time) ([]domain.ImageKey, error) {
	query := `
		SELECT c.variant_id, c.rarity_id, c.style_id, c.theme_id
		FROM cards c
		WHERE NOT c.legacy
		  AND EXISTS (SELECT 1 FROM user_cards uc WHERE uc.card_id = c.id)
		  AND NOT EXISTS (
			SELECT 1 FROM generated_images gi
			WHERE gi.variant_id = c.variant_id
			  AND gi.rarity_id = c.rarity_id
			  AND gi.style_id = c.style_id
			  AND gi.theme_id = c.theme_id
			  AND (gi.status = 'ready' OR (gi.status = 'pending' AND gi.created_at >= $2))
		  )
		ORDER BY c.id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit, pendingSince)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMissingKeys, err)
	}

	keys, err := pgx.CollectRows(rows, scanImageKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMissingKeys, err)
	}
	return keys, nil
}

// BeginTx starts a collection transaction
func (r *CollectionRepository) BeginTx(ctx context.Context) (repository.CollectionTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &collectionTx{tx: tx}, nil
}

// collectionTx implements repository.CollectionTx
type collectionTx struct {
	tx pgx.Tx
}

func (t *collectionTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *collectionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlayerForUpdate retrieves a player and locks the row until the transaction ends
func (t *collectionTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1 FOR UPDATE`

	p, err := scanPlayer(t.tx.QueryRow(ctx, query, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, notFound(err, domain.ErrPlayerNotFound))
	}
	return p, nil
}

// UpdatePlayerCoins sets the player's coin balance
func (t *collectionTx) UpdatePlayerCoins(ctx context.Context, playerID int64, coins int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE players SET gatcha_coins = $2 WHERE id = $1`, playerID, coins)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCoins, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCoins, domain.ErrPlayerNotFound)
	}
	return nil
}

// GetOrCreateCard returns the card for a key, inserting it when it does not exist yet
func (t *collectionTx) GetOrCreateCard(ctx context.Context, key domain.ImageKey) (*domain.Card, error) {
	insert := `
		INSERT INTO cards (variant_id, rarity_id, style_id, theme_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (variant_id, rarity_id, style_id, theme_id) DO NOTHING
	`
	if _, err := t.tx.Exec(ctx, insert, key.VariantID, key.RarityID, key.StyleID, key.ThemeID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOrCreateCard, err)
	}

	query := `
		SELECT id, variant_id, rarity_id, style_id, theme_id, legacy
		FROM cards
		WHERE variant_id = $1 AND rarity_id = $2 AND style_id = $3 AND theme_id = $4
	`
	var c domain.Card
	err := t.tx.QueryRow(ctx, query, key.VariantID, key.RarityID, key.StyleID, key.ThemeID).Scan(
		&c.ID, &c.VariantID, &c.RarityID, &c.StyleID, &c.ThemeID, &c.Legacy,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOrCreateCard, err)
	}
	return &c, nil
}

// GrantCard inserts the ownership row or increments its count. obtained_at is kept on restack.
func (t *collectionTx) GrantCard(ctx context.Context, playerID, cardID int64) (*domain.UserCard, bool, error) {
	query := `
		INSERT INTO user_cards (player_id, card_id, count, obtained_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (player_id, card_id) DO UPDATE SET count = user_cards.count + 1
		RETURNING id, player_id, card_id, count, obtained_at, (xmax = 0) AS inserted
	`

	var uc domain.UserCard
	var inserted bool
	err := t.tx.QueryRow(ctx, query, playerID, cardID).Scan(
		&uc.ID, &uc.PlayerID, &uc.CardID, &uc.Count, &uc.ObtainedAt, &inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToGrantCard, err)
	}
	return &uc, inserted, nil
}
