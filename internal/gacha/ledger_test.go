package gacha

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

func TestDebit(t *testing.T) {
	repo := newFakeCollection(domain.Player{ID: 1, Coins: 250, Level: 4})
	ledger := NewLedger(repo)

	player, err := ledger.Debit(context.Background(), 1, 100)

	require.NoError(t, err)
	assert.Equal(t, 150, player.Coins)
	assert.Equal(t, 4, player.Level)
	assert.Equal(t, 150, repo.player(1).Coins)
}

func TestDebit_InsufficientFundsLeavesPlayerUntouched(t *testing.T) {
	repo := newFakeCollection(domain.Player{ID: 1, Coins: 50})

	_, err := NewLedger(repo).Debit(context.Background(), 1, 100)

	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "have 50, need 100")
	assert.Equal(t, 50, repo.player(1).Coins)
}

func TestDebit_UnknownPlayer(t *testing.T) {
	_, err := NewLedger(newFakeCollection()).Debit(context.Background(), 7, 100)

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGrant_StacksDuplicates(t *testing.T) {
	// ARRANGE
	repo := newFakeCollection(domain.Player{ID: 1})
	ledger := NewLedger(repo)
	key := domain.ImageKey{VariantID: 1, RarityID: 1, StyleID: 10, ThemeID: 20}

	// ACT
	first, err := ledger.Grant(context.Background(), 1, []domain.ImageKey{key})
	require.NoError(t, err)
	second, err := ledger.Grant(context.Background(), 1, []domain.ImageKey{key, key})
	require.NoError(t, err)

	// ASSERT
	require.Len(t, first, 1)
	assert.True(t, first[0].IsNew)
	assert.Equal(t, 1, first[0].UserCard.Count)

	require.Len(t, second, 2)
	assert.False(t, second[0].IsNew)
	assert.False(t, second[1].IsNew)
	assert.Equal(t, 3, second[1].UserCard.Count)
	assert.Equal(t, first[0].Card.ID, second[1].Card.ID)
	assert.Equal(t, first[0].UserCard.ID, second[1].UserCard.ID)
	assert.Equal(t, first[0].UserCard.ObtainedAt, second[1].UserCard.ObtainedAt)

	owned := repo.ownership()
	require.Len(t, owned, 1)
	assert.Equal(t, 3, owned[0].Count)
}

func TestGrant_FailureCommitsNothing(t *testing.T) {
	repo := newFakeCollection(domain.Player{ID: 1})
	repo.grantErr = errors.New("constraint violated")

	_, err := NewLedger(repo).Grant(context.Background(), 1, []domain.ImageKey{{VariantID: 1}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToGrant)
	assert.Empty(t, repo.ownership())
}
