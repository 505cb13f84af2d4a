package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// MockSeeder is a mock implementation of repository.CatalogSeeder
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) ApplySeed(ctx context.Context, seed *domain.CatalogSeed) (*domain.SeedResult, error) {
	args := m.Called(ctx, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedResult), args.Error(1)
}

type countingStore struct {
	invalidated int
}

func (s *countingStore) Snapshot(context.Context) (*catalog.Snapshot, error) { return nil, nil }

func (s *countingStore) Invalidate() { s.invalidated++ }

func shippedCatalogPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "configs", "catalog.json")
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSyncCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the shipped catalog and invalidates the cache", func(t *testing.T) {
		// ARRANGE
		seeder := new(MockSeeder)
		store := &countingStore{}
		seeder.On("ApplySeed", mock.Anything, mock.MatchedBy(func(s *domain.CatalogSeed) bool {
			return len(s.Rarities) == 3
		})).Return(&domain.SeedResult{Rarities: 3}, nil)

		// ACT
		err := SyncCatalog(ctx, shippedCatalogPath(t), seeder, store)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 1, store.invalidated)
		seeder.AssertExpectations(t)
	})

	t.Run("empty path skips the sync", func(t *testing.T) {
		seeder := new(MockSeeder)

		require.NoError(t, SyncCatalog(ctx, "", seeder, nil))
		seeder.AssertNotCalled(t, "ApplySeed", mock.Anything, mock.Anything)
	})

	t.Run("missing file", func(t *testing.T) {
		err := SyncCatalog(ctx, filepath.Join(t.TempDir(), "nope.json"), new(MockSeeder), nil)

		assert.ErrorContains(t, err, ErrMsgCatalogSchema)
	})

	t.Run("schema violation is rejected before loading", func(t *testing.T) {
		seeder := new(MockSeeder)
		path := writeSeed(t, `{"rarities":[{"name":"Common","min_roll_threshold":150}]}`)

		err := SyncCatalog(ctx, path, seeder, nil)

		assert.ErrorContains(t, err, ErrMsgCatalogSchema)
		assert.ErrorContains(t, err, "/rarities/0/min_roll_threshold")
		seeder.AssertNotCalled(t, "ApplySeed", mock.Anything, mock.Anything)
	})

	t.Run("invalid seed is rejected before touching the database", func(t *testing.T) {
		seeder := new(MockSeeder)
		path := writeSeed(t, `{"rarities":[{"name":"Common"}],"styles":[{"name":"Ink","rarity_name":"Mythic"}]}`)

		err := SyncCatalog(ctx, path, seeder, nil)

		assert.ErrorContains(t, err, ErrMsgInvalidCatalog)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		seeder.AssertNotCalled(t, "ApplySeed", mock.Anything, mock.Anything)
	})

	t.Run("apply failure keeps the cache", func(t *testing.T) {
		seeder := new(MockSeeder)
		store := &countingStore{}
		seeder.On("ApplySeed", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		err := SyncCatalog(ctx, writeSeed(t, `{"rarities":[{"name":"Common"}]}`), seeder, store)

		assert.ErrorContains(t, err, ErrMsgFailedSyncCatalog)
		assert.Zero(t, store.invalidated)
	})
}
