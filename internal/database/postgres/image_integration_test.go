package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

func TestImageRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	seed := seedCatalog(t, pool)
	repo := NewImageRepository(pool)
	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	common := domain.ImageKey{VariantID: seed.VariantID, RarityID: seed.CommonID, StyleID: seed.WatercolorID, ThemeID: seed.BeachID}
	rare := domain.ImageKey{VariantID: seed.VariantID, RarityID: seed.RareID, StyleID: seed.NeonID, ThemeID: seed.BeachID}

	covered, err := repo.FindCoveredKeys(ctx, []domain.ImageKey{common, rare}, since)
	require.NoError(t, err)
	assert.Empty(t, covered)

	pending := &domain.GeneratedImage{Key: common, Status: domain.ImageStatusPending, ContentType: "image/png"}
	require.NoError(t, repo.CreateImage(ctx, pending))
	assert.NotZero(t, pending.ID)

	covered, err = repo.FindCoveredKeys(ctx, []domain.ImageKey{common, rare}, since)
	require.NoError(t, err)
	assert.True(t, covered[common])
	assert.False(t, covered[rare])

	_, err = pool.Exec(ctx, `UPDATE generated_images SET created_at = NOW() - INTERVAL '72 hours' WHERE id = $1`, pending.ID)
	require.NoError(t, err)
	covered, err = repo.FindCoveredKeys(ctx, []domain.ImageKey{common}, since)
	require.NoError(t, err)
	assert.False(t, covered[common], "abandoned pending images leave the key missing")

	active, err := repo.GetActiveImages(ctx, []domain.ImageKey{common})
	require.NoError(t, err)
	assert.Empty(t, active, "pending images are not active")

	require.NoError(t, repo.MarkImageReady(ctx, pending.ID, "image/webp", []byte("webp-bytes")))
	covered, err = repo.FindCoveredKeys(ctx, []domain.ImageKey{common}, since)
	require.NoError(t, err)
	assert.True(t, covered[common], "ready images count regardless of age")

	active, err = repo.GetActiveImages(ctx, []domain.ImageKey{common, rare})
	require.NoError(t, err)
	require.Contains(t, active, common)
	assert.Equal(t, pending.ID, active[common].ID)
	assert.Nil(t, active[common].Data)

	newer := &domain.GeneratedImage{Key: common, Status: domain.ImageStatusReady, ContentType: "image/png", Data: []byte("png")}
	require.NoError(t, repo.CreateImage(ctx, newer))
	active, err = repo.GetActiveImages(ctx, []domain.ImageKey{common})
	require.NoError(t, err)
	assert.Equal(t, newer.ID, active[common].ID, "latest ready image wins")

	got, err := repo.GetImage(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("webp-bytes"), got.Data)
	assert.Equal(t, "image/webp", got.ContentType)

	failing := &domain.GeneratedImage{Key: rare, Status: domain.ImageStatusPending, ContentType: "image/png"}
	require.NoError(t, repo.CreateImage(ctx, failing))
	require.NoError(t, repo.MarkImageFailed(ctx, failing.ID))
	covered, err = repo.FindCoveredKeys(ctx, []domain.ImageKey{rare}, since)
	require.NoError(t, err)
	assert.False(t, covered[rare], "failed images leave the key missing")

	_, err = repo.GetImage(ctx, 424242)
	assert.True(t, errors.Is(err, domain.ErrImageNotFound))
	assert.True(t, errors.Is(repo.MarkImageFailed(ctx, 424242), domain.ErrImageNotFound))
}
