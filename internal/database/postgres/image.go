package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// ImageRepository implements the generated image repository for PostgreSQL
type ImageRepository struct {
	db *pgxpool.Pool
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{db: db}
}

const keysFilter = `
	(variant_id, rarity_id, style_id, theme_id) IN (
		SELECT * FROM unnest($1::bigint[], $2::bigint[], $3::bigint[], $4::bigint[])
	)
`

// FindCoveredKeys returns the keys that already have a ready image or a pending
// one newer than pendingSince. Older pending rows belong to generations that
// never reported back.
func (r *ImageRepository) FindCoveredKeys(ctx context.Context, keys []domain.ImageKey, pendingSince time.Time) (map[domain.ImageKey]bool, error) {
	covered := make(map[domain.ImageKey]bool, len(keys))
	if len(keys) == 0 {
		return covered, nil
	}

	query := `
		SELECT DISTINCT variant_id, rarity_id, style_id, theme_id
		FROM generated_images
		WHERE (status = 'ready' OR (status = 'pending' AND created_at >= $5)) AND ` + keysFilter

	v, ra, s, t := keyColumns(keys)
	rows, err := r.db.Query(ctx, query, v, ra, s, t, pendingSince)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryImages, err)
	}

	found, err := pgx.CollectRows(rows, scanImageKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryImages, err)
	}
	for _, k := range found {
		covered[k] = true
	}
	return covered, nil
}

// GetActiveImages returns the latest ready image for each key, without its bytes
func (r *ImageRepository) GetActiveImages(ctx context.Context, keys []domain.ImageKey) (map[domain.ImageKey]domain.GeneratedImage, error) {
	active := make(map[domain.ImageKey]domain.GeneratedImage, len(keys))
	if len(keys) == 0 {
		return active, nil
	}

	query := `
		SELECT DISTINCT ON (variant_id, rarity_id, style_id, theme_id)
		       id, variant_id, rarity_id, style_id, theme_id, status, content_type, created_at
		FROM generated_images
		WHERE status = 'ready' AND ` + keysFilter + `
		ORDER BY variant_id, rarity_id, style_id, theme_id, created_at DESC, id DESC
	`

	v, ra, s, t := keyColumns(keys)
	rows, err := r.db.Query(ctx, query, v, ra, s, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryImages, err)
	}

	images, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.GeneratedImage, error) {
		var img domain.GeneratedImage
		err := row.Scan(
			&img.ID,
			&img.Key.VariantID,
			&img.Key.RarityID,
			&img.Key.StyleID,
			&img.Key.ThemeID,
			&img.Status,
			&img.ContentType,
			&img.CreatedAt,
		)
		return img, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryImages, err)
	}
	for _, img := range images {
		active[img.Key] = img
	}
	return active, nil
}

// GetImage retrieves an image with its bytes
func (r *ImageRepository) GetImage(ctx context.Context, id int64) (*domain.GeneratedImage, error) {
	query := `
		SELECT id, variant_id, rarity_id, style_id, theme_id, status, content_type,
		       COALESCE(image_data, ''::bytea), created_at
		FROM generated_images
		WHERE id = $1
	`

	var img domain.GeneratedImage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&img.ID,
		&img.Key.VariantID,
		&img.Key.RarityID,
		&img.Key.StyleID,
		&img.Key.ThemeID,
		&img.Status,
		&img.ContentType,
		&img.Data,
		&img.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetImage, notFound(err, domain.ErrImageNotFound))
	}
	return &img, nil
}

// CreateImage inserts an image row and fills in its id and creation time
func (r *ImageRepository) CreateImage(ctx context.Context, img *domain.GeneratedImage) error {
	query := `
		INSERT INTO generated_images (variant_id, rarity_id, style_id, theme_id, status, content_type, image_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	var data []byte
	if len(img.Data) > 0 {
		data = img.Data
	}
	err := r.db.QueryRow(ctx, query,
		img.Key.VariantID,
		img.Key.RarityID,
		img.Key.StyleID,
		img.Key.ThemeID,
		img.Status,
		img.ContentType,
		data,
	).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateImage, err)
	}
	return nil
}

// MarkImageReady stores the artwork bytes and flips the row to ready
func (r *ImageRepository) MarkImageReady(ctx context.Context, id int64, contentType string, data []byte) error {
	query := `
		UPDATE generated_images
		SET status = 'ready', content_type = $2, image_data = $3
		WHERE id = $1
	`
	return r.updateImage(ctx, query, id, contentType, data)
}

// MarkImageFailed flips the row to failed so the key counts as missing again
func (r *ImageRepository) MarkImageFailed(ctx context.Context, id int64) error {
	return r.updateImage(ctx, `UPDATE generated_images SET status = 'failed' WHERE id = $1`, id)
}

func (r *ImageRepository) updateImage(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateImage, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateImage, domain.ErrImageNotFound)
	}
	return nil
}
