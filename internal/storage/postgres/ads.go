package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

const adColumns = `id, title, image_url, click_url, position, active, impressions, clicks, created_at`

// ListActiveAds returns all ads currently flagged active.
func (s *Store) ListActiveAds(ctx context.Context) ([]models.Ad, error) {
	const query = `SELECT ` + adColumns + ` FROM ads WHERE active ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ads: %w", err)
	}
	defer rows.Close()

	ads := []models.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// CreateAd inserts a new ad row.
func (s *Store) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	ad.ID = uuid.NewString()
	const query = `
	INSERT INTO ads (id, title, image_url, click_url, position, active, impressions, clicks)
	VALUES ($1, $2, $3, $4, $5, $6, 0, 0)
	RETURNING ` + adColumns + `;`
	return scanAd(s.pool.QueryRow(ctx, query,
		ad.ID, ad.Title, ad.ImageURL, ad.ClickURL, ad.Position, ad.Active))
}

// UpdateAd applies a partial update; nil fields keep their current value.
func (s *Store) UpdateAd(ctx context.Context, id string, upd storage.AdUpdate) (models.Ad, error) {
	const query = `
	UPDATE ads SET
		title = COALESCE($2, title),
		image_url = COALESCE($3, image_url),
		click_url = COALESCE($4, click_url),
		position = COALESCE($5, position),
		active = COALESCE($6, active)
	WHERE id = $1
	RETURNING ` + adColumns + `;`
	return scanAd(s.pool.QueryRow(ctx, query,
		id, upd.Title, upd.ImageURL, upd.ClickURL, upd.Position, upd.Active))
}

// DeleteAd removes an ad row.
func (s *Store) DeleteAd(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanAd(row pgx.Row) (models.Ad, error) {
	var ad models.Ad
	err := row.Scan(&ad.ID, &ad.Title, &ad.ImageURL, &ad.ClickURL,
		&ad.Position, &ad.Active, &ad.Impressions, &ad.Clicks, &ad.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Ad{}, storage.ErrNotFound
		}
		return models.Ad{}, err
	}
	return ad, nil
}
