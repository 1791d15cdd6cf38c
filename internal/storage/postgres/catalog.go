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

const videoColumns = `id, title, description, category, thumbnail_url, video_url, duration, views, status, trending, featured, created_at`

// ListVideos returns up to 50 published videos, optionally filtered by category.
func (s *Store) ListVideos(ctx context.Context, category string) ([]models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE status = $1`
	args := []any{models.VideoStatusPublished}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC LIMIT 50;`
	return s.queryVideos(ctx, query, args...)
}

// ListTrendingVideos returns up to 10 published videos flagged trending.
func (s *Store) ListTrendingVideos(ctx context.Context) ([]models.Video, error) {
	const query = `SELECT ` + videoColumns + ` FROM videos
	WHERE trending AND status = $1 ORDER BY created_at DESC LIMIT 10;`
	return s.queryVideos(ctx, query, models.VideoStatusPublished)
}

// ListFeaturedVideos returns up to 10 published videos flagged featured.
func (s *Store) ListFeaturedVideos(ctx context.Context) ([]models.Video, error) {
	const query = `SELECT ` + videoColumns + ` FROM videos
	WHERE featured AND status = $1 ORDER BY created_at DESC LIMIT 10;`
	return s.queryVideos(ctx, query, models.VideoStatusPublished)
}

// SearchVideos matches the query case-insensitively against title and
// description of published videos, returning up to 20 results.
func (s *Store) SearchVideos(ctx context.Context, query string) ([]models.Video, error) {
	const stmt = `SELECT ` + videoColumns + ` FROM videos
	WHERE status = $1 AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
	ORDER BY created_at DESC LIMIT 20;`
	return s.queryVideos(ctx, stmt, models.VideoStatusPublished, query)
}

// FindVideoByID fetches a single video regardless of status.
func (s *Store) FindVideoByID(ctx context.Context, id string) (models.Video, error) {
	const query = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1;`
	var v models.Video
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.Description, &v.Category, &v.ThumbnailURL,
		&v.VideoURL, &v.Duration, &v.Views, &v.Status, &v.Trending,
		&v.Featured, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Video{}, storage.ErrNotFound
		}
		return models.Video{}, err
	}
	return v, nil
}

func (s *Store) queryVideos(ctx context.Context, query string, args ...any) ([]models.Video, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Category,
			&v.ThumbnailURL, &v.VideoURL, &v.Duration, &v.Views, &v.Status,
			&v.Trending, &v.Featured, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// ListCommentsByVideo returns a video's comments, newest first.
func (s *Store) ListCommentsByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	const query = `SELECT id, video_id, user_id, user_name, text, created_at
	FROM comments WHERE video_id = $1 ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CreateComment inserts a comment row.
func (s *Store) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = uuid.NewString()
	const query = `INSERT INTO comments (id, video_id, user_id, user_name, text)
	VALUES ($1, $2, $3, $4, $5) RETURNING created_at;`
	err := s.pool.QueryRow(ctx, query, comment.ID, comment.VideoID,
		comment.UserID, comment.UserName, comment.Text).Scan(&comment.CreatedAt)
	if err != nil {
		return models.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}
