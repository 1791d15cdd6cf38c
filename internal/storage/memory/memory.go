// Package memory provides an in-memory storage.Store used in tests. It
// mirrors the Postgres implementation's semantics, including the unique
// email constraint and newest-first listing order.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store holds all records behind a single mutex.
type Store struct {
	mu       sync.Mutex
	users    []models.User
	videos   []models.Video
	ads      []models.Ad
	messages []models.Message
	comments []models.Comment
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// CreateUser appends a user, enforcing email uniqueness.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return user, nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindAdminByEmail fetches a user by email, matching only admins.
func (s *Store) FindAdminByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && u.Role == models.RoleAdmin {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindUserByID fetches a user by identifier.
func (s *Store) FindUserByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// AddVideo seeds a video; tests use it in place of an upload pipeline.
func (s *Store) AddVideo(video models.Video) models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	s.videos = append(s.videos, video)
	return video
}

// ListVideos returns up to 50 published videos, optionally filtered by category.
func (s *Store) ListVideos(_ context.Context, category string) ([]models.Video, error) {
	return s.filterVideos(50, func(v models.Video) bool {
		return category == "" || v.Category == category
	}), nil
}

// ListTrendingVideos returns up to 10 published trending videos.
func (s *Store) ListTrendingVideos(context.Context) ([]models.Video, error) {
	return s.filterVideos(10, func(v models.Video) bool { return v.Trending }), nil
}

// ListFeaturedVideos returns up to 10 published featured videos.
func (s *Store) ListFeaturedVideos(context.Context) ([]models.Video, error) {
	return s.filterVideos(10, func(v models.Video) bool { return v.Featured }), nil
}

// SearchVideos matches case-insensitively against title and description.
func (s *Store) SearchVideos(_ context.Context, query string) ([]models.Video, error) {
	q := strings.ToLower(query)
	return s.filterVideos(20, func(v models.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q)
	}), nil
}

// FindVideoByID fetches a single video regardless of status.
func (s *Store) FindVideoByID(_ context.Context, id string) (models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Video{}, storage.ErrNotFound
}

func (s *Store) filterVideos(limit int, keep func(models.Video) bool) []models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Video{}
	// Newest first, like the Postgres ORDER BY created_at DESC.
	for i := len(s.videos) - 1; i >= 0 && len(out) < limit; i-- {
		v := s.videos[i]
		if v.Status == models.VideoStatusPublished && keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// ListActiveAds returns all active ads, newest first.
func (s *Store) ListActiveAds(context.Context) ([]models.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Ad{}
	for i := len(s.ads) - 1; i >= 0; i-- {
		if s.ads[i].Active {
			out = append(out, s.ads[i])
		}
	}
	return out, nil
}

// CreateAd appends an ad.
func (s *Store) CreateAd(_ context.Context, ad models.Ad) (models.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad.ID = uuid.NewString()
	ad.CreatedAt = time.Now()
	s.ads = append(s.ads, ad)
	return ad, nil
}

// UpdateAd applies a partial update.
func (s *Store) UpdateAd(_ context.Context, id string, upd storage.AdUpdate) (models.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.ads[i].Title = *upd.Title
		}
		if upd.ImageURL != nil {
			s.ads[i].ImageURL = *upd.ImageURL
		}
		if upd.ClickURL != nil {
			s.ads[i].ClickURL = *upd.ClickURL
		}
		if upd.Position != nil {
			s.ads[i].Position = *upd.Position
		}
		if upd.Active != nil {
			s.ads[i].Active = *upd.Active
		}
		return s.ads[i], nil
	}
	return models.Ad{}, storage.ErrNotFound
}

// DeleteAd removes an ad.
func (s *Store) DeleteAd(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID == id {
			s.ads = append(s.ads[:i], s.ads[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// AdCount reports how many ads are stored, active or not.
func (s *Store) AdCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ads)
}

// ListMessages returns all messages, newest first.
func (s *Store) ListMessages(context.Context) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, 0, len(s.messages))
	for i := len(s.messages) - 1; i >= 0; i-- {
		out = append(out, s.messages[i])
	}
	return out, nil
}

// CreateMessage appends a message.
func (s *Store) CreateMessage(_ context.Context, msg models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now()
	s.messages = append(s.messages, msg)
	return msg, nil
}

// ListCommentsByVideo returns a video's comments, newest first.
func (s *Store) ListCommentsByVideo(_ context.Context, videoID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for i := len(s.comments) - 1; i >= 0; i-- {
		if s.comments[i].VideoID == videoID {
			out = append(out, s.comments[i])
		}
	}
	return out, nil
}

// CreateComment appends a comment.
func (s *Store) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	s.comments = append(s.comments, comment)
	return comment, nil
}
