// Package storage defines the persistence interfaces handlers depend on.
// Implementations live in subpackages; handlers only ever see these
// interfaces so tests can inject a fake store.
package storage

import (
	"context"
	"errors"

	"github.com/sunflix/backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the user persistence operations the credential
// authority needs.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindAdminByEmail behaves like FindUserByEmail but only matches
	// role=admin rows; a non-admin with that email is ErrNotFound.
	FindAdminByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// VideoStore serves the public catalog. All listings return published
// videos only.
type VideoStore interface {
	ListVideos(ctx context.Context, category string) ([]models.Video, error)
	ListTrendingVideos(ctx context.Context) ([]models.Video, error)
	ListFeaturedVideos(ctx context.Context) ([]models.Video, error)
	SearchVideos(ctx context.Context, query string) ([]models.Video, error)
	FindVideoByID(ctx context.Context, id string) (models.Video, error)
}

// AdUpdate is a partial update; nil fields are left unchanged.
type AdUpdate struct {
	Title    *string
	ImageURL *string
	ClickURL *string
	Position *string
	Active   *bool
}

// AdStore manages promotional banners.
type AdStore interface {
	ListActiveAds(ctx context.Context) ([]models.Ad, error)
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	UpdateAd(ctx context.Context, id string, upd AdUpdate) (models.Ad, error)
	DeleteAd(ctx context.Context, id string) error
}

// MessageStore manages contact-form submissions. Listings are newest first.
type MessageStore interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
}

// CommentStore manages per-video comments. Listings are newest first.
type CommentStore interface {
	ListCommentsByVideo(ctx context.Context, videoID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// Store is the full persistence surface the server wires up.
type Store interface {
	UserStore
	VideoStore
	AdStore
	MessageStore
	CommentStore

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}
