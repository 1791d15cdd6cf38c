package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

func TestCreateUserEnforcesUniqueEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@x.com", Role: models.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = s.CreateUser(ctx, models.User{Name: "Ann Again", Email: "ann@x.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestFindAdminByEmailFiltersRole(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = s.FindAdminByEmail(ctx, "ann@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	admin, err := s.CreateUser(ctx, models.User{Name: "Boss", Email: "boss@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	found, err := s.FindAdminByEmail(ctx, "boss@x.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
}

func TestVideoListingsFilterPublished(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.AddVideo(models.Video{Title: "Draft", Status: models.VideoStatusDraft, Trending: true})
	published := s.AddVideo(models.Video{Title: "Live", Status: models.VideoStatusPublished, Trending: true, Category: "docs"})

	videos, err := s.ListVideos(ctx, "")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, published.ID, videos[0].ID)

	trending, err := s.ListTrendingVideos(ctx)
	require.NoError(t, err)
	require.Len(t, trending, 1)

	byCategory, err := s.ListVideos(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, byCategory)
}

func TestUpdateAdPartial(t *testing.T) {
	s := New()
	ctx := context.Background()

	ad, err := s.CreateAd(ctx, models.Ad{Title: "Sale", ImageURL: "img", ClickURL: "url", Position: "banner", Active: true})
	require.NoError(t, err)

	active := false
	updated, err := s.UpdateAd(ctx, ad.ID, storage.AdUpdate{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "Sale", updated.Title)

	_, err = s.UpdateAd(ctx, "missing", storage.AdUpdate{})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.DeleteAd(ctx, ad.ID))
	assert.ErrorIs(t, s.DeleteAd(ctx, ad.ID), storage.ErrNotFound)
}

func TestMessagesNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateMessage(ctx, models.Message{Body: "first"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, models.Message{Body: "second"})
	require.NoError(t, err)

	msgs, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Body)
}
