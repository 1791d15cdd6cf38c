package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunflix/backend/internal/models"
)

func TestVideoListingsServePublishedOnly(t *testing.T) {
	store, _, handler := newTestServer(t)

	store.AddVideo(models.Video{Title: "Draft cut", Status: models.VideoStatusDraft, Trending: true, Featured: true})
	live := store.AddVideo(models.Video{Title: "Sunrise", Category: "nature", Status: models.VideoStatusPublished, Trending: true})
	store.AddVideo(models.Video{Title: "City night", Category: "city", Status: models.VideoStatusPublished, Featured: true})

	rec := doJSON(t, handler, http.MethodGet, "/api/videos", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var videos []models.Video
	decodeBody(t, rec, &videos)
	assert.Len(t, videos, 2)

	rec = doJSON(t, handler, http.MethodGet, "/api/videos?category=nature", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &videos)
	require.Len(t, videos, 1)
	assert.Equal(t, live.ID, videos[0].ID)

	rec = doJSON(t, handler, http.MethodGet, "/api/videos/trending/list", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &videos)
	require.Len(t, videos, 1)
	assert.Equal(t, "Sunrise", videos[0].Title)

	rec = doJSON(t, handler, http.MethodGet, "/api/videos/featured/list", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &videos)
	require.Len(t, videos, 1)
	assert.Equal(t, "City night", videos[0].Title)
}

func TestVideoSearch(t *testing.T) {
	store, _, handler := newTestServer(t)

	store.AddVideo(models.Video{Title: "Ocean Deep", Description: "documentary", Status: models.VideoStatusPublished})
	store.AddVideo(models.Video{Title: "Mountains", Description: "the deep valleys", Status: models.VideoStatusPublished})
	store.AddVideo(models.Video{Title: "Deep Space", Status: models.VideoStatusDraft})

	rec := doJSON(t, handler, http.MethodGet, "/api/videos/search?q=DEEP", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var videos []models.Video
	decodeBody(t, rec, &videos)
	assert.Len(t, videos, 2, "matches title and description, case-insensitively, published only")

	// No query is an empty result, not an error.
	rec = doJSON(t, handler, http.MethodGet, "/api/videos/search", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestVideoGet(t *testing.T) {
	store, _, handler := newTestServer(t)

	draft := store.AddVideo(models.Video{Title: "Draft cut", Status: models.VideoStatusDraft})

	// Direct fetch works regardless of status.
	rec := doJSON(t, handler, http.MethodGet, "/api/videos/"+draft.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/videos/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", errorMessage(t, rec))
}
