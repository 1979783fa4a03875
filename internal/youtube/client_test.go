package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, loc *time.Location, body string, status int) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.ElementsMatch(t, []string{"statistics", "snippet"}, r.URL.Query()["part"])
		assert.Equal(t, "a1", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), loc,
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	client.now = func() time.Time {
		return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	}
	return client
}

func TestFetchStats(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		client := newTestClient(t, time.UTC,
			`{"items":[{"id":"a1","snippet":{"title":"First video"},"statistics":{"viewCount":"15423"}}]}`,
			http.StatusOK)

		record, err := client.FetchStats(context.Background(), "a1")

		require.NoError(t, err)
		assert.Equal(t, &StatRecord{Title: "First video", ViewCount: 15423, Date: "2026-10-16"}, record)
		assert.Equal(t, int64(1), client.GetAPICallCount())
	})

	t.Run("no match", func(t *testing.T) {
		client := newTestClient(t, time.UTC, `{"items":[]}`, http.StatusOK)

		record, err := client.FetchStats(context.Background(), "a1")

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("date follows configured zone", func(t *testing.T) {
		// 12:00 UTC is already the next day at UTC+14.
		client := newTestClient(t, time.FixedZone("UTC+14", 14*60*60),
			`{"items":[{"id":"a1","snippet":{"title":"T"},"statistics":{"viewCount":"1"}}]}`,
			http.StatusOK)

		record, err := client.FetchStats(context.Background(), "a1")

		require.NoError(t, err)
		assert.Equal(t, "2026-10-17", record.Date)
	})

	t.Run("non-numeric view count", func(t *testing.T) {
		client := newTestClient(t, time.UTC,
			`{"items":[{"id":"a1","snippet":{"title":"T"},"statistics":{"viewCount":"lots"}}]}`,
			http.StatusOK)

		record, err := client.FetchStats(context.Background(), "a1")

		assert.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("missing statistics", func(t *testing.T) {
		client := newTestClient(t, time.UTC, `{"items":[{"id":"a1","snippet":{"title":"T"}}]}`, http.StatusOK)

		record, err := client.FetchStats(context.Background(), "a1")

		assert.True(t, errors.Is(err, ErrIncompleteItem))
		assert.Nil(t, record)
	})

	t.Run("service error", func(t *testing.T) {
		client := newTestClient(t, time.UTC,
			`{"error":{"code":403,"message":"quotaExceeded"}}`,
			http.StatusForbidden)

		record, err := client.FetchStats(context.Background(), "a1")

		assert.ErrorContains(t, err, "failed to fetch stats for video a1")
		assert.Nil(t, record)
	})
}
