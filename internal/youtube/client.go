package youtube

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DateLayout is the YYYY-MM-DD layout written to the date column.
const DateLayout = "2006-01-02"

var ErrIncompleteItem = errors.New("video item is missing snippet or statistics")

// StatRecord is one observation of a video's view count.
type StatRecord struct {
	Title     string
	ViewCount uint64
	Date      string
}

type Client struct {
	service      *youtube.Service
	location     *time.Location
	now          func() time.Time
	apiCallCount int64
	apiCallMutex sync.Mutex
}

// NewClient creates a statistics client. Dates are stamped in loc, or the
// local zone when loc is nil.
func NewClient(ctx context.Context, loc *time.Location, opts ...option.ClientOption) (*Client, error) {
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}

	return &Client{
		service:  service,
		location: loc,
		now:      time.Now,
	}, nil
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// FetchStats looks up title and view count for videoID. It returns a nil
// record and nil error when the service knows no such video.
//
// The date is read from the clock on every call, so records fetched around
// midnight may carry different dates.
func (c *Client) FetchStats(ctx context.Context, videoID string) (*StatRecord, error) {
	c.IncrementAPICall()

	resp, err := c.service.Videos.List([]string{"statistics", "snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats for video %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		log.Debug().Str("video_id", videoID).Msg("No matching video")
		return nil, nil
	}

	video := resp.Items[0]
	if video.Snippet == nil || video.Statistics == nil {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrIncompleteItem)
	}

	record := &StatRecord{
		Title:     video.Snippet.Title,
		ViewCount: video.Statistics.ViewCount,
		Date:      c.now().In(c.location).Format(DateLayout),
	}

	log.Debug().
		Str("video_id", videoID).
		Str("title", record.Title).
		Uint64("view_count", record.ViewCount).
		Msg("Retrieved video stats")

	return record, nil
}
