package processing

import (
	"context"
	"fmt"

	"yt_view_stats/internal/youtube"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// StatsFetcher looks up statistics for a single identifier. A nil record with
// a nil error means the identifier has no match.
type StatsFetcher interface {
	FetchStats(ctx context.Context, videoID string) (*youtube.StatRecord, error)
}

// FailureMode selects how FetchAll treats a failed lookup.
type FailureMode int

const (
	// FailAll fails the whole batch when any lookup fails.
	FailAll FailureMode = iota
	// Isolate records the failure on its result and keeps the rest of the batch.
	Isolate
)

func (m FailureMode) String() string {
	switch m {
	case FailAll:
		return "fail-all"
	case Isolate:
		return "isolate"
	default:
		return fmt.Sprintf("FailureMode(%d)", int(m))
	}
}

// ParseFailureMode maps a config value to a FailureMode. Empty means FailAll.
func ParseFailureMode(s string) (FailureMode, error) {
	switch s {
	case "", "fail-all":
		return FailAll, nil
	case "isolate":
		return Isolate, nil
	default:
		return FailAll, fmt.Errorf("unknown fetch failure mode %q", s)
	}
}

// FetchResult is the outcome of one lookup. Record and Err are both nil when
// the identifier has no match.
type FetchResult struct {
	ID     string
	Record *youtube.StatRecord
	Err    error
}

// FetchAll looks up every identifier concurrently and returns results in the
// order of ids. All lookups run to completion; none is cancelled when another
// fails. In FailAll mode the first error is returned once they have finished.
func FetchAll(ctx context.Context, fetcher StatsFetcher, ids []string, mode FailureMode) ([]FetchResult, error) {
	log.Debug().
		Int("identifiers", len(ids)).
		Stringer("mode", mode).
		Msg("Fetching video stats")

	results := make([]FetchResult, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			record, err := fetcher.FetchStats(ctx, id)
			results[i] = FetchResult{ID: id, Record: record, Err: err}
			if err != nil && mode == FailAll {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Err != nil {
			log.Warn().Err(r.Err).Str("video_id", r.ID).Msg("Skipping video after failed lookup")
		}
	}

	return results, nil
}

// ValidRecords keeps the results that produced a record, preserving order.
func ValidRecords(results []FetchResult) []youtube.StatRecord {
	var records []youtube.StatRecord
	for _, r := range results {
		if r.Err == nil && r.Record != nil {
			records = append(records, *r.Record)
		}
	}
	return records
}
