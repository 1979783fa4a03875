package processing

import (
	"context"
	"errors"
	"sync"
	"time"

	"yt_view_stats/internal/youtube"
)

// fakeSheet serves a fixed input range and records appended rows.
type fakeSheet struct {
	mu        sync.Mutex
	input     [][]interface{}
	readErr   error
	appendErr error
	reads     []string
	appends   []string
	output    [][]interface{}
}

func (s *fakeSheet) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads = append(s.reads, range_)
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.input, nil
}

func (s *fakeSheet) AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appends = append(s.appends, range_)
	if s.appendErr != nil {
		return 0, s.appendErr
	}
	s.output = append(s.output, rows...)
	return len(rows), nil
}

// fakeFetcher answers from fixed maps. Ids in neither map have no match.
type fakeFetcher struct {
	mu      sync.Mutex
	records map[string]youtube.StatRecord
	errs    map[string]error
	delays  map[string]time.Duration
	calls   []string
}

var errLookup = errors.New("lookup failed")

func (f *fakeFetcher) FetchStats(ctx context.Context, videoID string) (*youtube.StatRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, videoID)
	delay := f.delays[videoID]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err, ok := f.errs[videoID]; ok {
		return nil, err
	}
	if r, ok := f.records[videoID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
