package processing

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Deps are the collaborators a run talks to.
type Deps struct {
	Reader   RangeReader
	Appender RowAppender
	Fetcher  StatsFetcher
}

// Options locate the input and output ranges and pick the failure mode.
type Options struct {
	SpreadsheetID   string
	InputSheetName  string
	OutputSheetName string
	FailureMode     FailureMode
}

// Summary counts what a run did.
type Summary struct {
	Identifiers int
	Records     int
	NoMatch     int
	Failed      int
	Appended    int
}

// Run performs one pass: read identifiers, fetch stats, append the records
// that matched. Nothing is written unless every earlier stage succeeded.
func Run(ctx context.Context, deps Deps, opts Options) (Summary, error) {
	var summary Summary

	ids, err := ReadIdentifiers(ctx, deps.Reader, opts.SpreadsheetID, opts.InputSheetName)
	if err != nil {
		return summary, err
	}
	summary.Identifiers = len(ids)

	results, err := FetchAll(ctx, deps.Fetcher, ids, opts.FailureMode)
	if err != nil {
		return summary, err
	}
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Record == nil:
			summary.NoMatch++
		}
	}

	records := ValidRecords(results)
	summary.Records = len(records)

	summary.Appended, err = WriteRecords(ctx, deps.Appender, opts.SpreadsheetID, opts.OutputSheetName, records)
	if err != nil {
		return summary, err
	}

	log.Info().
		Int("identifiers", summary.Identifiers).
		Int("records", summary.Records).
		Int("no_match", summary.NoMatch).
		Int("failed", summary.Failed).
		Int("appended", summary.Appended).
		Msg("Run complete")

	return summary, nil
}
