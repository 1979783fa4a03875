package processing

import (
	"context"
	"fmt"

	"yt_view_stats/internal/sheets"
	"yt_view_stats/internal/youtube"

	"github.com/rs/zerolog/log"
)

// RowAppender appends rows below the table in a range.
type RowAppender interface {
	AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) (int, error)
}

// RecordRow is the output row for a record: title, view count, date.
func RecordRow(r youtube.StatRecord) []interface{} {
	return []interface{}{r.Title, r.ViewCount, r.Date}
}

// WriteRecords appends one row per record to the output range and returns the
// number of rows written. Existing rows are never touched.
func WriteRecords(ctx context.Context, appender RowAppender, spreadsheetID, outputSheet string, records []youtube.StatRecord) (int, error) {
	if len(records) == 0 {
		log.Debug().Msg("No records to write, skipping sheet update")
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, RecordRow(r))
	}

	writeRange := sheets.OutputRange(outputSheet)
	log.Debug().
		Str("range", writeRange).
		Int("rows", len(rows)).
		Msg("Appending rows")

	appended, err := appender.AppendRows(ctx, spreadsheetID, writeRange, rows)
	if err != nil {
		return 0, fmt.Errorf("failed to write output range %s: %w", writeRange, err)
	}
	return appended, nil
}
