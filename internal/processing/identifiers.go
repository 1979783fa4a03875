package processing

import (
	"context"
	"fmt"

	"yt_view_stats/internal/sheets"
	"yt_view_stats/internal/videoid"

	"github.com/rs/zerolog/log"
)

// RangeReader reads a block of cell values.
type RangeReader interface {
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)
}

// ReadIdentifiers reads the input column and parses one identifier per row,
// in sheet order. A row that is empty or does not hold a recognizable video
// reference fails the whole read.
func ReadIdentifiers(ctx context.Context, reader RangeReader, spreadsheetID, inputSheet string) ([]string, error) {
	readRange := sheets.InputRange(inputSheet)
	log.Debug().Str("range", readRange).Msg("Reading input identifiers")

	rows, err := reader.ReadSheet(ctx, spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read input range %s: %w", readRange, err)
	}

	ids := make([]string, 0, len(rows))
	for i, row := range rows {
		// The range starts at row 2.
		rowNum := i + 2
		parsed, err := videoid.Parse(sheets.CellString(row, 0))
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", rowNum, err)
		}

		log.Debug().
			Int("row", rowNum).
			Str("video_id", parsed.ID).
			Stringer("shape", parsed.Shape).
			Msg("Parsed identifier")
		ids = append(ids, parsed.ID)
	}

	log.Debug().Int("identifiers", len(ids)).Msg("Finished reading identifiers")
	return ids, nil
}
