package main

import (
	"context"
	"fmt"

	"yt_view_stats/internal/app"
	"yt_view_stats/internal/notifications"
	"yt_view_stats/internal/processing"

	"github.com/rs/zerolog/log"
)

func main() {
	setupEnvironment()
	log.Debug().Msg("Starting application")

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()
	notifier := app.InitializeNotificationClient(cfg)

	sheetsClient, youtubeClient, err := app.InitializeClients(ctx, cfg)
	if err != nil {
		notifier.NotifyRunFailed(ctx, err)
		log.Fatal().Err(err).Msg("Failed to create clients")
	}

	deps := processing.Deps{
		Reader:   sheetsClient,
		Appender: sheetsClient,
		Fetcher:  youtubeClient,
	}
	opts := processing.Options{
		SpreadsheetID:   cfg.SpreadsheetID,
		InputSheetName:  cfg.InputSheetName,
		OutputSheetName: cfg.OutputSheetName,
		FailureMode:     cfg.FailureMode,
	}

	summary, err := processing.Run(ctx, deps, opts)
	if err != nil {
		notifier.NotifyRunFailed(ctx, err)
		log.Fatal().Err(err).Msg("Failed to update spreadsheet")
	}

	log.Debug().
		Int64("api_calls", youtubeClient.GetAPICallCount()).
		Msg("API call summary")

	notifier.NotifyRunComplete(ctx, notifications.RunInfo{
		SpreadsheetID: cfg.SpreadsheetID,
		Identifiers:   summary.Identifiers,
		Appended:      summary.Appended,
		NoMatch:       summary.NoMatch,
		Failed:        summary.Failed,
	})

	fmt.Println("Spreadsheet updated successfully!")
}
