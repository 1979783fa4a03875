package app

import (
	"context"

	"yt_view_stats/internal/auth"
	"yt_view_stats/internal/notifications"
	"yt_view_stats/internal/sheets"
	"yt_view_stats/internal/youtube"

	"github.com/rs/zerolog/log"
)

// InitializeClients creates the Google Sheets and YouTube clients. Both are
// created once and shared by every stage of the run.
func InitializeClients(ctx context.Context, cfg *Config) (*sheets.Client, *youtube.Client, error) {
	log.Debug().Msg("Initializing clients")

	sheetsClient, err := sheets.NewClient(ctx, auth.ClientOptions(cfg.CredentialsFile)...)
	if err != nil {
		return nil, nil, err
	}

	youtubeClient, err := youtube.NewClient(ctx, cfg.Location, auth.YouTubeOptions(cfg.CredentialsFile, cfg.YouTubeAPIKey)...)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().Msg("Clients initialized successfully")
	return sheetsClient, youtubeClient, nil
}

// InitializeNotificationClient creates and returns the notification client
func InitializeNotificationClient(cfg *Config) *notifications.Client {
	n := cfg.Notifications

	log.Debug().
		Bool("enabled", n.Enabled).
		Str("base_url", n.URL).
		Str("topic", n.Topic).
		Msg("Initializing notification client")

	client := notifications.NewClient(n.URL, n.Topic, n.Enabled, n.Priority)

	if n.Enabled {
		log.Info().Str("topic", n.Topic).Msg("Notifications enabled")
	} else {
		log.Debug().Msg("Notifications disabled")
	}

	return client
}
