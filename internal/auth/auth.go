package auth

import (
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/youtube/v3"
)

// Scopes covers reading and writing spreadsheet values and reading video statistics.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	youtube.YoutubeForceSslScope,
}

// ClientOptions returns the credential options shared by the spreadsheet and
// statistics clients. An empty credentialsFile falls back to Application
// Default Credentials.
func ClientOptions(credentialsFile string) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(Scopes...)}
	if credentialsFile != "" {
		log.Debug().Str("credentials_file", credentialsFile).Msg("Using credentials file")
		return append(opts, option.WithCredentialsFile(credentialsFile))
	}
	log.Debug().Msg("Using application default credentials")
	return opts
}

// YouTubeOptions returns the options for the statistics client. Public video
// statistics can be read with a plain API key, in which case the shared
// credentials are not used.
func YouTubeOptions(credentialsFile, apiKey string) []option.ClientOption {
	if apiKey != "" {
		log.Debug().Msg("Using API key for YouTube statistics")
		return []option.ClientOption{option.WithAPIKey(apiKey)}
	}
	return ClientOptions(credentialsFile)
}
