package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitializeClientsMissingCredentials(t *testing.T) {
	cfg := &Config{
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
		Location:        time.UTC,
	}

	sheetsClient, youtubeClient, err := InitializeClients(context.Background(), cfg)

	assert.ErrorContains(t, err, "failed to create sheets service")
	assert.Nil(t, sheetsClient)
	assert.Nil(t, youtubeClient)
}

func TestInitializeNotificationClient(t *testing.T) {
	cfg := &Config{Notifications: defaultNotifications}

	assert.NotNil(t, InitializeNotificationClient(cfg))
}
