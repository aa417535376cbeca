package config_test

import (
	"testing"

	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "kef_test")
	t.Setenv("STORAGE_BACKEND", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "kef-test-project")
	t.Setenv("SENDGRID_FROM", "hello@keralaeconomicforum.org")
	t.Setenv("SERVER_PORT", "9090")

	cfg := config.Load()

	assert.Equal(t, "kef_test", cfg.Database.Name)
	assert.Equal(t, config.BackendFirestore, cfg.Storage.Backend)
	assert.Equal(t, "kef-test-project", cfg.Firebase.ProjectID)
	assert.Equal(t, "hello@keralaeconomicforum.org", cfg.Sendgrid.From)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadEmptyValueCountsAsSet(t *testing.T) {
	// An explicitly empty variable is honored; only absent ones fall back.
	t.Setenv("STORAGE_BACKEND", "")

	cfg := config.Load()
	assert.Equal(t, config.Backend(""), cfg.Storage.Backend)
}

func TestLoadSMTPSettings(t *testing.T) {
	t.Run("absent host leaves SMTP unconfigured", func(t *testing.T) {
		cfg := config.Load()
		assert.Empty(t, cfg.SMTP)
	})

	t.Run("host enables the smtp provider", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "mail.keralaeconomicforum.org")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("SMTP_USERNAME", "mailer")
		t.Setenv("SMTP_PASSWORD", "hunter2")

		cfg := config.Load()
		smtp, ok := cfg.SMTP["smtp"]
		assert.True(t, ok)
		assert.Equal(t, "mail.keralaeconomicforum.org", smtp.Host)
		assert.Equal(t, 2525, smtp.Port)
		assert.Equal(t, "mailer", smtp.Username)
		assert.Equal(t, "hunter2", smtp.Password)
		assert.Equal(t, cfg.Sendgrid.From, smtp.From)
	})

	t.Run("an unusable port falls back to 587", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "mail.keralaeconomicforum.org")
		t.Setenv("SMTP_PORT", "not-a-port")

		cfg := config.Load()
		assert.Equal(t, 587, cfg.SMTP["smtp"].Port)
	})
}

func TestLoadAlwaysPopulatesServerSettings(t *testing.T) {
	cfg := config.Load()
	assert.NotEmpty(t, cfg.Server.Port)
	assert.NotZero(t, cfg.Server.ReadTimeout)
	assert.NotZero(t, cfg.Server.WriteTimeout)
	assert.NotEmpty(t, cfg.BaseURL)
}
