package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ServerAddr)
	require.Equal(t, "static", cfg.StaticDir)
	require.Equal(t, "about-me-chatbot", cfg.ResumeBotID)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, 15*time.Second, cfg.SMTP.Timeout)
	require.Empty(t, cfg.SMTP.Host)
	require.NotEmpty(t, cfg.Projects.Projects)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("PORTFOLIO_SMTP_HOST", "smtp.example.com")
	t.Setenv("PORTFOLIO_SMTP_USERNAME", "site@example.com")
	t.Setenv("PORTFOLIO_CONTACT_RECIPIENT", "me@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	require.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	require.Equal(t, "me@example.com", cfg.Contact.Recipient)
	require.Equal(t, "site@example.com", cfg.Contact.From)
}

func TestLoadRequiresRecipientWithSMTP(t *testing.T) {
	t.Setenv("PORTFOLIO_SMTP_HOST", "smtp.example.com")
	_, err := Load()
	require.ErrorContains(t, err, "PORTFOLIO_CONTACT_RECIPIENT")
}

func TestLoadProjectsEmbedded(t *testing.T) {
	list, err := LoadProjects("")
	require.NoError(t, err)

	for _, p := range list.Projects {
		require.NoError(t, p.Validate())
	}
	require.Equal(t, "mrparty", list.Projects[0].ID)
	url, ok := list.Projects[0].Link(models.LinkAppStore)
	require.True(t, ok)
	require.Contains(t, url, "apps.apple.com")
	_, ok = list.Projects[0].Link(models.LinkGitHub)
	require.False(t, ok)
	require.Equal(t, "Web Development", list.CategoryNames["web"])
}

func TestLoadProjectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: x\n    name: X\n    order: 3\n"), 0o644))

	list, err := LoadProjects(path)
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	require.Equal(t, 3, list.Projects[0].Order)

	_, err = LoadProjects(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
