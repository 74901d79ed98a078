package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"dconn.dev/portfolio/internal/models"
)

//go:embed projects.yaml
var defaultProjects []byte

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR"                  envDefault:":8080"`
	StaticDir       string        `env:"PORTFOLIO_STATIC_DIR"         envDefault:"static"`
	ProjectsFile    string        `env:"PORTFOLIO_PROJECTS_FILE"`
	ResumeBotID     string        `env:"PORTFOLIO_RESUME_BOT_ID"      envDefault:"about-me-chatbot"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT"   envDefault:"10s"`
	Debug           bool          `env:"PORTFOLIO_DEBUG"`

	Contact ContactConfig `envPrefix:"PORTFOLIO_CONTACT_"`
	SMTP    SMTPConfig    `envPrefix:"PORTFOLIO_SMTP_"`

	Projects *models.ProjectList `env:"-"`
}

// ContactConfig holds contact form addresses
type ContactConfig struct {
	Recipient string `env:"RECIPIENT"`
	From      string `env:"FROM"`
}

// SMTPConfig holds the outbound mail relay settings.
// An empty Host disables mail delivery.
type SMTPConfig struct {
	Host     string        `env:"HOST"`
	Port     int           `env:"PORT"     envDefault:"587"`
	Username string        `env:"USERNAME"`
	Password string        `env:"PASSWORD"`
	Timeout  time.Duration `env:"TIMEOUT"  envDefault:"15s"`
}

// Load reads the environment and the project catalog
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Contact.From == "" {
		cfg.Contact.From = cfg.SMTP.Username
	}
	if cfg.SMTP.Host != "" && cfg.Contact.Recipient == "" {
		return nil, errors.New("PORTFOLIO_CONTACT_RECIPIENT is required when PORTFOLIO_SMTP_HOST is set")
	}

	projects, err := LoadProjects(cfg.ProjectsFile)
	if err != nil {
		return nil, err
	}
	cfg.Projects = projects
	return &cfg, nil
}

// LoadProjects parses the catalog at path, or the embedded catalog when path is empty
func LoadProjects(path string) (*models.ProjectList, error) {
	data := defaultProjects
	name := "embedded projects.yaml"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		name = path
	}

	var projects models.ProjectList
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &projects, nil
}
