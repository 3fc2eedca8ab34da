package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Auth type constants
const (
	AuthTypeNone   = "none"
	AuthTypeBasic  = "basic"
	AuthTypeAPIKey = "apikey"
)

// AuthSettings configuration for authentication on the SSE transport
type AuthSettings struct {
	Type    string            `mapstructure:"type"` // AuthTypeNone, AuthTypeBasic, or AuthTypeAPIKey
	Basic   BasicAuthSettings `mapstructure:"basic"`
	APIKeys []string          `mapstructure:"api_keys"`
}

// BasicAuthSettings configuration for basic auth
type BasicAuthSettings struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// GitHubSettings identifies the single repository this server fronts and
// the credential used to reach it. Token, Owner and Repo are all required;
// the process must not start without them.
type GitHubSettings struct {
	Token string `mapstructure:"token"`
	Owner string `mapstructure:"owner"`
	Repo  string `mapstructure:"repo"`

	// ProbeExtension is the file-extension filter used by the diagnostics
	// baseline search. Defaults to markdown.
	ProbeExtension string `mapstructure:"probe_extension"`
}

// Settings application settings
type Settings struct {
	Transport string         `mapstructure:"transport"`
	Host      string         `mapstructure:"host"`
	Port      int            `mapstructure:"port"`
	Auth      AuthSettings   `mapstructure:"auth"`
	GitHub    GitHubSettings `mapstructure:"github"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("transport", "stdio")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("auth.type", AuthTypeNone)
	v.SetDefault("github.probe_extension", "md")

	// Environment variables
	v.SetEnvPrefix("REPO_SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("auth.type", "REPO_SCOUT_AUTH_TYPE")
	_ = v.BindEnv("auth.basic.username", "REPO_SCOUT_AUTH_BASIC_USERNAME")
	_ = v.BindEnv("auth.basic.password", "REPO_SCOUT_AUTH_BASIC_PASSWORD")
	_ = v.BindEnv("auth.api_keys", "REPO_SCOUT_AUTH_API_KEYS")

	_ = v.BindEnv("github.token", "REPO_SCOUT_GITHUB_TOKEN")
	_ = v.BindEnv("github.owner", "REPO_SCOUT_GITHUB_OWNER")
	_ = v.BindEnv("github.repo", "REPO_SCOUT_GITHUB_REPO")
	_ = v.BindEnv("github.probe_extension", "REPO_SCOUT_GITHUB_PROBE_EXTENSION")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("transport", flags.Lookup("transport"))
		_ = v.BindPFlag("host", flags.Lookup("host"))
		_ = v.BindPFlag("port", flags.Lookup("port"))
		_ = v.BindPFlag("auth.type", flags.Lookup("auth-type"))
		_ = v.BindPFlag("auth.basic.username", flags.Lookup("auth-basic-username"))
		_ = v.BindPFlag("auth.basic.password", flags.Lookup("auth-basic-password"))
		_ = v.BindPFlag("auth.api_keys", flags.Lookup("auth-api-keys"))

		_ = v.BindPFlag("github.token", flags.Lookup("github-token"))
		_ = v.BindPFlag("github.owner", flags.Lookup("github-owner"))
		_ = v.BindPFlag("github.repo", flags.Lookup("github-repo"))
		_ = v.BindPFlag("github.probe_extension", flags.Lookup("probe-extension"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	// API keys may arrive as a single comma-separated env var value
	if len(settings.Auth.APIKeys) == 1 && strings.Contains(settings.Auth.APIKeys[0], ",") {
		settings.Auth.APIKeys = strings.Split(settings.Auth.APIKeys[0], ",")
	}
	for i := range settings.Auth.APIKeys {
		settings.Auth.APIKeys[i] = strings.TrimSpace(settings.Auth.APIKeys[i])
	}

	// Normalize the probe extension the way the search qualifier expects
	// it: no leading dot
	settings.GitHub.ProbeExtension = strings.TrimPrefix(strings.TrimSpace(settings.GitHub.ProbeExtension), ".")

	return &settings, nil
}

// ValidateSettings checks for missing required values and conflicting
// configurations. A repository identity error here is fatal at startup:
// no tool is ever registered without a complete identity.
func ValidateSettings(s *Settings) error {
	// Validate transport type
	switch s.Transport {
	case "stdio", "sse":
		// valid
	default:
		return errors.New("transport must be 'stdio' or 'sse', got: " + s.Transport)
	}

	hasBasicCreds := s.Auth.Basic.Username != "" || s.Auth.Basic.Password != ""
	hasAPIKeys := len(s.Auth.APIKeys) > 0

	switch s.Auth.Type {
	case AuthTypeNone, "":
		if hasBasicCreds || hasAPIKeys {
			return errors.New("auth-type 'none' is incompatible with auth credentials")
		}
	case AuthTypeBasic:
		if hasAPIKeys {
			return errors.New("auth-type 'basic' is mutually exclusive with auth-api-keys")
		}
		if s.Auth.Basic.Username == "" || s.Auth.Basic.Password == "" {
			return errors.New("auth-type 'basic' requires both username and password")
		}
	case AuthTypeAPIKey:
		if hasBasicCreds {
			return errors.New("auth-type 'apikey' is mutually exclusive with basic auth credentials")
		}
		if !hasAPIKeys {
			return errors.New("auth-type 'apikey' requires at least one API key")
		}
	default:
		return errors.New("unknown auth-type: " + s.Auth.Type)
	}

	return validateGitHubSettings(&s.GitHub)
}

// validateGitHubSettings validates the repository identity configuration
func validateGitHubSettings(g *GitHubSettings) error {
	if g.Token == "" {
		return errors.New("github token is required (REPO_SCOUT_GITHUB_TOKEN)")
	}
	if g.Owner == "" {
		return errors.New("github owner is required (REPO_SCOUT_GITHUB_OWNER)")
	}
	if g.Repo == "" {
		return errors.New("github repo is required (REPO_SCOUT_GITHUB_REPO)")
	}
	if g.ProbeExtension == "" {
		return errors.New("probe-extension cannot be empty")
	}
	return nil
}
