package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings in a granular way, masking the credential
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: transport", "value", s.Transport)
	if s.Transport == "sse" {
		logger.InfoContext(ctx, "Config: host", "value", s.Host)
		logger.InfoContext(ctx, "Config: port", "value", s.Port)
	}

	logger.InfoContext(ctx, "Config: auth.type", "value", s.Auth.Type)
	switch s.Auth.Type {
	case AuthTypeBasic:
		logger.InfoContext(ctx, "Config: auth.basic.username", "value", s.Auth.Basic.Username)
		logger.InfoContext(ctx, "Config: auth.basic.password", "value", "****")
	case AuthTypeAPIKey:
		logger.InfoContext(ctx, "Config: auth.api_keys", "count", len(s.Auth.APIKeys))
	}

	logger.InfoContext(ctx, "Config: github.repository", "value", s.GitHub.Owner+"/"+s.GitHub.Repo)
	logger.InfoContext(ctx, "Config: github.token", "value", MaskToken(s.GitHub.Token))
	logger.InfoContext(ctx, "Config: github.probe_extension", "value", s.GitHub.ProbeExtension)
}

// MaskToken hides a credential, keeping a short prefix so operators can
// tell which token is in use.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****"
}

// GitHubSettingsLogValue returns a slog.Value for GitHubSettings with the
// token masked
func GitHubSettingsLogValue(s GitHubSettings) slog.Value {
	return slog.GroupValue(
		slog.String("owner", s.Owner),
		slog.String("repo", s.Repo),
		slog.String("token", MaskToken(s.Token)),
		slog.String("probe_extension", s.ProbeExtension),
	)
}

// AuthSettingsLogValue returns a slog.Value for AuthSettings with masked data
func AuthSettingsLogValue(s AuthSettings) slog.Value {
	keys := make([]string, len(s.APIKeys))
	for i := range s.APIKeys {
		keys[i] = "****"
	}
	return slog.GroupValue(
		slog.String("type", s.Type),
		slog.String("basic_username", s.Basic.Username),
		slog.Any("api_keys", keys),
	)
}
