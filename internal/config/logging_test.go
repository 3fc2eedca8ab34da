package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty", "", "****"},
		{"short", "abc", "****"},
		{"exactly eight", "12345678", "****"},
		{"long", "ghp_abcdefghij", "ghp_****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.token); got != tt.want {
				t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestLogWithLogger_MasksToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Transport: "stdio",
		Auth:      AuthSettings{Type: AuthTypeNone},
		GitHub: GitHubSettings{
			Token:          "ghp_secretvalue123",
			Owner:          "acme",
			Repo:           "widgets",
			ProbeExtension: "md",
		},
	}
	LogWithLogger(s, logger)

	out := buf.String()
	if strings.Contains(out, "ghp_secretvalue123") {
		t.Error("Raw token must never be logged")
	}
	if !strings.Contains(out, "ghp_****") {
		t.Errorf("Expected masked token in log output:\n%s", out)
	}
	if !strings.Contains(out, "acme/widgets") {
		t.Errorf("Expected repository slug in log output:\n%s", out)
	}
}

func TestLogWithLogger_SSEIncludesHostPort(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Transport: "sse",
		Host:      "127.0.0.1",
		Port:      9090,
		Auth:      AuthSettings{Type: AuthTypeNone},
		GitHub:    GitHubSettings{Token: "t", Owner: "o", Repo: "r", ProbeExtension: "md"},
	}
	LogWithLogger(s, logger)

	out := buf.String()
	if !strings.Contains(out, "127.0.0.1") || !strings.Contains(out, "9090") {
		t.Errorf("Expected host and port for sse transport:\n%s", out)
	}
}

func TestGitHubSettingsLogValue(t *testing.T) {
	v := GitHubSettingsLogValue(GitHubSettings{
		Token:          "ghp_abcdefghij",
		Owner:          "acme",
		Repo:           "widgets",
		ProbeExtension: "md",
	})

	rendered := v.String()
	if strings.Contains(rendered, "ghp_abcdefghij") {
		t.Error("Raw token must not appear in log value")
	}
	if !strings.Contains(rendered, "acme") {
		t.Errorf("Expected owner in log value: %s", rendered)
	}
}

func TestAuthSettingsLogValue_MasksKeys(t *testing.T) {
	v := AuthSettingsLogValue(AuthSettings{
		Type:    AuthTypeAPIKey,
		APIKeys: []string{"topsecret1", "topsecret2"},
	})

	rendered := v.String()
	if strings.Contains(rendered, "topsecret1") {
		t.Error("Raw API keys must not appear in log value")
	}
}
