package domain

import "testing"

func TestValidSearchMode(t *testing.T) {
	for _, mode := range []string{"filename", "path", "content", "all"} {
		if !ValidSearchMode(mode) {
			t.Errorf("Expected %q to be a valid search mode", mode)
		}
	}
	for _, mode := range []string{"", "everywhere", "FILENAME", "files"} {
		if ValidSearchMode(mode) {
			t.Errorf("Expected %q to be rejected", mode)
		}
	}
}

func TestMatchReason_IconAndLabel(t *testing.T) {
	tests := []struct {
		reason MatchReason
		icon   string
		label  string
	}{
		{MatchReasonFilename, "📝", "filename match"},
		{MatchReasonPath, "📁", "path match"},
		{MatchReasonContent, "📄", "content match"},
	}

	for _, tt := range tests {
		if got := tt.reason.Icon(); got != tt.icon {
			t.Errorf("%s.Icon() = %q, want %q", tt.reason, got, tt.icon)
		}
		if got := tt.reason.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.reason, got, tt.label)
		}
	}
}
