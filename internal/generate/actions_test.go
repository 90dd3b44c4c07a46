package generate

import (
	"testing"

	"github.com/dtnitsch/contentgen/internal/common"
	"github.com/dtnitsch/contentgen/models"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		raw     string
		want    models.Intent
		wantErr bool
	}{
		{"", "", false},
		{"auto", "", false},
		{"AUTO", "", false},
		{"informational", models.IntentInformational, false},
		{" Commercial ", models.IntentCommercial, false},
		{"transactional", models.IntentTransactional, false},
		{"navigational", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseIntent(tt.raw)
			if tt.wantErr {
				if err == nil || common.ExitCode(err) != 1 {
					t.Errorf("expected user error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseIntent(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
