package version

import (
	"strings"
	"testing"
)

func TestGetShortVersionString(t *testing.T) {
	oldVersion, oldDate := Version, BuildDate
	t.Cleanup(func() { Version, BuildDate = oldVersion, oldDate })

	tests := []struct {
		version  string
		date     string
		wantLink string
		wantDate string
	}{
		{"1.2.3", "2024-05-01T10:00:00Z", "/releases/tag/v1.2.3", "(2024-05-01)"},
		{"v0.4.0-rc.1", "unknown", "/releases/tag/v0.4.0-rc.1", "(unknown)"},
		{"dev", "2024-05-01", "", "(2024-05-01)"},
	}
	for _, tt := range tests {
		Version, BuildDate = tt.version, tt.date
		got := GetShortVersionString()
		if !strings.Contains(got, tt.wantDate) {
			t.Errorf("version %q: %q does not contain %q", tt.version, got, tt.wantDate)
		}
		hasLink := strings.Contains(got, "/releases/tag/")
		if tt.wantLink == "" && hasLink {
			t.Errorf("version %q: unexpected release link in %q", tt.version, got)
		}
		if tt.wantLink != "" && !strings.HasSuffix(got, tt.wantLink) {
			t.Errorf("version %q: %q does not end with %q", tt.version, got, tt.wantLink)
		}
	}
}
