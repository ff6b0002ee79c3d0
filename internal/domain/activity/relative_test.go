package activity

import (
	"testing"
	"time"
)

func TestFormatRelative(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{119 * time.Second, "1 minute ago"},
		{2 * time.Minute, "2 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{90 * time.Minute, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{23*time.Hour + 59*time.Minute, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{47 * time.Hour, "1 day ago"},
		{48 * time.Hour, "2 days ago"},
		{7 * 24 * time.Hour, "7 days ago"},
	}

	for _, tc := range cases {
		if got := FormatRelative(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("FormatRelative(-%s) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestFormatRelative_FutureAndZero(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatRelative(now.Add(5*time.Hour), now); got != "just now" {
		t.Fatalf("expected future timestamp to render as just now, got %q", got)
	}
	if got := FormatRelative(time.Time{}, now); got != EmptyLabel {
		t.Fatalf("expected %q for zero timestamp, got %q", EmptyLabel, got)
	}
}

func TestTypeIcon(t *testing.T) {
	cases := map[Type]string{
		TypeIssued:    "📜",
		TypeRenewed:   "🔄",
		TypeSuspended: "⏸️",
		TypeExpired:   "❌",
		Type("other"): "❌",
	}
	for typ, want := range cases {
		if got := typ.Icon(); got != want {
			t.Fatalf("Icon(%q) = %q, want %q", typ, got, want)
		}
	}
	if Type("other").Valid() {
		t.Fatalf("unexpected valid type")
	}
	for _, typ := range AllTypes() {
		if !typ.Valid() {
			t.Fatalf("expected %q to be valid", typ)
		}
	}
}
