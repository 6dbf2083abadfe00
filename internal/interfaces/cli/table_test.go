package cli

import (
	"strings"
	"testing"

	"github.com/lite-lake/cfman/internal/domain/entity"
)

func TestRenderRecordsTable(t *testing.T) {
	t.Run("empty set has a friendly message", func(t *testing.T) {
		if got := renderRecordsTable(nil); got != "No DNS records found." {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("rows carry hostname, type and destination", func(t *testing.T) {
		priority := 10
		out := renderRecordsTable([]entity.Record{
			{Type: "A", Name: "api.example.com", Content: "192.0.2.10"},
			{Type: "MX", Name: "example.com", Content: "mail.example.com", Priority: &priority},
		})
		for _, want := range []string{"HOSTNAME", "api.example.com", "192.0.2.10", "10 mail.example.com"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("long destinations are truncated", func(t *testing.T) {
		long := strings.Repeat("v=DKIM1;", 20)
		out := renderRecordsTable([]entity.Record{
			{Type: "TXT", Name: "mail._domainkey.example.com", Content: long},
		})
		if strings.Contains(out, long) {
			t.Error("expected the destination to be truncated")
		}
		if !strings.Contains(out, "...") {
			t.Error("expected an ellipsis marker")
		}
	})
}

func TestRenderZonesTable(t *testing.T) {
	t.Run("empty set has a friendly message", func(t *testing.T) {
		if got := renderZonesTable(nil); got != "No DNS zones found." {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("status is title-cased", func(t *testing.T) {
		out := renderZonesTable([]entity.Zone{
			{ID: "z1", Name: "example.com", Status: "active"},
		})
		for _, want := range []string{"example.com", "z1", "Active"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})
}

func TestShorten(t *testing.T) {
	if got := shorten("short", 80); got != "short" {
		t.Errorf("expected unchanged value, got %q", got)
	}
	long := strings.Repeat("x", 100)
	got := shorten(long, 80)
	if len(got) != 80 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 80 chars ending in '...', got %d (%q)", len(got), got)
	}
}
