package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

const zoneFile = ";; Zone file for example.com\nexample.com.\t300\tIN\tA\t192.0.2.10\n"

func TestExportZone(t *testing.T) {
	t.Run("returns the raw zone text", func(t *testing.T) {
		var path string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			fmt.Fprint(w, zoneFile)
		})

		text, err := client.ExportZone(context.Background(), "zone-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/zones/zone-1/dns_records/export" {
			t.Errorf("unexpected path %q", path)
		}
		if text != zoneFile {
			t.Errorf("expected the blob untouched, got %q", text)
		}
	})

	t.Run("export of an unchanged zone is byte-identical", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, zoneFile)
		})

		first, err := client.ExportZone(context.Background(), "zone-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := client.ExportZone(context.Background(), "zone-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("expected byte-identical exports")
		}
	})

	t.Run("HTTP failure carries the status code", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.ExportZone(context.Background(), "zone-1")
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected *HTTPError, got %v", err)
		}
		if httpErr.StatusCode != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d", httpErr.StatusCode)
		}
	})
}
