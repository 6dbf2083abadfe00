package cloudflare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/domain/entity"
)

func TestFindRecordByName(t *testing.T) {
	t.Run("exact match wins over a near miss", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":true,"result":[
				{"id":"r1","type":"A","name":"api.example.com","content":"192.0.2.10"},
				{"id":"r2","type":"A","name":"api2.example.com","content":"192.0.2.11"}
			]}`)
		})

		record, err := client.FindRecordByName(context.Background(), "zone-1", "api.example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID != "r1" {
			t.Errorf("expected record r1, got %+v", record)
		}
	})

	t.Run("two exact matches are ambiguous", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":true,"result":[
				{"id":"r1","type":"A","name":"api.example.com","content":"192.0.2.10"},
				{"id":"r2","type":"AAAA","name":"api.example.com","content":"2001:db8::1"}
			]}`)
		})

		record, err := client.FindRecordByName(context.Background(), "zone-1", "api.example.com")
		var ambiguous *AmbiguousMatchError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("expected *AmbiguousMatchError, got %v", err)
		}
		if ambiguous.Count != 2 {
			t.Errorf("expected count 2, got %d", ambiguous.Count)
		}
		if !errors.Is(err, domain.ErrAmbiguousRecord) {
			t.Errorf("expected ErrAmbiguousRecord in chain, got %v", err)
		}
		if record != nil {
			t.Errorf("no record must be returned on ambiguity, got %+v", record)
		}
	})

	t.Run("no exact match is not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":true,"result":[
				{"id":"r2","type":"A","name":"api2.example.com","content":"192.0.2.11"}
			]}`)
		})

		_, err := client.FindRecordByName(context.Background(), "zone-1", "api.example.com")
		if !errors.Is(err, domain.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("server-side name filter is applied", func(t *testing.T) {
		var name string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			name = r.URL.Query().Get("name")
			fmt.Fprint(w, `{"success":true,"result":[{"id":"r1","type":"A","name":"api.example.com","content":"192.0.2.10"}]}`)
		})

		if _, err := client.FindRecordByName(context.Background(), "zone-1", "api.example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "api.example.com" {
			t.Errorf("expected name filter, got %q", name)
		}
	})
}

func TestCreateRecord(t *testing.T) {
	t.Run("posts the fixed payload and returns the envelope", func(t *testing.T) {
		var method, path string
		var payload createPayload
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decoding payload: %v", err)
			}
			fmt.Fprint(w, `{"success":true,"result":{"id":"rec-123","type":"A","name":"host.example.com","content":"192.168.1.10"}}`)
		})

		env, err := client.CreateRecord(context.Background(), "zone-1", entity.Record{
			Type:    "A",
			Name:    "host.example.com",
			Content: "192.168.1.10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodPost || path != "/zones/zone-1/dns_records" {
			t.Errorf("expected POST /zones/zone-1/dns_records, got %s %s", method, path)
		}
		if payload.TTL != 300 {
			t.Errorf("expected fixed TTL 300, got %d", payload.TTL)
		}
		if payload.Proxied {
			t.Error("proxying must be disabled by default")
		}
		if payload.Type != "A" || payload.Name != "host.example.com" || payload.Content != "192.168.1.10" {
			t.Errorf("unexpected payload %+v", payload)
		}
		if !env.Success {
			t.Error("expected success envelope")
		}
	})

	t.Run("2xx without a result ID is an API-logical failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":true,"result":{}}`)
		})

		_, err := client.CreateRecord(context.Background(), "zone-1", entity.Record{
			Type: "A", Name: "host.example.com", Content: "192.168.1.10",
		})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
	})

	t.Run("MX priority is passed through opaquely", func(t *testing.T) {
		var payload createPayload
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&payload)
			fmt.Fprint(w, `{"success":true,"result":{"id":"rec-mx"}}`)
		})

		priority := 10
		_, err := client.CreateRecord(context.Background(), "zone-1", entity.Record{
			Type: "MX", Name: "example.com", Content: "mail.example.com", Priority: &priority,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.Priority == nil || *payload.Priority != 10 {
			t.Errorf("expected priority 10, got %v", payload.Priority)
		}
	})
}

func TestDeleteRecord(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		fmt.Fprint(w, `{"success":true,"result":{"id":"rec-123"}}`)
	})

	env, err := client.DeleteRecord(context.Background(), "zone-1", "rec-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodDelete || path != "/zones/zone-1/dns_records/rec-123" {
		t.Errorf("expected DELETE /zones/zone-1/dns_records/rec-123, got %s %s", method, path)
	}
	if !env.Success {
		t.Error("expected success envelope")
	}
}
