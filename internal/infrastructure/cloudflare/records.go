package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/domain/entity"
	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

const (
	// DefaultRecordPageSize is the per_page value for paginated record listing.
	DefaultRecordPageSize = 100

	// createTTL is the fixed TTL applied to new records (seconds).
	createTTL = 300
)

func recordsPath(zoneID string) string {
	return "/zones/" + zoneID + "/dns_records"
}

// ListRecords returns every DNS record of a zone in provider order.
func (c *Client) ListRecords(ctx context.Context, zoneID string, perPage int) ([]entity.Record, error) {
	const op = "list DNS records"
	if perPage <= 0 {
		perPage = DefaultRecordPageSize
	}

	records, err := listPaged[entity.Record](ctx, c, op, recordsPath(zoneID), url.Values{}, perPage)
	if err != nil {
		return nil, err
	}
	logger.Info("DNS records listed", "zone_id", zoneID, "count", len(records))
	return records, nil
}

// FindRecordByName resolves a record name to exactly one record. The provider
// filter may match more broadly than an exact name, so the result set is
// re-filtered client-side; zero exact matches is domain.ErrRecordNotFound and
// more than one is an AmbiguousMatchError. Destructive callers must use the
// ID this returns, never a bare name.
func (c *Client) FindRecordByName(ctx context.Context, zoneID, recordName string) (*entity.Record, error) {
	const op = "fetch DNS record"
	query := url.Values{}
	query.Set("name", recordName)
	query.Set("per_page", "100")

	env, err := c.doJSON(ctx, op, http.MethodGet, recordsPath(zoneID), query, nil)
	if err != nil {
		return nil, err
	}

	var candidates []entity.Record
	if len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, &candidates); err != nil {
			return nil, domain.WrapOp(op, domain.ErrInvalidResponse)
		}
	}

	var matches []entity.Record
	for _, rec := range candidates {
		if rec.Name == recordName {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, recordName)
	case 1:
		rec := matches[0]
		logger.Info("record found",
			"name", rec.Name, "type", rec.Type, "content", rec.Content, "record_id", rec.ID)
		return &rec, nil
	default:
		return nil, &AmbiguousMatchError{Name: recordName, Count: len(matches)}
	}
}

type createPayload struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl"`
	Proxied  bool   `json:"proxied"`
	Priority *int   `json:"priority,omitempty"`
}

// CreateRecord creates a record with the fixed TTL and proxying disabled and
// returns the provider's full response envelope for the caller to surface.
// A 2xx response without a result ID is still an API-logical failure.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, rec entity.Record) (*Envelope, error) {
	const op = "create DNS record"
	logger.Info("creating DNS record",
		"zone_id", zoneID, "name", rec.Name, "type", rec.Type, "content", rec.Content)

	payload := createPayload{
		Type:     rec.Type,
		Name:     rec.Name,
		Content:  rec.Content,
		TTL:      createTTL,
		Proxied:  false,
		Priority: rec.Priority,
	}

	env, err := c.doJSON(ctx, op, http.MethodPost, recordsPath(zoneID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created entity.Record
	if err := json.Unmarshal(env.Result, &created); err != nil || created.ID == "" {
		logger.Error("create response missing result ID", "zone_id", zoneID, "name", rec.Name)
		return nil, &APIError{Op: op, Errors: env.Errors}
	}

	logger.Info("DNS record created", "record_id", created.ID)
	return env, nil
}

// DeleteRecord removes a record by its provider-assigned ID. The gateway
// performs no confirmation; gating a destructive call is the caller's job.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) (*Envelope, error) {
	const op = "delete DNS record"
	env, err := c.doJSON(ctx, op, http.MethodDelete, recordsPath(zoneID)+"/"+recordID, nil, nil)
	if err != nil {
		return nil, err
	}
	logger.Info("DNS record deleted", "zone_id", zoneID, "record_id", recordID)
	return env, nil
}
