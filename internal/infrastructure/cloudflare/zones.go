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

// DefaultZonePageSize is the per_page value for paginated zone listing.
const DefaultZonePageSize = 50

// ListZones returns every zone visible to the token, optionally filtered by
// name server-side. An empty result is success, not an error.
func (c *Client) ListZones(ctx context.Context, name string, perPage int) ([]entity.Zone, error) {
	const op = "list zones"
	if perPage <= 0 {
		perPage = DefaultZonePageSize
	}
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	zones, err := listPaged[entity.Zone](ctx, c, op, "/zones", query, perPage)
	if err != nil {
		return nil, err
	}
	logger.Info("zones listed", "count", len(zones), "filter", name)
	return zones, nil
}

// ZoneID resolves a zone name to its provider-assigned ID. The provider's
// zone name filter is exact, so the first result is authoritative.
func (c *Client) ZoneID(ctx context.Context, zoneName string) (string, error) {
	const op = "fetch zone"
	query := url.Values{}
	query.Set("name", zoneName)
	query.Set("per_page", "1")

	env, err := c.doJSON(ctx, op, http.MethodGet, "/zones", query, nil)
	if err != nil {
		return "", err
	}

	var zones []entity.Zone
	if len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, &zones); err != nil {
			return "", domain.WrapOp(op, domain.ErrInvalidResponse)
		}
	}
	if len(zones) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrZoneNotFound, zoneName)
	}

	logger.Info("zone found", "zone", zoneName, "zone_id", zones[0].ID)
	return zones[0].ID, nil
}
