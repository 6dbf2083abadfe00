package cloudflare

import (
	"context"
	"io"
	"net/http"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

// ExportZone fetches the provider-rendered zone file as raw text. The blob is
// in the provider's own zone-file dialect and is not parsed or validated here.
// Only the transport and HTTP tiers apply; there is no JSON envelope.
func (c *Client) ExportZone(ctx context.Context, zoneID string) (string, error) {
	const op = "export zone"

	ctx, cancel := context.WithTimeout(ctx, c.exportTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(recordsPath(zoneID)+"/export", nil), nil)
	if err != nil {
		return "", domain.WrapOp(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("communication error with Cloudflare", "op", op, "error", err)
		return "", &CommunicationError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("communication error with Cloudflare", "op", op, "error", err)
		return "", &CommunicationError{Op: op, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("HTTP error from Cloudflare", "op", op, "status", resp.StatusCode)
		logResponseBody(raw)
		return "", &HTTPError{Op: op, StatusCode: resp.StatusCode, Body: raw}
	}

	logger.Info("zone exported", "zone_id", zoneID, "bytes", len(raw))
	return string(raw), nil
}
