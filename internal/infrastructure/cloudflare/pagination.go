package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lite-lake/cfman/internal/domain"
)

// maxPages bounds the page loop. The provider drives convergence through
// result_info, so a provider that never advances its cursor would otherwise
// loop forever.
const maxPages = 1000

// listPaged issues GET requests with an incrementing page counter starting at
// 1 and accumulates each page's result array in provider order, until the
// reported current page reaches the reported total. A missing result_info or
// total is treated as converged after the current page. Any failure discards
// results accumulated so far.
func listPaged[T any](ctx context.Context, c *Client, op, path string, query url.Values, perPage int) ([]T, error) {
	var all []T
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(perPage))

		env, err := c.doJSON(ctx, op, http.MethodGet, path, q, nil)
		if err != nil {
			return nil, err
		}

		var items []T
		if len(env.Result) > 0 {
			if err := json.Unmarshal(env.Result, &items); err != nil {
				return nil, domain.WrapOp(op, domain.ErrInvalidResponse)
			}
		}
		all = append(all, items...)

		current, total := page, page
		if info := env.ResultInfo; info != nil {
			if info.Page > 0 {
				current = info.Page
			}
			if info.TotalPages > 0 {
				total = info.TotalPages
			} else {
				total = current
			}
		}
		if current >= total {
			return all, nil
		}
	}
	return nil, domain.WrapOp(op, domain.ErrPageLimit)
}
