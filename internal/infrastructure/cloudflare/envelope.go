package cloudflare

import (
	"bytes"
	"encoding/json"

	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

// ResponseInfo is one entry of the errors/messages arrays Cloudflare attaches
// to every envelope.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ResultInfo is the pagination cursor the provider reports on list endpoints.
type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// Envelope is the standard Cloudflare v4 response wrapper. Result stays raw
// so each operation can decode its own shape.
type Envelope struct {
	Success    bool            `json:"success"`
	Errors     []ResponseInfo  `json:"errors,omitempty"`
	Messages   []ResponseInfo  `json:"messages,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	ResultInfo *ResultInfo     `json:"result_info,omitempty"`
}

// logResponseBody pretty-prints a JSON body for the log, falling back to the
// raw text when the body is not valid JSON.
func logResponseBody(raw []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		logger.Error("response text", "body", string(raw))
		return
	}
	logger.Error("response JSON", "body", pretty.String())
}
