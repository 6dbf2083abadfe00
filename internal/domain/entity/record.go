package entity

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lite-lake/cfman/internal/domain"
)

// RecordTypes lists the DNS record types cfman accepts on input.
var RecordTypes = []string{"A", "AAAA", "CNAME", "TXT", "MX", "NS", "SRV", "PTR", "CAA"}

// NormalizeRecordType upper-cases the input and validates it against RecordTypes.
func NormalizeRecordType(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if slices.Contains(RecordTypes, t) {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (allowed: %s)", domain.ErrInvalidType, s, strings.Join(RecordTypes, ", "))
}

// Record is a single DNS entry within a zone. Priority and Data carry
// type-specific provider fields opaquely; cfman does not validate them.
type Record struct {
	ID       string          `json:"id,omitempty"`
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Content  string          `json:"content"`
	TTL      int             `json:"ttl,omitempty"`
	Proxied  bool            `json:"proxied"`
	Priority *int            `json:"priority,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Destination renders the record target for display. MX records show the
// priority in front of the content, matching zone-file convention.
func (r Record) Destination() string {
	if strings.EqualFold(r.Type, "MX") && r.Priority != nil {
		return strconv.Itoa(*r.Priority) + " " + r.Content
	}
	return r.Content
}
