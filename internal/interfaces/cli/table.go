package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lite-lake/cfman/internal/domain/entity"
)

const (
	ColorPrimary   = "#7C3AED"
	ColorSecondary = "#6B7280"

	// maxDestWidth avoids overly wide tables for very long record values.
	maxDestWidth = 80
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondary))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)

	titleCaser = cases.Title(language.English)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

func renderZonesTable(zones []entity.Zone) string {
	if len(zones) == 0 {
		return "No DNS zones found."
	}
	t := newTable("NAME", "ID", "STATUS")
	for _, z := range zones {
		t.Row(z.Name, z.ID, titleCaser.String(z.Status))
	}
	return t.String()
}

func renderRecordsTable(records []entity.Record) string {
	if len(records) == 0 {
		return "No DNS records found."
	}
	t := newTable("HOSTNAME", "TYPE", "DESTINATION")
	for _, r := range records {
		t.Row(r.Name, r.Type, shorten(r.Destination(), maxDestWidth))
	}
	return t.String()
}

func shorten(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit-3] + "..."
}
