package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// menuRange covers name, description, price, category and image_url.
const menuRange = "A:E"

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(ctx context.Context, cfg Config) (*GoogleSheetsParser, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseMenuItems(ctx context.Context, spreadsheetID string) ([]*domain.MenuItem, int, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, menuRange).Context(ctx).Do()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, 0, fmt.Errorf("no data found in spreadsheet")
	}

	items, skipped := ParseRows(resp.Values)
	return items, skipped, nil
}

// ParseRows turns sheet rows into menu items. The first row is a header.
// Blank rows are ignored; rows without a name or with an unreadable price
// are counted as skipped. Field validation is left to the catalog.
func ParseRows(rows [][]interface{}) ([]*domain.MenuItem, int) {
	items := make([]*domain.MenuItem, 0, len(rows))
	skipped := 0

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}

		name := cell(row, 0)
		if name == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(cell(row, 2), 64)
		if err != nil {
			skipped++
			continue
		}

		items = append(items, &domain.MenuItem{
			Name:        name,
			Description: cell(row, 1),
			Price:       price,
			Category:    domain.Category(cell(row, 3)),
			ImageURL:    cell(row, 4),
		})
	}

	return items, skipped
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}

func blank(row []interface{}) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}
