package volunteerdata

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// SheetDump is the audit view of one whole sheet.
type SheetDump struct {
	Count   int      `json:"count"`
	Headers []string `json:"headers"`
	Data    []Row    `json:"data"`
}

func headerIndex(headers []string, name string) int {
	return slices.Index(headers, name)
}

func projectRow(headers, row []string) Row {
	out := make(Row, len(headers))
	for i, h := range headers {
		if i < len(row) {
			out[h] = row[i]
		} else {
			out[h] = ""
		}
	}
	return out
}

// findRows scans a sheet for volunteers. A row matches on trimmed
// exact CCCD plus trimmed case-insensitive User_Name; this is the
// identifier policy of the lookup endpoints. limit <= 0 returns every
// match.
func (s *Service) findRows(ctx context.Context, spreadsheetId, fullName, citizenId string, limit int) ([]Row, error) {
	if s.values == nil {
		return nil, ErrNoSession
	}

	values, err := s.values.Get(ctx, spreadsheetId, sheetName)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, nil
	}

	headers := values[0]
	nameIdx := headerIndex(headers, colUserName)
	cccdIdx := headerIndex(headers, colCitizenId)
	if nameIdx < 0 || cccdIdx < 0 {
		return nil, fmt.Errorf("%w: spreadsheet %s is missing a %s or %s column",
			ErrSchema, spreadsheetId, colUserName, colCitizenId)
	}

	wantName := strings.ToLower(strings.TrimSpace(fullName))
	wantId := strings.TrimSpace(citizenId)

	var found []Row
	for _, row := range values[1:] {
		if len(row) <= max(nameIdx, cccdIdx) {
			continue
		}
		if strings.ToLower(strings.TrimSpace(row[nameIdx])) != wantName {
			continue
		}
		if strings.TrimSpace(row[cccdIdx]) != wantId {
			continue
		}
		found = append(found, projectRow(headers, row))
		if limit > 0 && len(found) == limit {
			break
		}
	}
	return found, nil
}

// Activities returns every activity row matching the volunteer.
func (s *Service) Activities(ctx context.Context, fullName, citizenId string) ([]Row, error) {
	return s.findRows(ctx, s.activitySheetId, fullName, citizenId, 0)
}

// Certificates returns every certificate row matching the volunteer.
func (s *Service) Certificates(ctx context.Context, fullName, citizenId string) ([]Row, error) {
	return s.findRows(ctx, s.certificateSheetId, fullName, citizenId, 0)
}

// FirstActivity returns the first matching activity row, ErrNotFound
// when the volunteer has none.
func (s *Service) FirstActivity(ctx context.Context, fullName, citizenId string) (Row, error) {
	return s.first(ctx, s.activitySheetId, fullName, citizenId)
}

// FirstCertificate returns the first matching certificate row,
// ErrNotFound when the volunteer has none.
func (s *Service) FirstCertificate(ctx context.Context, fullName, citizenId string) (Row, error) {
	return s.first(ctx, s.certificateSheetId, fullName, citizenId)
}

func (s *Service) first(ctx context.Context, spreadsheetId, fullName, citizenId string) (Row, error) {
	rows, err := s.findRows(ctx, spreadsheetId, fullName, citizenId, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// DumpActivities returns the entire activity sheet for auditing.
func (s *Service) DumpActivities(ctx context.Context) (SheetDump, error) {
	return s.dump(ctx, s.activitySheetId)
}

// DumpCertificates returns the entire certificate sheet for auditing.
func (s *Service) DumpCertificates(ctx context.Context) (SheetDump, error) {
	return s.dump(ctx, s.certificateSheetId)
}

func (s *Service) dump(ctx context.Context, spreadsheetId string) (SheetDump, error) {
	if s.values == nil {
		return SheetDump{}, ErrNoSession
	}

	values, err := s.values.Get(ctx, spreadsheetId, sheetName)
	if err != nil {
		return SheetDump{}, err
	}
	if len(values) < 2 {
		dump := SheetDump{Data: []Row{}}
		if len(values) > 0 {
			dump.Headers = values[0]
		}
		return dump, nil
	}

	headers := values[0]
	data := make([]Row, 0, len(values)-1)
	for _, row := range values[1:] {
		data = append(data, projectRow(headers, row))
	}
	return SheetDump{
		Count:   len(data),
		Headers: headers,
		Data:    data,
	}, nil
}
