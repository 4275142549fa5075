package volunteerdata

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// ValuesAPI is the slice of the google sheets values api the row store
// needs: read a named range, write a single cell.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetId, readRange string) ([][]string, error)
	Update(ctx context.Context, spreadsheetId, cellRange, value string) error
}

type sheetsValues struct {
	svc *sheets.Service
}

func (s sheetsValues) Get(ctx context.Context, spreadsheetId, readRange string) ([][]string, error) {
	res, err := s.svc.Spreadsheets.Values.Get(spreadsheetId, readRange).Context(ctx).Do()
	if err != nil {
		return nil, wrapGoogleError(err)
	}

	values := make([][]string, len(res.Values))
	for i, row := range res.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		values[i] = cells
	}
	return values, nil
}

func (s sheetsValues) Update(ctx context.Context, spreadsheetId, cellRange, value string) error {
	body := &sheets.ValueRange{
		Values: [][]any{{value}},
	}
	_, err := s.svc.Spreadsheets.Values.Update(spreadsheetId, cellRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return wrapGoogleError(err)
}

func wrapGoogleError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s", UpstreamError{Status: apiErr.Code}, apiErr.Message)
	}
	return err
}
