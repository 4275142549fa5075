package volunteerdata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// MarkPdfRequested records a certificate PDF request: the matching
// row's Email cell is overwritten and the PDF_Requested flag column is
// set to TRUE. Rows are matched by citizen id alone. The two cell
// writes are independent calls; an error on the second one leaves the
// email already written.
func (s *Service) MarkPdfRequested(ctx context.Context, citizenId, email string) (bool, error) {
	if s.values == nil {
		return false, ErrNoSession
	}

	values, err := s.values.Get(ctx, s.certificateSheetId, sheetName)
	if err != nil {
		return false, err
	}
	if len(values) < 2 {
		return false, nil
	}

	headers := values[0]
	cccdIdx := headerIndex(headers, colCitizenId)
	emailIdx := headerIndex(headers, colEmail)
	if cccdIdx < 0 || emailIdx < 0 {
		return false, fmt.Errorf("%w: spreadsheet %s is missing a %s or %s column",
			ErrSchema, s.certificateSheetId, colCitizenId, colEmail)
	}

	wantId := strings.TrimSpace(citizenId)
	for i, row := range values[1:] {
		// +2: rows are 1-based and the header occupies row 1
		rowNumber := i + 2
		if len(row) <= cccdIdx {
			continue
		}
		if strings.TrimSpace(row[cccdIdx]) != wantId {
			continue
		}

		emailCell := fmt.Sprintf("%s!%c%d", sheetName, rune('A'+emailIdx), rowNumber)
		err = s.values.Update(ctx, s.certificateSheetId, emailCell, email)
		if err != nil {
			return false, err
		}

		flagCell := fmt.Sprintf("%s!%s%d", sheetName, requestedColumn, rowNumber)
		err = s.values.Update(ctx, s.certificateSheetId, flagCell, "TRUE")
		if err != nil {
			return false, err
		}

		slog.InfoContext(ctx, "marked certificate pdf as requested", "row", rowNumber)
		return true, nil
	}

	return false, nil
}
