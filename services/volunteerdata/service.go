package volunteerdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	sheetName = "Sheet1"

	colUserName  = "User_Name"
	colCitizenId = "CCCD"
	colEmail     = "Email"

	// the PDF_Requested flag lives in a fixed column of the
	// certificate sheet
	requestedColumn = "G"
)

// Row is one data row projected onto the sheet's header names.
// Short rows pad their missing trailing cells with empty strings.
type Row map[string]string

var (
	ErrNoSession = errors.New("google sheets session is not available")
	ErrSchema    = errors.New("unexpected spreadsheet layout")
	ErrNotFound  = errors.New("no matching row")
)

// UpstreamError carries the status code google sheets answered with.
type UpstreamError struct {
	Status int
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("google sheets responded with status %d", e.Status)
}

type Options struct {
	CredentialsFile    string
	ActivitySheetId    string
	CertificateSheetId string
}

type Service struct {
	values             ValuesAPI
	activitySheetId    string
	certificateSheetId string
}

// NewService builds the row store over the google sheets values api.
// A missing credentials file is not fatal: the service comes up
// without a session and every call fails with ErrNoSession, matching
// how the rest of the api keeps serving scraped data when the sheets
// side is down.
func NewService(ctx context.Context, opts Options) *Service {
	s := &Service{
		activitySheetId:    opts.ActivitySheetId,
		certificateSheetId: opts.CertificateSheetId,
	}

	if _, err := os.Stat(opts.CredentialsFile); err != nil {
		slog.ErrorContext(ctx, "sheets credentials file not found, lookups disabled", "path", opts.CredentialsFile)
		return s
	}

	svc, err := sheets.NewService(
		ctx,
		option.WithCredentialsFile(opts.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize sheets service, lookups disabled", "err", err)
		return s
	}

	slog.InfoContext(ctx, "google sheets session established")
	s.values = sheetsValues{svc: svc}
	return s
}

// NewServiceWithValues wires an explicit values api, used by tests and
// by anything that already owns a sheets session.
func NewServiceWithValues(values ValuesAPI, activitySheetId, certificateSheetId string) *Service {
	return &Service{
		values:             values,
		activitySheetId:    activitySheetId,
		certificateSheetId: certificateSheetId,
	}
}
