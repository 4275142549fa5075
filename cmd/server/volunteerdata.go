package main

import (
	"context"

	"govolunteer-backend/services/volunteerdata"
	volunteerdataserver "govolunteer-backend/services/volunteerdata/server"

	"github.com/labstack/echo/v4"
)

type VolunteerDataConfig struct {
	CredentialsFile    string                   `json:"credentials_file"`
	ActivitySheetId    string                   `json:"activity_sheet_id"`
	CertificateSheetId string                   `json:"certificate_sheet_id"`
	Smtp               volunteerdata.SmtpConfig `json:"smtp"`
}

func InitVolunteerData(ctx context.Context, e *echo.Echo, cfg VolunteerDataConfig) *volunteerdata.Service {
	svc := volunteerdata.NewService(ctx, volunteerdata.Options{
		CredentialsFile:    cfg.CredentialsFile,
		ActivitySheetId:    cfg.ActivitySheetId,
		CertificateSheetId: cfg.CertificateSheetId,
	})
	notifier := volunteerdata.NewNotifier(cfg.Smtp)
	volunteerdataserver.Register(e, svc, notifier)
	return svc
}
