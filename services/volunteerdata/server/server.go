package server

import (
	"errors"
	"net/http"

	"govolunteer-backend/services/volunteerdata"

	"github.com/labstack/echo/v4"
)

type LookupRequest struct {
	FullName  string `json:"fullName"`
	CitizenId string `json:"citizenId"`
}

type RequestPdfRequest struct {
	FullName  string `json:"fullName"`
	CitizenId string `json:"citizenId"`
	Email     string `json:"email"`
}

type Server struct {
	svc      *volunteerdata.Service
	notifier *volunteerdata.Notifier
}

func Register(e *echo.Echo, svc *volunteerdata.Service, notifier *volunteerdata.Notifier) {
	s := Server{svc: svc, notifier: notifier}

	e.POST("/lookup", s.Lookup)
	e.POST("/find-activities", s.FindActivities)
	e.POST("/find-certificates", s.FindCertificates)
	e.POST("/request-pdf", s.RequestPdf)
	e.GET("/all-data", s.AllData)
}

// Lookup answers with both the plural and the singular shape so older
// clients that only read `activity`/`certificate` keep working.
func (s Server) Lookup(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	activities, err := s.svc.Activities(ctx, req.FullName, req.CitizenId)
	if err != nil {
		return httpError(err)
	}
	certificates, err := s.svc.Certificates(ctx, req.FullName, req.CitizenId)
	if err != nil {
		return httpError(err)
	}

	if len(activities) == 0 && len(certificates) == 0 {
		return echo.NewHTTPError(
			http.StatusNotFound,
			"Không tìm thấy thông tin tình nguyện viên phù hợp. Vui lòng kiểm tra lại Họ tên và CCCD.",
		)
	}

	res := map[string]any{
		"activities":   emptyIfNil(activities),
		"certificates": emptyIfNil(certificates),
		"activity":     nil,
		"certificate":  nil,
	}
	if len(activities) > 0 {
		res["activity"] = activities[0]
	}
	if len(certificates) > 0 {
		res["certificate"] = certificates[0]
	}
	return c.JSON(http.StatusOK, res)
}

func (s Server) FindActivities(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := s.svc.FirstActivity(c.Request().Context(), req.FullName, req.CitizenId)
	if errors.Is(err, volunteerdata.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Không tìm thấy hoạt động.")
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"activities": []volunteerdata.Row{activity},
	})
}

func (s Server) FindCertificates(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	certificate, err := s.svc.FirstCertificate(c.Request().Context(), req.FullName, req.CitizenId)
	if errors.Is(err, volunteerdata.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Không tìm thấy chứng nhận.")
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"certificates": []volunteerdata.Row{certificate},
	})
}

func (s Server) RequestPdf(c echo.Context) error {
	var req RequestPdfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := s.svc.MarkPdfRequested(c.Request().Context(), req.CitizenId, req.Email)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Không tìm thấy chứng nhận phù hợp với CCCD.")
	}

	s.notifier.PdfRequested(c.Request().Context(), req.FullName, req.CitizenId, req.Email)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (s Server) AllData(c echo.Context) error {
	ctx := c.Request().Context()

	activities, err := s.svc.DumpActivities(ctx)
	if err != nil {
		return httpError(err)
	}
	certificates, err := s.svc.DumpCertificates(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Dữ liệu đầy đủ từ hai sheet chỉ dành cho mục đích kiểm tra.",
		"activities":   activities,
		"certificates": certificates,
	})
}

func emptyIfNil(rows []volunteerdata.Row) []volunteerdata.Row {
	if rows == nil {
		return []volunteerdata.Row{}
	}
	return rows
}

func httpError(err error) error {
	if errors.Is(err, volunteerdata.ErrNoSession) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Dịch vụ Google Sheets hiện không khả dụng.")
	}
	if errors.Is(err, volunteerdata.ErrSchema) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var upstream volunteerdata.UpstreamError
	if errors.As(err, &upstream) {
		return echo.NewHTTPError(upstream.Status, "Lỗi khi giao tiếp với Google Sheets.")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
