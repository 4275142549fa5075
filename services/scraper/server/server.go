package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"govolunteer-backend/services/scraper"

	"github.com/labstack/echo/v4"
)

type Server struct {
	svc *scraper.Service
}

func Register(e *echo.Echo, svc *scraper.Service) {
	s := Server{svc: svc}

	e.GET("/news", s.News)
	e.GET("/clubs", s.Clubs)
	e.GET("/chuong-trinh-chien-dich-du-an", s.Campaigns)
	e.GET("/skills", s.Skills)
	e.GET("/ideas", s.Ideas)
	e.GET("/article", s.Article)
}

func (s Server) News(c echo.Context) error {
	data, err := s.svc.CachedNews(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Không thể lấy dữ liệu từ trang chủ GoVolunteer.")
	}
	return c.JSON(http.StatusOK, data)
}

func (s Server) Clubs(c echo.Context) error {
	return listing(c, s.svc.Clubs, "Không thể lấy dữ liệu CLB.")
}

func (s Server) Campaigns(c echo.Context) error {
	return listing(c, s.svc.Campaigns, "Không thể lấy dữ liệu chương trình, chiến dịch, dự án.")
}

func (s Server) Skills(c echo.Context) error {
	return listing(c, s.svc.Skills, "Không thể lấy dữ liệu kỹ năng.")
}

func (s Server) Ideas(c echo.Context) error {
	return listing(c, s.svc.Ideas, "Không thể lấy dữ liệu ý tưởng.")
}

func listing(c echo.Context, scrape func(context.Context) []scraper.CategorySection, unavailable string) error {
	data := scrape(c.Request().Context())
	if len(data) == 0 {
		return echo.NewHTTPError(http.StatusServiceUnavailable, unavailable)
	}
	return c.JSON(http.StatusOK, data)
}

func (s Server) Article(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" || !strings.HasPrefix(url, s.svc.BaseUrl()) {
		return echo.NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("URL không hợp lệ. Phải bắt đầu bằng %s", s.svc.BaseUrl()),
		)
	}

	content, err := s.svc.ArticleContent(c.Request().Context(), url)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Không thể lấy nội dung bài viết.")
	}
	return c.JSON(http.StatusOK, map[string]string{"html_content": content})
}
