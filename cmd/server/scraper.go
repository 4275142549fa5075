package main

import (
	"time"

	"govolunteer-backend/services/scraper"
	scraperserver "govolunteer-backend/services/scraper/server"

	"github.com/labstack/echo/v4"
)

type ScraperConfig struct {
	BaseUrl          string `json:"base_url"`
	NewsCacheMinutes int    `json:"news_cache_minutes"`
}

func InitScraper(e *echo.Echo, cfg ScraperConfig) *scraper.Service {
	svc := scraper.NewService(scraper.Options{
		BaseUrl:      cfg.BaseUrl,
		NewsCacheTtl: time.Duration(cfg.NewsCacheMinutes) * time.Minute,
	})
	scraperserver.Register(e, svc)
	return svc
}
