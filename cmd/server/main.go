package main

import (
	"flag"
	"net/http"

	"govolunteer-backend/lib/configutil"
	"govolunteer-backend/lib/serviceutil"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	Port          int                 `json:"port"`
	Scraper       ScraperConfig       `json:"scraper"`
	VolunteerData VolunteerDataConfig `json:"volunteer_data"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "online",
			"message": "API GoVolunteer đã sẵn sàng!",
		})
	})

	InitScraper(e, cfg.Scraper)
	InitVolunteerData(ctx, e, cfg.VolunteerData)

	go serviceutil.StartHttpServer(cfg.Port, e)
	<-ctx.Done()
}
