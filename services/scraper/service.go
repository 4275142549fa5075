package scraper

import (
	"strings"
	"time"

	"govolunteer-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseUrl   = "https://govolunteerhcmc.vn"
	fallbackImageUrl = "https://govolunteerhcmc.vn/wp-content/uploads/2024/02/logo-gv-tron.png"

	// shown when a listing entry carries no excerpt
	noExcerptPlaceholder = "Không có mô tả."

	newsCategory = "Nhật ký tình nguyện"
)

// Article is one content item of a listing page.
type Article struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	ImageUrl string `json:"imageUrl"`
	Excerpt  string `json:"excerpt"`
}

// CategorySection groups the articles found under one page heading.
type CategorySection struct {
	Category string    `json:"category"`
	Articles []Article `json:"articles"`
}

type Options struct {
	// defaults to the production govolunteerhcmc.vn origin
	BaseUrl string
	// defaults to 30 minutes
	NewsCacheTtl time.Duration
	// wait between successive news page fetches, defaults to 1 second
	PageDelay time.Duration
}

type Service struct {
	client    *resty.Client
	baseUrl   string
	pageDelay time.Duration

	newsCache *resultCache
	newsGroup singleflight.Group
}

func NewService(opts Options) *Service {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	if opts.NewsCacheTtl == 0 {
		opts.NewsCacheTtl = 30 * time.Minute
	}
	if opts.PageDelay == 0 {
		opts.PageDelay = time.Second
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36")
	client.SetHeader("referer", "https://www.google.com/")
	client.SetTimeout(time.Second * 20)

	telemetry.InstrumentResty(client, "govolunteer.scraper")

	return &Service{
		client:    client,
		baseUrl:   strings.TrimSuffix(opts.BaseUrl, "/"),
		pageDelay: opts.PageDelay,
		newsCache: newResultCache(opts.NewsCacheTtl),
	}
}

// BaseUrl returns the origin articles are scraped from, links outside
// of it are rejected by the article endpoint.
func (s *Service) BaseUrl() string {
	return s.baseUrl
}
