package scraper

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoContent = errors.New("article content container not found")

// Campaigns scrapes the programs/campaigns/projects listing.
func (s *Service) Campaigns(ctx context.Context) []CategorySection {
	return s.scrapeSections(ctx, s.baseUrl+"/chuong-trinh-chien-dich-du-an/", ".elementor-1165")
}

// Skills scrapes the skills article listing.
func (s *Service) Skills(ctx context.Context) []CategorySection {
	return s.scrapeSections(ctx, s.baseUrl+"/skills/", ".elementor-1181")
}

// Ideas scrapes the volunteer ideas listing.
func (s *Service) Ideas(ctx context.Context) []CategorySection {
	return s.scrapeSections(ctx, s.baseUrl+"/ideas/", ".elementor-1242")
}

// ArticleContent fetches a single article page and returns the raw
// html of its post body.
func (s *Service) ArticleContent(ctx context.Context, url string) (string, error) {
	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		return "", err
	}
	content := doc.Find(".elementor-widget-theme-post-content .elementor-widget-container").First()
	if content.Length() == 0 {
		return "", ErrNoContent
	}
	return goquery.OuterHtml(content)
}
