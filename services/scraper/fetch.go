package scraper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

func (s *Service) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("%s responded with status %s", url, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}
