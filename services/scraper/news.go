package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// News scrapes every page of the /news/ listing into a single
// category. The total page count is read off the load-more anchor of
// page one; successive page fetches are spaced out so the source site
// is not hammered. A failed page fetch stops pagination but keeps what
// was already collected.
func (s *Service) News(ctx context.Context) []CategorySection {
	var all []Article
	maxPages := 1

	for page := 1; page <= maxPages; page++ {
		url := s.baseUrl + "/news/"
		if page > 1 {
			url = fmt.Sprintf("%s/news/%d/", s.baseUrl, page)
		}

		doc, err := s.fetchDocument(ctx, url)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch news page", "url", url, "err", err)
			break
		}

		if page == 1 {
			attr := doc.Find(".e-load-more-anchor[data-max-page]").AttrOr("data-max-page", "")
			if n, err := strconv.Atoi(attr); err == nil && n > 0 {
				maxPages = n
			}
			slog.DebugContext(ctx, "discovered news page count", "pages", maxPages)
		}

		container := doc.Find(".elementor-1096").First()
		if container.Length() == 0 {
			slog.WarnContext(ctx, "news container not found", "url", url)
			continue
		}

		container.Find("article.elementor-post").Each(func(_ int, post *goquery.Selection) {
			a, ok := articleFromPost(post)
			if !ok {
				return
			}
			all = append(all, a)
		})

		if page < maxPages {
			time.Sleep(s.pageDelay)
		}
	}

	all = dedupByLink(all)
	slog.InfoContext(ctx, "scraped news listing", "articles", len(all))
	if len(all) == 0 {
		return nil
	}
	return []CategorySection{{Category: newsCategory, Articles: all}}
}
