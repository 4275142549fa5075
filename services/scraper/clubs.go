package scraper

import (
	"context"
	"log/slog"

	"govolunteer-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Clubs scrapes the /clubs/ page, where headings and their articles
// live in separate sibling sections. A heading section opens a
// category; every heading-less section after it pours its articles
// into that category until the next heading shows up.
func (s *Service) Clubs(ctx context.Context) []CategorySection {
	url := s.baseUrl + "/clubs/"
	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch clubs page", "url", url, "err", err)
		return nil
	}
	root := doc.Find(".elementor-1048").First()
	if root.Length() == 0 {
		slog.WarnContext(ctx, "clubs container not found", "url", url)
		return nil
	}

	var order []string
	byCategory := map[string][]Article{}
	current := ""

	root.Find("section.elementor-top-section").Each(func(_ int, sec *goquery.Selection) {
		heading := htmlutil.SelectionText(sec.Find("h2.elementor-heading-title").First())
		if heading != "" {
			current = heading
			if _, ok := byCategory[current]; !ok {
				byCategory[current] = nil
				order = append(order, current)
			}
			return
		}
		if current == "" {
			return
		}

		sec.Find("article.ecs-post-loop, article.elementor-post").Each(func(_ int, post *goquery.Selection) {
			button := post.Find("a.elementor-button").First()
			link, ok := button.Attr("href")
			if !ok || link == "" {
				return
			}
			title := htmlutil.SelectionText(button)
			if title == "" {
				return
			}

			img := post.Find(".elementor-widget-theme-post-featured-image img").First()
			byCategory[current] = append(byCategory[current], Article{
				Title:    title,
				Link:     link,
				ImageUrl: highResImageUrl(img.AttrOr("src", "")),
				Excerpt:  "",
			})
		})
	})

	var out []CategorySection
	for _, name := range order {
		articles := dedupByLink(byCategory[name])
		if len(articles) == 0 {
			continue
		}
		out = append(out, CategorySection{Category: name, Articles: articles})
	}

	slog.InfoContext(ctx, "scraped clubs listing", "categories", len(out))
	return out
}
