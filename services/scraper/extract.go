package scraper

import (
	"context"
	"log/slog"
	"regexp"

	"govolunteer-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// matches wordpress thumbnail suffixes like photo-150x150.jpg,
// two to four digits on each side of the x
var imageSizeSuffix = regexp.MustCompile(`-\d{2,4}x\d{2,4}(\.\w+)$`)

// highResImageUrl strips the resized-thumbnail suffix off an image url
// so the original asset is served instead. An empty url falls back to
// the organization logo.
func highResImageUrl(url string) string {
	if url == "" {
		return fallbackImageUrl
	}
	return imageSizeSuffix.ReplaceAllString(url, "$1")
}

// dedupByLink drops repeated links, the last occurrence wins but keeps
// the position the link first appeared at.
func dedupByLink(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	seen := make(map[string]int, len(articles))
	for _, a := range articles {
		if at, ok := seen[a.Link]; ok {
			out[at] = a
			continue
		}
		seen[a.Link] = len(out)
		out = append(out, a)
	}
	return out
}

func articleFromPost(post *goquery.Selection) (Article, bool) {
	anchor := post.Find("h3.elementor-post__title a").First()
	link, ok := anchor.Attr("href")
	if !ok || link == "" {
		return Article{}, false
	}

	img := post.Find(".elementor-post__thumbnail img").First()
	src, ok := img.Attr("src")
	if !ok || src == "" {
		src = img.AttrOr("data-src", "")
	}

	excerpt := htmlutil.SelectionText(post.Find(".elementor-post__excerpt p").First())
	if excerpt == "" {
		excerpt = noExcerptPlaceholder
	}

	return Article{
		Title:    htmlutil.SelectionText(anchor),
		Link:     link,
		ImageUrl: highResImageUrl(src),
		Excerpt:  excerpt,
	}, true
}

// sectionsFromRoot walks the top-level layout sections under root,
// pairing each section heading with the articles inside it. Sections
// without a heading contribute nothing, even when they contain
// articles.
func sectionsFromRoot(root *goquery.Selection) []CategorySection {
	var sections []CategorySection
	root.Find("section.elementor-top-section").Each(func(_ int, sec *goquery.Selection) {
		category := htmlutil.SelectionText(sec.Find("h2.elementor-heading-title").First())
		if category == "" {
			return
		}

		var articles []Article
		sec.Find("article.elementor-post").Each(func(_ int, post *goquery.Selection) {
			a, ok := articleFromPost(post)
			if !ok {
				return
			}
			articles = append(articles, a)
		})

		articles = dedupByLink(articles)
		if len(articles) == 0 {
			return
		}
		sections = append(sections, CategorySection{
			Category: category,
			Articles: articles,
		})
	})

	return sections
}

func (s *Service) scrapeSections(ctx context.Context, url, rootSelector string) []CategorySection {
	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch listing page", "url", url, "err", err)
		return nil
	}
	root := doc.Find(rootSelector).First()
	if root.Length() == 0 {
		slog.WarnContext(ctx, "listing container not found", "url", url, "selector", rootSelector)
		return nil
	}
	return sectionsFromRoot(root)
}
