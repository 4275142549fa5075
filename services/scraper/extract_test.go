package scraper

import (
	"strings"
	"testing"

	"govolunteer-backend/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDocument(t testing.TB, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestHighResImageUrl(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"https://x.vn/photo-150x150.jpg", "https://x.vn/photo.jpg"},
		{"https://x.vn/photo-1024x768.png", "https://x.vn/photo.png"},
		{"https://x.vn/x-15.png", "https://x.vn/x-15.png"},
		{"https://x.vn/x-1x1.png", "https://x.vn/x-1x1.png"},
		{"https://x.vn/x-12345x150.png", "https://x.vn/x-12345x150.png"},
		{"https://x.vn/photo-150x150-cover.jpg", "https://x.vn/photo-150x150-cover.jpg"},
		{"https://x.vn/photo.jpg", "https://x.vn/photo.jpg"},
		{"", fallbackImageUrl},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, highResImageUrl(tc.input), "input: %q", tc.input)
	}
}

func TestDedupByLinkLastWins(t *testing.T) {
	articles := []Article{
		{Title: "first", Link: "https://x.vn/a"},
		{Title: "other", Link: "https://x.vn/b"},
		{Title: "second", Link: "https://x.vn/a"},
	}

	deduped := dedupByLink(articles)
	require.Len(t, deduped, 2)
	require.Equal(t, "second", deduped[0].Title)
	require.Equal(t, "other", deduped[1].Title)
}

const sectionsFixture = `
<div class="elementor-1165">
  <section class="elementor-top-section">
    <h2 class="elementor-heading-title">Chiến dịch mùa hè</h2>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a href="https://x.vn/a">Bài A</a></h3>
      <div class="elementor-post__thumbnail"><img src="https://x.vn/a-300x200.jpg"></div>
      <div class="elementor-post__excerpt"><p>  Mô tả   A </p></div>
    </article>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a href="https://x.vn/b">Bài B</a></h3>
    </article>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a>Không có link</a></h3>
    </article>
  </section>
  <section class="elementor-top-section">
    <h2 class="elementor-heading-title"></h2>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a href="https://x.vn/c">Bị bỏ qua</a></h3>
    </article>
  </section>
  <section class="elementor-top-section">
    <h2 class="elementor-heading-title">Mục rỗng</h2>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a>Thiếu link</a></h3>
    </article>
  </section>
</div>`

func TestSectionsFromRoot(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/scraper")
	defer cleanup()

	doc := parseDocument(t, sectionsFixture)
	sections := sectionsFromRoot(doc.Find(".elementor-1165").First())

	// the blank-heading section and the section whose only article
	// has no link are both dropped
	require.Len(t, sections, 1)
	require.Equal(t, "Chiến dịch mùa hè", sections[0].Category)
	require.Len(t, sections[0].Articles, 2)

	a := sections[0].Articles[0]
	require.Equal(t, "Bài A", a.Title)
	require.Equal(t, "https://x.vn/a", a.Link)
	require.Equal(t, "https://x.vn/a.jpg", a.ImageUrl)
	require.Equal(t, "Mô tả A", a.Excerpt)

	b := sections[0].Articles[1]
	require.Equal(t, "Bài B", b.Title)
	require.Equal(t, fallbackImageUrl, b.ImageUrl)
	require.Equal(t, noExcerptPlaceholder, b.Excerpt)
}

func TestSectionsFromRootDedup(t *testing.T) {
	doc := parseDocument(t, `
<div class="root">
  <section class="elementor-top-section">
    <h2 class="elementor-heading-title">Tin</h2>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a href="https://x.vn/a">Cũ</a></h3>
    </article>
    <article class="elementor-post">
      <h3 class="elementor-post__title"><a href="https://x.vn/a">Mới</a></h3>
    </article>
  </section>
</div>`)

	sections := sectionsFromRoot(doc.Find(".root").First())
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)
	require.Equal(t, "Mới", sections[0].Articles[0].Title)
}

func TestArticleFromPostDataSrcFallback(t *testing.T) {
	doc := parseDocument(t, `
<article class="elementor-post">
  <h3 class="elementor-post__title"><a href="https://x.vn/a">Bài</a></h3>
  <div class="elementor-post__thumbnail"><img data-src="https://x.vn/lazy-150x150.jpg"></div>
</article>`)

	a, ok := articleFromPost(doc.Find("article").First())
	require.True(t, ok)
	require.Equal(t, "https://x.vn/lazy.jpg", a.ImageUrl)
}
