package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"govolunteer-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type newsSite struct {
	mu       sync.Mutex
	requests []time.Time
	paths    []string
}

func (n *newsSite) record(r *http.Request) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requests = append(n.requests, time.Now())
	n.paths = append(n.paths, r.URL.Path)
}

func newsPage(maxPage int, articles ...string) string {
	page := `<div class="elementor-1096">`
	for _, a := range articles {
		page += fmt.Sprintf(`
<article class="elementor-post">
  <h3 class="elementor-post__title"><a href="%s">Bài viết %s</a></h3>
</article>`, a, a)
	}
	page += `</div>`
	if maxPage > 0 {
		page += fmt.Sprintf(`<div class="e-load-more-anchor" data-max-page="%d"></div>`, maxPage)
	}
	return page
}

func TestNewsPagination(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/scraper")
	defer cleanup()

	site := &newsSite{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.record(r)
		switch r.URL.Path {
		case "/news/":
			fmt.Fprint(w, newsPage(3, "/a", "/b"))
		case "/news/2/":
			fmt.Fprint(w, newsPage(0, "/b", "/c"))
		case "/news/3/":
			fmt.Fprint(w, newsPage(0, "/d"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	delay := 30 * time.Millisecond
	svc := NewService(Options{BaseUrl: ts.URL, PageDelay: delay})

	sections := svc.News(context.Background())

	require.Equal(t, []string{"/news/", "/news/2/", "/news/3/"}, site.paths)
	for i := 1; i < len(site.requests); i++ {
		require.GreaterOrEqual(t, site.requests[i].Sub(site.requests[i-1]), delay)
	}

	require.Len(t, sections, 1)
	require.Equal(t, newsCategory, sections[0].Category)
	// /b shows up on both pages but is kept once
	require.Len(t, sections[0].Articles, 4)

	links := []string{}
	for _, a := range sections[0].Articles {
		links = append(links, a.Link)
	}
	require.Equal(t, []string{"/a", "/b", "/c", "/d"}, links)
}

func TestNewsSinglePageDefault(t *testing.T) {
	site := &newsSite{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.record(r)
		fmt.Fprint(w, newsPage(0, "/a"))
	}))
	defer ts.Close()

	svc := NewService(Options{BaseUrl: ts.URL, PageDelay: time.Millisecond})
	sections := svc.News(context.Background())

	require.Equal(t, []string{"/news/"}, site.paths)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)
}

func TestNewsFetchFailureKeepsCollectedPages(t *testing.T) {
	site := &newsSite{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.record(r)
		switch r.URL.Path {
		case "/news/":
			fmt.Fprint(w, newsPage(3, "/a"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	svc := NewService(Options{BaseUrl: ts.URL, PageDelay: time.Millisecond})
	sections := svc.News(context.Background())

	// pagination stops on the failed page 2, page 3 is never fetched
	require.Equal(t, []string{"/news/", "/news/2/"}, site.paths)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)
}

func TestNewsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="elementor-1096"></div>`)
	}))
	defer ts.Close()

	svc := NewService(Options{BaseUrl: ts.URL, PageDelay: time.Millisecond})
	require.Empty(t, svc.News(context.Background()))
}
