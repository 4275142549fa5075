package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"govolunteer-backend/lib/telemetry"
	"govolunteer-backend/services/scraper"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setup(t testing.TB, site http.HandlerFunc) (*echo.Echo, string) {
	cleanup := telemetry.SetupForTesting(t, "test:services/scraper/server")
	t.Cleanup(cleanup)

	ts := httptest.NewServer(site)
	t.Cleanup(ts.Close)

	svc := scraper.NewService(scraper.Options{BaseUrl: ts.URL})
	e := echo.New()
	Register(e, svc)
	return e, ts.URL
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNews(t *testing.T) {
	e, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="elementor-1096">
<article class="elementor-post">
  <h3 class="elementor-post__title"><a href="/a">Bài viết A</a></h3>
</article>
</div>`)
	})

	rec := get(e, "/news")
	require.Equal(t, http.StatusOK, rec.Code)

	var sections []scraper.CategorySection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)
	require.Equal(t, "Bài viết A", sections[0].Articles[0].Title)
}

func TestNewsUnavailable(t *testing.T) {
	e, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	rec := get(e, "/news")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSkills(t *testing.T) {
	e, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/skills/", r.URL.Path)
		fmt.Fprint(w, `<div class="elementor-1181">
<section class="elementor-top-section">
  <h2 class="elementor-heading-title">Kỹ năng mềm</h2>
  <article class="elementor-post">
    <h3 class="elementor-post__title"><a href="/ky-nang">Giao tiếp</a></h3>
  </article>
</section>
</div>`)
	})

	rec := get(e, "/skills")
	require.Equal(t, http.StatusOK, rec.Code)

	var sections []scraper.CategorySection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	require.Len(t, sections, 1)
	require.Equal(t, "Kỹ năng mềm", sections[0].Category)
}

func TestSkillsEmpty(t *testing.T) {
	e, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="elementor-1181"></div>`)
	})

	rec := get(e, "/skills")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestArticle(t *testing.T) {
	e, base := setup(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="elementor-widget-theme-post-content">
<div class="elementor-widget-container"><p>Nội dung bài viết.</p></div>
</div>`)
	})

	rec := get(e, "/article?url="+base+"/bai-viet/")
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Contains(t, res["html_content"], "Nội dung bài viết.")
}

func TestArticleRejectsForeignUrl(t *testing.T) {
	e, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := get(e, "/article?url=https://evil.example.com/bai-viet/")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(e, "/article")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleNoContent(t *testing.T) {
	e, base := setup(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="elementor-1096"></div>`)
	})

	rec := get(e, "/article?url="+base+"/bai-viet/")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
