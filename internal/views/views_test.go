package views

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/models"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestLayoutMarksActiveLink(t *testing.T) {
	got := renderString(t, Layout(Page{Title: "About", Path: "/about"}, About()))
	require.Contains(t, got, "<title>About | "+SiteName+"</title>")
	require.Contains(t, got, `<a href="/about" class="active" aria-current="page">About</a>`)
	require.Contains(t, got, "<h1>About Me</h1>")
}

func TestProjectsEscapesAndFilters(t *testing.T) {
	p := models.Project{
		ID:               "x",
		Name:             "<script>alert(1)</script>",
		DescriptionShort: "short",
		Categories:       []string{"web", "ai"},
		Color:            models.ColorRed,
		ImageType:        models.ImageLogo,
		Links:            map[models.LinkKind]string{models.LinkGitHub: "javascript:alert(1)"},
		Featured:         true,
	}
	got := renderString(t, Projects(ProjectsView{
		Featured:      &p,
		Projects:      []models.Project{p},
		Categories:    []string{"ai", "web"},
		CategoryLabel: strings.ToUpper,
	}))

	require.NotContains(t, got, "<script>alert(1)</script>")
	require.Contains(t, got, "&lt;script&gt;")
	require.NotContains(t, got, `href="javascript:`)
	require.Contains(t, got, `data-filter="ai">AI</button>`)
	require.Contains(t, got, `data-category="web ai"`)
}

func TestAppEmbedsSpace(t *testing.T) {
	got := renderString(t, App(&models.Project{Name: "Bot", Space: "https://dconn-bot.hf.space"}))
	require.Contains(t, got, `src="https://dconn-bot.hf.space"`)
	require.Contains(t, got, "<h1>Bot</h1>")
}

func TestNotFound(t *testing.T) {
	got := renderString(t, NotFound())
	require.Contains(t, got, "404")
	require.Contains(t, got, "Page not found")
}

func TestProjectCardImageOnlyWhenAvailable(t *testing.T) {
	p := models.Project{ID: "a", Name: "A", Image: "a.svg", ImageType: models.ImageScreenshot, Color: models.ColorBlue}

	got := renderString(t, Home([]models.Project{p}, ImageSet{"a.svg": true}))
	require.Contains(t, got, `<img src="/static/images/a.svg" alt="A" class="image-screenshot">`)
	require.Contains(t, got, `<article class="project-card color-blue">`)

	got = renderString(t, Home([]models.Project{p}, nil))
	require.NotContains(t, got, "<img")
	require.Contains(t, got, "<h3>A</h3>")

	p.Image = ""
	got = renderString(t, Home([]models.Project{p}, ImageSet{"": true}))
	require.NotContains(t, got, "<img")
}

func TestLayoutPropagatesBodyError(t *testing.T) {
	boom := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})
	err := Layout(Page{Path: "/"}, boom).Render(context.Background(), io.Discard)
	require.ErrorContains(t, err, "boom")
}

func TestContactFormPostsFields(t *testing.T) {
	got := renderString(t, Contact())
	require.Contains(t, got, `<form method="post" action="/contact">`)
	for _, name := range []string{"name", "email", "message"} {
		require.Contains(t, got, `name="`+name+`"`)
	}
}
