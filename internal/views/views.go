// Package views renders the site's HTML pages as templ components.
//
// Components live in the .templ files next to this one; run `templ generate`
// after editing them.
package views

import (
	"strings"

	"dconn.dev/portfolio/internal/models"
)

// SiteName appears in titles and the navigation bar.
const SiteName = "Dylan Conn"

// ImagePrefix is where project images are served from.
const ImagePrefix = "/static/images/"

// Page describes the document wrapping a page body.
type Page struct {
	Title string
	Path  string
}

type navLink struct {
	href, label string
}

var nav = []navLink{
	{"/", "Home"},
	{"/about", "About"},
	{"/projects", "Projects"},
	{"/resume-bot", "Resume Bot"},
	{"/contact", "Contact"},
}

func pageTitle(page Page) string {
	if page.Title == "" {
		return SiteName
	}
	return page.Title + " | " + SiteName
}

// ImageSet holds the project image files that exist on disk. Cards only
// render an <img> for names in the set.
type ImageSet map[string]bool

// Has reports whether name can be served.
func (s ImageSet) Has(name string) bool {
	return name != "" && s[name]
}

func imageURL(name string) string {
	return ImagePrefix + name
}

// ProjectsView is the data behind the projects page.
type ProjectsView struct {
	Featured      *models.Project
	Projects      []models.Project
	Categories    []string
	CategoryLabel func(string) string
	Images        ImageSet
}

func (v ProjectsView) label(slug string) string {
	if v.CategoryLabel == nil {
		return slug
	}
	return v.CategoryLabel(slug)
}

// categoryAttr is matched by the filter script, which splits on spaces.
// Slugs never contain whitespace; the catalog rejects them.
func categoryAttr(categories []string) string {
	return strings.Join(categories, " ")
}

func longDescription(p *models.Project) string {
	if p.DescriptionLong != "" {
		return p.DescriptionLong
	}
	return p.DescriptionShort
}

type projectLink struct {
	label, url string
}

var linkLabels = map[models.LinkKind]string{
	models.LinkWebsite:  "Website",
	models.LinkDemo:     "Demo",
	models.LinkGitHub:   "GitHub",
	models.LinkAppStore: "App Store",
}

// linksOf returns the project's links in display order.
func linksOf(p *models.Project) []projectLink {
	var links []projectLink
	for _, kind := range models.LinkKinds {
		if url, ok := p.Link(kind); ok {
			links = append(links, projectLink{label: linkLabels[kind], url: url})
		}
	}
	return links
}
