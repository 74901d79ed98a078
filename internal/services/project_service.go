package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dconn.dev/portfolio/internal/models"
)

// DefaultFeaturedCount is how many projects the home page shows
const DefaultFeaturedCount = 3

// ProjectService handles project-related operations over an immutable catalog
type ProjectService struct {
	projects      []models.Project
	byOrder       []models.Project
	categories    []string
	categoryNames map[string]string
}

// ProjectsPage is the view data of the projects page
type ProjectsPage struct {
	Featured   *models.Project  `json:"featured_project,omitempty"`
	Projects   []models.Project `json:"projects"`
	Categories []string         `json:"categories"`
}

// NewProjectService creates a new ProjectService.
// The list is copied; ids must be unique and every record must validate.
func NewProjectService(list *models.ProjectList) (*ProjectService, error) {
	s := &ProjectService{
		categoryNames: map[string]string{},
	}
	if list == nil {
		return s, nil
	}

	seen := make(map[string]bool, len(list.Projects))
	for i := range list.Projects {
		p := list.Projects[i].Clone()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
		s.projects = append(s.projects, p)
	}

	s.byOrder = cloneAll(s.projects)
	slices.SortStableFunc(s.byOrder, func(a, b models.Project) int {
		return cmp.Compare(a.Order, b.Order)
	})

	for _, p := range s.projects {
		s.categories = append(s.categories, p.Categories...)
	}
	slices.Sort(s.categories)
	s.categories = slices.Compact(s.categories)

	for slug, name := range list.CategoryNames {
		s.categoryNames[slug] = name
	}
	return s, nil
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return cloneAll(s.projects)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i].Clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// EmbeddedApp returns the project behind /app/{id}. Unknown ids and projects
// without a hosted space are both ErrAppUnavailable.
func (s *ProjectService) EmbeddedApp(id string) (*models.Project, error) {
	p, err := s.GetByID(id)
	if err != nil || !p.HasSpace() {
		return nil, fmt.Errorf("%w: %s", ErrAppUnavailable, id)
	}
	return p, nil
}

// FeaturedForHome returns up to maxCount projects: flagged ones first in
// catalog order, then the lowest ordered remaining projects.
func (s *ProjectService) FeaturedForHome(maxCount int) []models.Project {
	if maxCount <= 0 {
		return []models.Project{}
	}

	result := make([]models.Project, 0, maxCount)
	picked := make(map[string]bool)
	for _, p := range s.projects {
		if p.Featured {
			result = append(result, p.Clone())
			picked[p.ID] = true
		}
	}

	for _, p := range s.byOrder {
		if len(result) >= maxCount {
			break
		}
		if picked[p.ID] {
			continue
		}
		result = append(result, p.Clone())
		picked[p.ID] = true
	}

	if len(result) > maxCount {
		result = result[:maxCount]
	}
	return result
}

// ProjectsPage builds the projects page view
func (s *ProjectService) ProjectsPage() ProjectsPage {
	page := ProjectsPage{
		Projects:   cloneAll(s.byOrder),
		Categories: slices.Clone(s.categories),
	}
	if page.Categories == nil {
		page.Categories = []string{}
	}
	for i := range s.projects {
		if s.projects[i].Featured {
			p := s.projects[i].Clone()
			page.Featured = &p
			break
		}
	}
	return page
}

// Categories returns every category slug, sorted and deduplicated
func (s *ProjectService) Categories() []string {
	return slices.Clone(s.categories)
}

// CategoryLabel returns the display name of a category slug
func (s *ProjectService) CategoryLabel(slug string) string {
	if name, ok := s.categoryNames[slug]; ok {
		return name
	}
	// Casers keep state, so one is built per call.
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "_", " "))
}

// FeaturedCount returns how many projects carry the featured flag.
// Only the first one is used for the projects page.
func (s *ProjectService) FeaturedCount() int {
	n := 0
	for _, p := range s.projects {
		if p.Featured {
			n++
		}
	}
	return n
}

// cloneAll deep-copies projects so callers never share catalog storage
func cloneAll(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i := range projects {
		out[i] = projects[i].Clone()
	}
	return out
}
