package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/models"
)

func project(id string, order int, featured bool, categories ...string) models.Project {
	return models.Project{
		ID:         id,
		Name:       id,
		Color:      models.ColorBlue,
		ImageType:  models.ImageLogo,
		Categories: categories,
		Featured:   featured,
		Order:      order,
	}
}

func newService(t *testing.T, projects ...models.Project) *ProjectService {
	t.Helper()
	s, err := NewProjectService(&models.ProjectList{Projects: projects})
	require.NoError(t, err)
	return s
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFeaturedForHome(t *testing.T) {
	tests := []struct {
		name     string
		projects []models.Project
		max      int
		want     []string
	}{
		{
			name: "empty catalog",
			max:  3,
			want: []string{},
		},
		{
			name: "no featured takes lowest order with catalog tie break",
			projects: []models.Project{
				project("d", 4, false),
				project("b", 2, false),
				project("c", 2, false),
				project("a", 1, false),
			},
			max:  3,
			want: []string{"a", "b", "c"},
		},
		{
			name: "featured first then order fill without duplicates",
			projects: []models.Project{
				project("a", 1, false),
				project("b", 2, false),
				project("z", 9, true),
			},
			max:  3,
			want: []string{"z", "a", "b"},
		},
		{
			name: "more featured than max keeps catalog order and skips fill",
			projects: []models.Project{
				project("low", 0, false),
				project("f1", 5, true),
				project("f2", 4, true),
				project("f3", 3, true),
				project("f4", 2, true),
			},
			max:  3,
			want: []string{"f1", "f2", "f3"},
		},
		{
			name: "catalog smaller than max",
			projects: []models.Project{
				project("b", 2, false),
				project("a", 1, true),
			},
			max:  3,
			want: []string{"a", "b"},
		},
		{
			name:     "non positive max",
			projects: []models.Project{project("a", 1, true)},
			max:      0,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t, tt.projects...)
			got := ids(s.FeaturedForHome(tt.max))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FeaturedForHome() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFeaturedForHomeLengthAndUniqueness(t *testing.T) {
	catalog := []models.Project{
		project("a", 3, true),
		project("b", 1, false),
		project("c", 1, true),
		project("d", 0, false),
		project("e", 2, false),
	}
	for size := 0; size <= len(catalog); size++ {
		s := newService(t, catalog[:size]...)
		for m := 1; m <= 6; m++ {
			got := s.FeaturedForHome(m)
			require.Len(t, got, min(m, size))

			seen := map[string]bool{}
			for _, p := range got {
				require.False(t, seen[p.ID], "duplicate %s", p.ID)
				seen[p.ID] = true
			}
		}
	}
}

func TestProjectsPage(t *testing.T) {
	s := newService(t,
		project("c", 3, false, "web", "python"),
		project("a", 1, true, "mobile"),
		project("b", 1, true, "web", "ai"),
		project("d", 0, false),
	)

	page := s.ProjectsPage()
	require.NotNil(t, page.Featured)
	require.Equal(t, "a", page.Featured.ID)
	if diff := cmp.Diff([]string{"d", "a", "b", "c"}, ids(page.Projects)); diff != "" {
		t.Fatalf("Projects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ai", "mobile", "python", "web"}, page.Categories); diff != "" {
		t.Fatalf("Categories mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, s.FeaturedCount())
}

func TestProjectsPageWithoutFeatured(t *testing.T) {
	s := newService(t, project("a", 1, false))
	page := s.ProjectsPage()
	require.Nil(t, page.Featured)
	require.Empty(t, page.Categories)
	require.NotNil(t, page.Categories)
}

func TestGetByID(t *testing.T) {
	s := newService(t, project("a", 1, false), project("b", 2, false))

	p, err := s.GetByID("b")
	require.NoError(t, err)
	require.Equal(t, "b", p.ID)

	_, err = s.GetByID("nonexistent")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestEmbeddedApp(t *testing.T) {
	withSpace := project("bot", 1, false)
	withSpace.Space = "https://example.hf.space"
	s := newService(t, withSpace, project("plain", 2, false))

	p, err := s.EmbeddedApp("bot")
	require.NoError(t, err)
	require.Equal(t, "https://example.hf.space", p.Space)

	for _, id := range []string{"plain", "missing"} {
		_, err := s.EmbeddedApp(id)
		require.ErrorIs(t, err, ErrAppUnavailable, id)
		require.False(t, errors.Is(err, ErrProjectNotFound))
	}
}

func TestNewProjectServiceRejectsInvalidCatalog(t *testing.T) {
	_, err := NewProjectService(&models.ProjectList{Projects: []models.Project{
		project("a", 1, false),
		project("a", 2, false),
	}})
	require.ErrorContains(t, err, `duplicate project id "a"`)

	bad := project("x", 1, false)
	bad.Color = "mauve"
	_, err = NewProjectService(&models.ProjectList{Projects: []models.Project{bad}})
	require.ErrorContains(t, err, "unknown color")
}

func TestCategoryLabel(t *testing.T) {
	s, err := NewProjectService(&models.ProjectList{
		CategoryNames: map[string]string{"web": "Web Development"},
	})
	require.NoError(t, err)
	require.Equal(t, "Web Development", s.CategoryLabel("web"))
	require.Equal(t, "Machine Learning", s.CategoryLabel("machine_learning"))
}

func TestCatalogUnchangedByCallers(t *testing.T) {
	a := project("a", 1, true, "web")
	a.Technologies = []string{"go"}
	a.Links = map[models.LinkKind]string{models.LinkGitHub: "https://github.com/a"}
	input := &models.ProjectList{Projects: []models.Project{a}}
	s, err := NewProjectService(input)
	require.NoError(t, err)

	// the input list is copied at construction
	input.Projects[0].Categories[0] = "changed"
	input.Projects[0].Links[models.LinkGitHub] = "https://changed.example"

	page := s.ProjectsPage()
	page.Projects[0].Categories[0] = "hacked"
	page.Projects[0].Links[models.LinkGitHub] = "https://evil.example"
	page.Featured.Technologies[0] = "cobol"

	home := s.FeaturedForHome(DefaultFeaturedCount)
	home[0].Links[models.LinkDemo] = "https://evil.example/demo"

	all := s.GetAll()
	all[0].Categories = append(all[0].Categories[:0], "gone")

	byID, err := s.GetByID("a")
	require.NoError(t, err)
	byID.Technologies[0] = "fortran"

	got, err := s.GetByID("a")
	require.NoError(t, err)
	require.Equal(t, []string{"web"}, got.Categories)
	require.Equal(t, []string{"go"}, got.Technologies)
	require.Equal(t, map[models.LinkKind]string{models.LinkGitHub: "https://github.com/a"}, got.Links)
	require.Equal(t, []string{"web"}, s.Categories())
}
