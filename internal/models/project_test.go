package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectValidate(t *testing.T) {
	p := Project{ID: "a", Name: "A", Color: ColorTeal, ImageType: ImageScreenshot,
		Links: map[LinkKind]string{LinkGitHub: "https://github.com/a"}}
	require.NoError(t, p.Validate())

	p.Links["myspace"] = "https://myspace.com"
	p.ImageType = "gif"
	err := p.Validate()
	require.ErrorContains(t, err, `unknown link kind "myspace"`)
	require.ErrorContains(t, err, `unknown image type "gif"`)

	require.ErrorContains(t, (&Project{}).Validate(), "id is required")
}

func TestColorValid(t *testing.T) {
	for _, c := range Palette {
		require.True(t, c.Valid(), c)
	}
	require.False(t, Color("mauve").Valid())
}

func TestProjectValidateCategories(t *testing.T) {
	base := Project{ID: "a", Name: "A", Color: ColorTeal, ImageType: ImageLogo}

	for _, tc := range []struct {
		categories []string
		wantErr    string
	}{
		{categories: []string{"web", "machine_learning"}},
		{categories: []string{"web", ""}, wantErr: "category slug is blank"},
		{categories: []string{"  "}, wantErr: "category slug is blank"},
		{categories: []string{"machine learning"}, wantErr: `category slug "machine learning" contains whitespace`},
		{categories: []string{"web\tapps"}, wantErr: "contains whitespace"},
	} {
		p := base
		p.Categories = tc.categories
		err := p.Validate()
		if tc.wantErr == "" {
			require.NoError(t, err, tc.categories)
			continue
		}
		require.ErrorContains(t, err, tc.wantErr, tc.categories)
	}
}

func TestProjectCloneSharesNothing(t *testing.T) {
	p := Project{
		ID:           "a",
		Features:     []string{"fast"},
		Technologies: []string{"go"},
		Categories:   []string{"web"},
		Links:        map[LinkKind]string{LinkGitHub: "https://github.com/a"},
	}
	c := p.Clone()
	c.Features[0] = "slow"
	c.Technologies[0] = "cobol"
	c.Categories[0] = "hacked"
	c.Links[LinkGitHub] = "https://evil.example"
	c.Links[LinkDemo] = "https://evil.example/demo"

	require.Equal(t, []string{"fast"}, p.Features)
	require.Equal(t, []string{"go"}, p.Technologies)
	require.Equal(t, []string{"web"}, p.Categories)
	require.Equal(t, map[LinkKind]string{LinkGitHub: "https://github.com/a"}, p.Links)
}
