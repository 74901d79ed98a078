package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		catalogFile = ""
		strict = false
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogList(t *testing.T) {
	out, err := runCLI(t, "catalog", "list")
	require.NoError(t, err)

	var page struct {
		Featured   struct{ ID string } `json:"featured_project"`
		Categories []string            `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Equal(t, "mrparty", page.Featured.ID)
	require.Contains(t, page.Categories, "mobile")
}

func TestCatalogValidateStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	catalog := `projects:
  - {id: a, name: A, color: blue, image_type: logo, featured: true, order: 1}
  - {id: b, name: B, color: red, image_type: logo, featured: true, order: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	out, err := runCLI(t, "catalog", "validate", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "warning: 2 projects are featured")

	_, err = runCLI(t, "catalog", "validate", "--file", path, "--strict")
	require.ErrorContains(t, err, "2 projects are featured")
}

func TestCatalogValidateRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	catalog := `projects:
  - {id: a, name: A, color: blue, image_type: logo}
  - {id: a, name: A2, color: blue, image_type: logo}
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	_, err := runCLI(t, "catalog", "validate", "--file", path)
	require.ErrorContains(t, err, "duplicate project id")
}
