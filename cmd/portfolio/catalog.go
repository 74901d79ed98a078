package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/services"
)

var (
	catalogFile string
	strict      bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the project catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the projects page view as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := loadCatalog()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(projects.ProjectsPage(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for errors",
	Long: `Loads the catalog and reports problems. Duplicate ids and unknown
colors, image types or link kinds are always errors. More than one featured
project is a warning, or an error with --strict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if n := projects.FeaturedCount(); n > 1 {
			if strict {
				return fmt.Errorf("%d projects are featured, want at most 1", n)
			}
			fmt.Fprintf(out, "warning: %d projects are featured; only the first is shown on the projects page\n", n)
		}
		fmt.Fprintf(out, "ok: %d projects, %d categories\n", len(projects.GetAll()), len(projects.Categories()))
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogFile, "file", "", "catalog file (default: embedded catalog)")
	catalogValidateCmd.Flags().BoolVar(&strict, "strict", false, "fail when more than one project is featured")
	catalogCmd.AddCommand(catalogListCmd, catalogValidateCmd)
}

func loadCatalog() (*services.ProjectService, error) {
	list, err := config.LoadProjects(catalogFile)
	if err != nil {
		return nil, err
	}
	return services.NewProjectService(list)
}
