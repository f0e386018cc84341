package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/StairMason/internal/importer"
	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// newMaterialsCmd creates the materials command with list and import
// subcommands.
func newMaterialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Inspect and manage the masonry unit catalogue",
	}

	cmd.AddCommand(newMaterialsListCmd())
	cmd.AddCommand(newMaterialsImportCmd())

	return cmd
}

// newMaterialsListCmd lists the catalogue units.
func newMaterialsListCmd() *cobra.Command {
	var cataloguePath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the masonry unit catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := loadCatalogue(cataloguePath)
			if err != nil {
				return err
			}
			printMaterials(catalogue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cataloguePath, "materials", "m", "", "material catalogue JSON (default: built-in catalogue)")
	return cmd
}

// newMaterialsImportCmd converts a CSV or Excel unit list into a catalogue
// JSON file.
func newMaterialsImportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "import <units.csv|units.xlsx>",
		Short: "Import masonry units from CSV or Excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var result importer.ImportResult
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".xlsx", ".xls":
				result = importer.ImportExcel(args[0])
			default:
				result = importer.ImportCSV(args[0])
			}

			for _, w := range result.Warnings {
				logger.Warn(w)
			}
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					logger.Error(e)
				}
				return fmt.Errorf("%d row(s) could not be imported", len(result.Errors))
			}

			if out == "" {
				printMaterials(result.Materials)
				return nil
			}
			if err := project.SaveCatalogue(out, result.Materials); err != nil {
				return err
			}
			printSuccess("imported %d unit(s)", len(result.Materials))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write catalogue JSON here instead of printing")
	return cmd
}

// printMaterials renders the catalogue as a table.
func printMaterials(materials []model.MaterialOption) {
	widths := []int{28, 8, 10, 10, 10}
	printHeaderRow(widths, "Name", "Kind", "Height", "Width", "Length")
	for _, m := range materials {
		printRow(widths,
			m.Name,
			string(m.Kind),
			fmt.Sprintf("%.1f cm", m.CourseHeight),
			fmt.Sprintf("%.1f cm", m.Width),
			fmt.Sprintf("%.1f cm", m.Length),
		)
	}
}
