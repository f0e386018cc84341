package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/StairMason/internal/engine"
	"github.com/piwi3910/StairMason/internal/export"
	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// estimateOpts holds the command-line flags for the estimate command.
type estimateOpts struct {
	materials string // path to a material catalogue JSON (built-in if empty)
	pdfOut    string // write a PDF report to this path
	xlsxOut   string // write an XLSX bill of materials to this path
	dxfOut    string // write a DXF cut diagram to this path
	labelsOut string // write QR cut labels to this path
	compare   bool   // print alternative slab scenarios
}

// newEstimateCmd creates the estimate command. It reads a TOML job file,
// runs the full pipeline, prints a styled summary, and optionally writes
// report files.
func newEstimateCmd() *cobra.Command {
	opts := estimateOpts{}

	cmd := &cobra.Command{
		Use:   "estimate <job.toml>",
		Short: "Run a stair estimate from a job file",
		Long: `Run the full estimation pipeline on a TOML job file.

Examples:
  stairmason estimate garden.toml
  stairmason estimate garden.toml --pdf report.pdf --xlsx bom.xlsx
  stairmason estimate garden.toml --compare`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.materials, "materials", "m", "", "material catalogue JSON (default: built-in catalogue)")
	cmd.Flags().StringVar(&opts.pdfOut, "pdf", "", "write a PDF report")
	cmd.Flags().StringVar(&opts.xlsxOut, "xlsx", "", "write an XLSX bill of materials")
	cmd.Flags().StringVar(&opts.dxfOut, "dxf", "", "write a DXF cut diagram")
	cmd.Flags().StringVar(&opts.labelsOut, "labels", "", "write QR cut labels (PDF)")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "compare alternative slab sizes and cut policies")

	return cmd
}

// runEstimate executes the pipeline for one job file.
func runEstimate(ctx context.Context, jobPath string, opts *estimateOpts) error {
	logger := loggerFromContext(ctx)

	job, err := project.LoadJobFile(jobPath)
	if err != nil {
		return err
	}
	logger.Debugf("loaded job file %s", jobPath)

	catalogue, err := loadCatalogue(opts.materials)
	if err != nil {
		return err
	}
	logger.Debugf("catalogue has %d units", len(catalogue))

	settings, err := job.Settings(model.DefaultEstimateSettings(), catalogue)
	if err != nil {
		return err
	}

	estimator := engine.NewEstimator(settings)
	if len(job.Prices) > 0 {
		estimator.Prices = job.Prices.Lookup
	}

	prog := newProgress(logger)
	est, err := estimator.Estimate(job.Inputs(), catalogue)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Estimated %d steps", est.Plan.StepCount))

	printEstimate(job.Name, est)

	if opts.compare {
		printComparison(est)
	}

	return writeReports(est, opts)
}

// loadCatalogue loads a catalogue file, or the built-in units when no path
// is given.
func loadCatalogue(path string) ([]model.MaterialOption, error) {
	if path == "" {
		return model.DefaultMaterials(), nil
	}
	return project.LoadCatalogue(path)
}

// printEstimate renders the styled terminal summary.
func printEstimate(name string, est *model.Estimate) {
	if name == "" {
		name = "Stair estimate"
	}
	fmt.Println(StyleTitle.Render(name))

	printSection("Step plan")
	printKeyValue("Steps", fmt.Sprintf("%d", est.Plan.StepCount))
	printKeyValue("Regular step height", fmt.Sprintf("%.2f cm", est.Plan.RegularStepHeight))
	printKeyValue("First step height", fmt.Sprintf("%.2f cm", est.Plan.FirstStepHeight))
	printKeyValue("Step width", fmt.Sprintf("%.1f cm", est.Plan.StepWidth))
	printKeyValue("Total run length", fmt.Sprintf("%.1f cm", est.Plan.TotalLength))

	printSection("Courses")
	widths := []int{6, 12, 28, 8, 12}
	printHeaderRow(widths, "Step", "Height", "Material", "Stack", "Mortar")
	for i, c := range est.Courses {
		note := ""
		if c.NeedsCutting {
			note = " " + StyleWarning.Render("(cut)")
		}
		printRow(widths,
			fmt.Sprintf("%d", c.Step+1),
			fmt.Sprintf("%.2f cm", est.Plan.Steps[i].Height),
			c.MaterialName+note,
			fmt.Sprintf("%d", c.UnitsInStack),
			fmt.Sprintf("%.2f cm", c.MortarHeight),
		)
	}

	printSection("Masonry units")
	for _, c := range est.Totals.Counts {
		printKeyValue(c.MaterialName, fmt.Sprintf("%d units", c.Units))
	}
	printKeyValue("Mortar", fmt.Sprintf("%.1f kg", est.Totals.MortarKg))

	printSection("Finishing slabs")
	printKeyValue("Slab size", est.Settings.SlabSize)
	printKeyValue("Tread slabs", fmt.Sprintf("%d", est.Slabs.TotalStepSlabs))
	printKeyValue("Front slabs", fmt.Sprintf("%d", est.Slabs.TotalFrontSlabs))
	printKeyValue("Cuts", fmt.Sprintf("%d", est.Slabs.TotalCuts))
	for _, r := range est.Slabs.Results {
		printRow([]int{18, 60}, fmt.Sprintf("step %d %s", r.Step+1, r.Location), StyleDim.Render(r.Description))
	}
	if n := len(est.Slabs.LeftoverWaste); n > 0 {
		printWarning("%d waste piece(s) left over", n)
	}

	if len(est.Pricing) > 0 {
		printSection("Cost (informational)")
		for _, line := range est.Pricing {
			printKeyValue(line.MaterialName, fmt.Sprintf("%d x %.2f = %.2f", line.Units, line.PricePerUnit, line.Total))
		}
		printKeyValue("Total", fmt.Sprintf("%.2f", est.PricedTotal()))
	}
	fmt.Println()
}

// printComparison runs and renders the alternative slab scenarios.
func printComparison(est *model.Estimate) {
	scenarios := engine.BuildDefaultScenarios(est.Settings)
	results := engine.CompareScenarios(scenarios, est.Plan, est.Inputs.Overhang, est.Inputs.Sides)

	printSection("Alternatives")
	widths := []int{30, 10, 8, 10}
	printHeaderRow(widths, "Scenario", "Slabs", "Cuts", "Waste")
	for _, r := range results {
		printRow(widths,
			r.Scenario.Name,
			fmt.Sprintf("%d", r.Plan.TotalSlabs()),
			fmt.Sprintf("%d", r.Plan.TotalCuts),
			fmt.Sprintf("%d", len(r.Plan.LeftoverWaste)),
		)
	}
}

// writeReports writes every requested export file.
func writeReports(est *model.Estimate, opts *estimateOpts) error {
	type job struct {
		path string
		run  func(string) error
	}
	jobs := []job{
		{opts.pdfOut, func(p string) error { return export.ExportPDF(p, est) }},
		{opts.xlsxOut, func(p string) error { return export.ExportExcel(p, est) }},
		{opts.dxfOut, func(p string) error { return export.ExportDXF(p, est.Slabs) }},
		{opts.labelsOut, func(p string) error { return export.ExportLabels(p, est.Slabs) }},
	}

	wrote := false
	for _, j := range jobs {
		if j.path == "" {
			continue
		}
		if err := j.run(j.path); err != nil {
			return err
		}
		printFile(j.path)
		wrote = true
	}
	if wrote {
		printSuccess("reports written")
	}
	return nil
}
