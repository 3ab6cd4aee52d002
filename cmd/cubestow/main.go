// CubeStow — 3D Container Loading Optimizer
//
// A command-line tool for packing boxes into shipping containers using
// a block-building construction search.
//
// Build:
//   go build -o cubestow ./cmd/cubestow
//
// Examples:
//   cubestow -gen -types 10 -seed 40 -out instances.txt
//   cubestow -in instances.txt -index 0 -pdf load.pdf -xlsx manifest.xlsx
//   cubestow -import boxes.csv -filling bottom-up -compare
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/CubeStow/internal/engine"
	"github.com/piwi3910/CubeStow/internal/export"
	"github.com/piwi3910/CubeStow/internal/importer"
	"github.com/piwi3910/CubeStow/internal/instance"
	"github.com/piwi3910/CubeStow/internal/model"
	"github.com/piwi3910/CubeStow/internal/project"
	"github.com/piwi3910/CubeStow/internal/solver"
)

func main() {
	var (
		genFlag    = flag.Bool("gen", false, "generate instances instead of packing")
		genTypes   = flag.Int("types", 10, "box types per generated instance")
		genCount   = flag.Int("count", 1, "number of instances to generate")
		genSeed    = flag.Int64("seed", 40, "initial seed for the generator")
		outFile    = flag.String("out", "instances.txt", "output file for -gen")
		inFile     = flag.String("in", "", "instance file to pack")
		index      = flag.Int("index", 0, "instance index within the file")
		importFile = flag.String("import", "", "CSV or Excel box list to pack")
		contL      = flag.Int("cl", instance.ContainerL, "container length for -import")
		contW      = flag.Int("cw", instance.ContainerW, "container width for -import")
		contH      = flag.Int("ch", instance.ContainerH, "container height for -import")
		filling    = flag.String("filling", "", "filling policy: origin, bottom-up, or free")
		noStab     = flag.Bool("no-stability", false, "disable vertical stability")
		minFR      = flag.Float64("min-fr", 0, "minimum fill ratio for block joins")
		compare    = flag.Bool("compare", false, "compare filling policy scenarios")
		pdfOut     = flag.String("pdf", "", "write load diagrams to a PDF file")
		xlsxOut    = flag.String("xlsx", "", "write a placement manifest workbook")
		dxfOut     = flag.String("dxf", "", "write a 3D wireframe DXF file")
		labelsOut  = flag.String("labels", "", "write QR block labels to a PDF file")
		runSolver  = flag.Bool("solver", false, "also run the external reference solver")
		solverOut  = flag.String("solver-out", "solver-results", "output directory for solver runs")
	)
	flag.Parse()

	if err := run(runConfig{
		gen: *genFlag, genTypes: *genTypes, genCount: *genCount, genSeed: *genSeed,
		outFile: *outFile, inFile: *inFile, index: *index, importFile: *importFile,
		contL: *contL, contW: *contW, contH: *contH,
		filling: *filling, noStability: *noStab, minFillRatio: *minFR,
		compare: *compare,
		pdfOut:  *pdfOut, xlsxOut: *xlsxOut, dxfOut: *dxfOut, labelsOut: *labelsOut,
		runSolver: *runSolver, solverOut: *solverOut,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "cubestow:", err)
		os.Exit(1)
	}
}

type runConfig struct {
	gen                       bool
	genTypes, genCount        int
	genSeed                   int64
	outFile, inFile           string
	index                     int
	importFile                string
	contL, contW, contH       int
	filling                   string
	noStability               bool
	minFillRatio              float64
	compare                   bool
	pdfOut, xlsxOut           string
	dxfOut, labelsOut         string
	runSolver                 bool
	solverOut                 string
}

func run(cfg runConfig) error {
	if cfg.gen {
		instances := instance.Generate(instance.GenerateOptions{
			Types:       cfg.genTypes,
			Instances:   cfg.genCount,
			InitialSeed: cfg.genSeed,
		})
		if err := instance.WriteFile(cfg.outFile, instances); err != nil {
			return err
		}
		fmt.Printf("wrote %d instance(s) to %s\n", len(instances), cfg.outFile)
		return nil
	}

	inst, err := loadInstance(cfg)
	if err != nil {
		return err
	}

	appConfig, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	settings := model.DefaultSettings()
	appConfig.ApplyToSettings(&settings)
	if cfg.filling != "" {
		settings.Filling = model.FillingPolicy(cfg.filling)
	}
	if cfg.noStability {
		settings.VerticalStability = false
	}
	if cfg.minFillRatio > 0 {
		settings.MinFillRatio = cfg.minFillRatio
	}

	if cfg.compare {
		return runComparison(inst, settings)
	}

	packer := engine.New(settings)
	result := packer.Pack(inst)
	printSummary(inst, result)

	if cfg.pdfOut != "" {
		if err := export.ExportPDF(cfg.pdfOut, result, settings); err != nil {
			return err
		}
		fmt.Println("load diagrams:", cfg.pdfOut)
	}
	if cfg.xlsxOut != "" {
		if err := export.ExportExcel(cfg.xlsxOut, result); err != nil {
			return err
		}
		fmt.Println("manifest:", cfg.xlsxOut)
	}
	if cfg.dxfOut != "" {
		if err := export.ExportDXF(cfg.dxfOut, result); err != nil {
			return err
		}
		fmt.Println("wireframe:", cfg.dxfOut)
	}
	if cfg.labelsOut != "" {
		if err := export.ExportLabels(cfg.labelsOut, result); err != nil {
			return err
		}
		fmt.Println("labels:", cfg.labelsOut)
	}

	if cfg.runSolver {
		if cfg.inFile == "" {
			return fmt.Errorf("-solver requires an instance file (-in)")
		}
		runner := solver.NewRunner(appConfig.SolverPath)
		runner.TimeLimit = appConfig.SolverTimeLimit
		if err := runner.SolveAll(cfg.inFile, cfg.solverOut, cfg.index+1); err != nil {
			return err
		}
		fmt.Println("solver output:", cfg.solverOut)
	}
	return nil
}

func loadInstance(cfg runConfig) (model.Instance, error) {
	switch {
	case cfg.inFile != "":
		instances, err := instance.ReadFile(cfg.inFile)
		if err != nil {
			return model.Instance{}, err
		}
		if cfg.index < 0 || cfg.index >= len(instances) {
			return model.Instance{}, fmt.Errorf("instance index %d out of range (file has %d)", cfg.index, len(instances))
		}
		return instances[cfg.index], nil

	case cfg.importFile != "":
		var res importer.ImportResult
		if isExcel(cfg.importFile) {
			res = importer.ImportExcel(cfg.importFile)
		} else {
			res = importer.ImportCSV(cfg.importFile)
		}
		for _, w := range res.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				fmt.Fprintln(os.Stderr, "error:", e)
			}
			return model.Instance{}, fmt.Errorf("import failed with %d error(s)", len(res.Errors))
		}
		return model.Instance{
			ID: 1,
			L:  cfg.contL, W: cfg.contW, H: cfg.contH,
			Boxes: res.Boxes,
		}, nil

	default:
		return model.Instance{}, fmt.Errorf("nothing to do: use -gen, -in, or -import")
	}
}

func isExcel(path string) bool {
	n := len(path)
	return (n > 5 && path[n-5:] == ".xlsx") || (n > 4 && path[n-4:] == ".xls")
}

func runComparison(inst model.Instance, settings model.PackSettings) error {
	scenarios := engine.BuildDefaultScenarios(settings)
	results := engine.CompareScenarios(scenarios, inst)

	fmt.Printf("%-28s %8s %8s %8s %10s\n", "Scenario", "Blocks", "Boxes", "Left", "Fill %")
	for _, r := range results {
		fmt.Printf("%-28s %8d %8d %8d %9.1f%%\n",
			r.Scenario.Name, r.BlocksPlaced, r.BoxesPlaced, r.UnplacedCount, r.Result.Efficiency())
	}
	return nil
}

func printSummary(inst model.Instance, result model.PackResult) {
	fmt.Printf("container %dx%dx%d, %d box type(s), %d box(es) offered\n",
		inst.L, inst.W, inst.H, len(inst.Boxes), inst.Items().TotalCount())
	fmt.Printf("placed %d block(s), %d box(es), fill %.1f%%, weight %d\n",
		len(result.Placements), result.BoxesPlaced(), result.Efficiency(), result.Weight)
	if n := result.UnplacedCount(); n > 0 {
		fmt.Printf("%d box(es) left over\n", n)
	}
}
