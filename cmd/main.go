package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fyne.io/fyne/v2/app"

	"airport-analyser/controller"
	"airport-analyser/services/analysis"
	"airport-analyser/services/ingest"
	"airport-analyser/utils"
	"airport-analyser/views"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "config/analyser.yaml", "path to analyser.yaml")
	referencePath := flag.String("reference", "", "optional reference data YAML (airports, airlines, destinations)")
	logFile := flag.String("log", "", "optional log file path (stderr is always included)")
	logLevel := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	viewer := flag.String("viewer", "", "window|png (overrides chart.viewer)")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.INFO, *logFile)
	defer logger.Close()

	// ── Load configs ─────────────────────────────────────────────────
	cfg, err := utils.LoadAnalyserConfig(*configPath)
	if err != nil {
		utils.L().Fatal("load analyser config: %v", err)
	}
	if *viewer != "" {
		cfg.Chart.Viewer = *viewer
		if err := cfg.Validate(); err != nil {
			utils.L().Fatal("%v", err)
		}
	}
	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logger.SetLevel(utils.ParseLogLevel(level))

	ref, err := utils.LoadReference(*referencePath)
	if err != nil {
		utils.L().Fatal("load reference data: %v", err)
	}
	utils.L().Info("reference data: airports [%s]  ·  airlines [%s]",
		strings.Join(ref.AirportCodes(), " "), strings.Join(ref.AirlineCodes(), " "))

	if !filepath.IsAbs(cfg.Paths.DataDir) {
		if abs, err := filepath.Abs(cfg.Paths.DataDir); err == nil {
			cfg.Paths.DataDir = abs
		}
	}
	utils.L().Info("data dir %s  ·  results %s  ·  viewer %s  ·  policy %s",
		cfg.Paths.DataDir, cfg.Paths.ResultsFile, cfg.Chart.Viewer, cfg.Metrics.FieldPolicy)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		utils.L().Info("received signal: %v, exiting", sig)
		logger.Close()
		os.Exit(130)
	}()

	// ── Assembly ─────────────────────────────────────────────────────
	//
	//  stdin ──► SessionController ──► DeparturesReader  (RecordTable)
	//                 │            ──► analysis.ComputeMetrics
	//                 │            ──► ReportController ──► results.txt [+ csv, pdf]
	//                 └──────────────► ChartRenderer ──► Viewer (window | png)
	reports := controller.NewReportController(cfg)
	deps := controller.SessionDeps{
		In:        os.Stdin,
		Out:       os.Stdout,
		Reference: ref,
		Validator: controller.NewValidator(ref, cfg.Years.Min, cfg.Years.Max),
		Loader:    ingest.NewDeparturesReader(cfg.Paths.DataDir),
		Saver:     reports,
		Metrics: analysis.Options{
			Policy:      cfg.Metrics.FieldPolicy,
			WindowHours: cfg.Metrics.WindowHours,
		},
	}

	if cfg.Chart.Viewer == "png" {
		deps.Chart = views.NewChartRenderer(cfg.Chart, cfg.Metrics.WindowHours, views.NewPNGViewer(cfg.Chart.PNGDir))
		err = runSession(deps, reports)
	} else {
		err = runWithWindow(deps, reports, cfg)
	}
	if err != nil {
		utils.L().Fatal("%v", err)
	}
}

// runWithWindow keeps the Fyne event loop on the main goroutine and runs the
// console session beside it; each chart hands over to the loop and waits.
func runWithWindow(deps controller.SessionDeps, reports *controller.ReportController, cfg *utils.AnalyserConfig) error {
	a := app.NewWithID("com.airport.analyser")
	fv := views.NewFyneViewer(a)
	deps.Chart = views.NewChartRenderer(cfg.Chart, cfg.Metrics.WindowHours, fv)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runSession(deps, reports)
		fv.Quit()
	}()
	a.Run()

	select {
	case err := <-errCh:
		return err
	default:
		fmt.Fprintln(os.Stderr, "chart window closed, ending session")
		return nil
	}
}

// runSession drives one console session to completion.
func runSession(deps controller.SessionDeps, reports *controller.ReportController) error {
	sc := controller.NewSessionController(deps)
	err := sc.Run()
	utils.L().Info("session ended  (iterations=%d, reports saved=%d)", sc.Iterations(), reports.Saved())
	return err
}
