package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/extract"
	"github.com/ruking/advancement-etl/load"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/transform"
	"github.com/ruking/advancement-etl/utils"
)

// PipelineRunner wires the extract, transform and load phases together and
// drives one run of the advancement data cleaning pipeline.
type PipelineRunner struct {
	cfg         config.PipelineConfig
	logger      *utils.ETLLogger
	extractor   *extract.Extractor
	loadManager *load.LoadManager
}

// NewPipelineRunner creates a runner from the resolved configuration.
func NewPipelineRunner(cfg config.PipelineConfig) (*PipelineRunner, error) {
	logger, err := utils.NewETLLogger(cfg.LogDir, cfg.EnableDetailedLogging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return &PipelineRunner{
		cfg:         cfg,
		logger:      logger,
		extractor:   extract.NewExtractor(cfg, logger),
		loadManager: load.NewLoadManager(cfg, logger),
	}, nil
}

// Execute performs one full run: load and clean every source extract, build
// the star schema, export the cleaned and renamed files, report the summary.
func (r *PipelineRunner) Execute() error {
	runLog := models.NewRunLog()
	issues := models.NewIssueLog()

	r.logger.LogRunStart(runLog.RunID, r.cfg.InputDir)

	tables, err := r.extractor.Extract(issues)
	if err != nil {
		runLog.Fail(err.Error())
		r.logger.LogSummary(runLog, issues)
		return fmt.Errorf("extract phase: %w", err)
	}
	runLog.SourcesRead = len(tables)

	transformer := transform.NewTransformer(r.logger, issues)
	schema := transformer.Transform(tables, runLog)

	if err := r.loadManager.Load(schema, runLog); err != nil {
		runLog.Fail(err.Error())
		r.logger.LogSummary(runLog, issues)
		return fmt.Errorf("load phase: %w", err)
	}

	runLog.Complete()
	r.logger.LogSummary(runLog, issues)
	return nil
}

// StartScheduler re-runs the pipeline on the configured interval until the
// context is cancelled.
func (r *PipelineRunner) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Starting pipeline scheduler with interval %v", r.cfg.RunInterval)

	_, err := scheduler.Every(r.cfg.RunInterval).Do(func() {
		r.logger.Info("Scheduled pipeline run starting")
		if err := r.Execute(); err != nil {
			r.logger.Error("Scheduled run failed: %v", err)
		}
	})
	if err != nil {
		r.logger.Error("Failed to configure scheduler: %v", err)
		return
	}

	scheduler.StartAsync()

	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("Pipeline scheduler stopped")
}

// RunOnce performs a single pipeline run and exits.
func RunOnce(cfg config.PipelineConfig) {
	runner, err := NewPipelineRunner(cfg)
	if err != nil {
		log.Fatalf("Failed to create pipeline runner: %v", err)
	}

	if err := runner.Execute(); err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}
}

// RunScheduled runs the pipeline on a schedule until interrupted.
func RunScheduled(cfg config.PipelineConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signalCh
		log.Println("Shutdown signal received, stopping pipeline runner...")
		cancel()
	}()

	runner, err := NewPipelineRunner(cfg)
	if err != nil {
		log.Fatalf("Failed to create pipeline runner: %v", err)
	}

	runner.StartScheduler(ctx)
}

func main() {
	modePtr := flag.String("mode", "once", "Run mode: once or scheduled")
	inputPtr := flag.String("input", "", "Input directory holding the raw CSV extracts (overrides config)")
	outputPtr := flag.String("output", "", "Output directory for the cleaned files (overrides config)")
	renamedPtr := flag.String("renamed", "", "Output directory for the renamed model files (overrides config)")
	verbosePtr := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	cfg := config.GetConfig()
	if *inputPtr != "" {
		cfg.InputDir = *inputPtr
	}
	if *outputPtr != "" {
		cfg.OutputDir = *outputPtr
	}
	if *renamedPtr != "" {
		cfg.RenamedDir = *renamedPtr
	}
	if *verbosePtr {
		cfg.EnableDetailedLogging = true
	}

	log.Println("Starting advancement pipeline in mode:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce(cfg)
	case "scheduled":
		RunScheduled(cfg)
	default:
		log.Println("Unknown mode:", *modePtr)
		log.Println("Available modes: once, scheduled")
		os.Exit(1)
	}

	log.Println("Pipeline runner finished")
}
