package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"medreportz/internal/config"
	"medreportz/internal/handler"
	"medreportz/internal/language/noop"
	"medreportz/internal/narrative"
	groqgen "medreportz/internal/narrative/groq"
	noopgen "medreportz/internal/narrative/noop"
	"medreportz/internal/pipeline"
	"medreportz/internal/port"
	"medreportz/internal/reference"
	"medreportz/internal/router"
	"medreportz/internal/service"
	"medreportz/internal/textextract"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Load the reference table once at startup; it is immutable afterwards.
	table, err := loadReferenceTable(cfg)
	if err != nil {
		return fmt.Errorf("failed to load reference table: %w", err)
	}
	log.Printf("Reference table loaded: %d tests", table.Size())

	// Register summary providers
	narrative.RegisterProvider("groq", func(pcfg *config.NarrativeProviderConfig) (port.SummaryGenerator, error) {
		return groqgen.NewGenerator(pcfg), nil
	})
	narrative.RegisterProvider("noop", func(pcfg *config.NarrativeProviderConfig) (port.SummaryGenerator, error) {
		return noopgen.NewGenerator(pcfg), nil
	})

	generator, err := buildGenerator(&cfg.Narrative)
	if err != nil {
		return fmt.Errorf("failed to initialize summary generator: %w", err)
	}

	// Initialize pipeline and collaborators
	p := pipeline.New(table)
	extractor := textextract.NewPlainExtractor()
	detector := noop.NewNoopDetector()

	// Initialize services
	reportSvc := service.NewReportService(p, extractor, detector, generator, &cfg.Upload)

	// Initialize handlers
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(table)

	// Setup router
	r := router.Setup(cfg, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func loadReferenceTable(cfg *config.Config) (*reference.Table, error) {
	if cfg.Reference.Path == "" {
		return reference.Defaults(), nil
	}
	return reference.LoadFile(cfg.Reference.Path)
}

// buildGenerator wires the configured primary provider, wrapped in a
// fallback chain with the secondary when one is configured.
func buildGenerator(cfg *config.NarrativeConfig) (port.SummaryGenerator, error) {
	primary, err := narrative.NewGenerator(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := narrative.NewGenerator(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return narrative.NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
