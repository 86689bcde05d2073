package main

import (
	"log"
	"os"

	"github.com/david/name-dictionary/internal/dictionary"
	"github.com/david/name-dictionary/internal/report"
)

func main() {
	cfg, err := dictionary.DefaultConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	console := report.NewConsole(os.Stdout, cfg.Samples)
	pipeline := dictionary.NewPipeline(cfg, console)

	if _, err := pipeline.Run(); err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}
}
