package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/billfold/billfold/internal/api/dto"
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/pdfgen"
	"github.com/billfold/billfold/internal/service"
)

// Renders a single document from a JSON payload file and writes the PDF
// next to it, without going through the HTTP server.
func main() {
	inputPath := flag.String("input", "", "path to a render payload JSON file")
	outDir := flag.String("out", ".", "directory to write the PDF into")
	flag.Parse()

	log := logger.L
	if *inputPath == "" {
		log.Fatalf("missing -input")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("failed to read payload: %v", err)
	}

	var req dto.RenderDocumentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatalf("failed to parse payload: %v", err)
	}

	svc := service.NewPDFService(
		cfg,
		pdfgen.NewEngine(cfg, log),
		httpclient.NewClientWithTimeout(cfg.Assets.LogoFetchTimeout),
		log,
	)

	artifact, err := svc.RenderDocument(context.Background(), &req)
	if err != nil {
		log.Fatalf("failed to render document: %v", err)
	}

	outPath := filepath.Join(*outDir, artifact.Filename())
	if err := os.WriteFile(outPath, artifact.Bytes(), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", outPath, err)
	}

	log.Infof("wrote %s (%d pages, %d bytes)", outPath, artifact.PageCount, artifact.Size())
}
