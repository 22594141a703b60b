package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/artem13815/hr/screening/pkg/analysis"
	"github.com/artem13815/hr/screening/pkg/config"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/resume"
	"github.com/artem13815/hr/screening/pkg/storage"
)

// openEngine loads config, opens the configured store and restores the model.
// Logs go to stderr so stdout stays machine-readable.
func openEngine(ctx context.Context, stderr io.Writer) (*analysis.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(stderr, cfg.AppEnv, cfg.LogLevel)
	opened, err := storage.OpenModelStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	engine := analysis.NewEngine(opened.Store, analysis.WithLogger(log))
	if err := engine.Load(ctx); err != nil {
		log.Warn("could not load persisted model, starting unfitted", "err", err)
	}
	return engine, opened.Close, nil
}

// readResume extracts text from a PDF/DOCX resume; .txt files are read as is.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return string(data), nil
	}
	text, err := resume.ParseResumeText(path, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

