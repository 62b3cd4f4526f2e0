package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/benyaminbatau/journal-app/internal/assemble"
	"github.com/benyaminbatau/journal-app/internal/config"
	"github.com/benyaminbatau/journal-app/internal/enhance"
	"github.com/benyaminbatau/journal-app/internal/pipeline"
	"github.com/benyaminbatau/journal-app/internal/reference"
	"github.com/benyaminbatau/journal-app/internal/thesis"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	settings := thesis.DefaultSettings()
	flag.StringVar(&settings.OutputFormat, "format", settings.OutputFormat, "output format: docx or pdf")
	flag.StringVar(&settings.AIProvider, "provider", settings.AIProvider, "AI provider: claude or gpt4")
	flag.BoolVar(&settings.UseAI, "ai", settings.UseAI, "enhance content with AI")
	flag.IntVar(&settings.MinReferences, "min-references", settings.MinReferences, "minimum reference count")
	flag.StringVar(&settings.AuthorName, "author", settings.AuthorName, "primary author name")
	flag.StringVar(&settings.Coauthors, "coauthors", settings.Coauthors, "comma-separated co-authors")
	flag.StringVar(&settings.Affiliation, "affiliation", settings.Affiliation, "author affiliation")
	flag.StringVar(&settings.Email, "email", settings.Email, "contact email")
	flag.Parse()

	files := describeFiles(flag.Args(), cfg.MaxUploadBytes, log)
	if len(files) == 0 {
		log.Error("no input files; pass thesis PDF/DOCX paths as arguments")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("create output directory", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := buildService(cfg, settings, log)
	enhancer := enhance.NewEnhancer(svc, cfg.EnhanceTimeout, log)
	assembler := assemble.New(assemble.FileExtractor{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	}, log)
	refs := reference.NewEngine(nil)
	conv := pipeline.NewConverter(assembler, enhancer, refs, log, cfg.OutputDir)

	result, err := conv.Convert(ctx, files, settings)
	if err != nil {
		log.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	log.Info("done",
		"output", result.OutputPath,
		"title", result.Article.Title,
		"references_valid", result.Validation.IsValid)
	for _, rec := range result.Validation.Recommendations {
		log.Warn("reference recommendation", "recommendation", rec)
	}
}

// describeFiles builds descriptors from path arguments, inferring the type
// from the extension. Unsupported extensions and oversized files are dropped
// here, matching the upload surface's whitelist and size limit.
func describeFiles(paths []string, maxBytes int64, log *slog.Logger) []thesis.FileDescriptor {
	var files []thesis.FileDescriptor
	for _, path := range paths {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if ext == "doc" {
			ext = "docx"
		}
		if ext != "pdf" && ext != "docx" {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.Size() > maxBytes {
			log.Warn("file exceeds size limit, skipping",
				"file", path, "size", info.Size(), "limit", maxBytes)
			continue
		}
		files = append(files, thesis.FileDescriptor{
			Filename: filepath.Base(path),
			Filepath: path,
			Type:     ext,
		})
	}
	return files
}

// buildService returns the configured enhancement handle, degrading to the
// disabled handle when AI is off or the provider has no key.
func buildService(cfg config.Config, settings thesis.Settings, log *slog.Logger) enhance.Service {
	if !settings.UseAI {
		return enhance.Disabled{}
	}
	if !cfg.HasProviderKey(settings.AIProvider) {
		log.Warn("no API key for provider, AI enhancement disabled", "provider", settings.AIProvider)
		return enhance.Disabled{}
	}
	if settings.AIProvider == "gpt4" {
		return enhance.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return enhance.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
}
