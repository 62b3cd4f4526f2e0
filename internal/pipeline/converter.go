// Package pipeline drives one thesis-to-journal conversion end to end:
// assemble, enhance, validate references, build the article, render.
// Processing is synchronous per request; no state crosses requests.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/benyaminbatau/journal-app/internal/assemble"
	"github.com/benyaminbatau/journal-app/internal/enhance"
	"github.com/benyaminbatau/journal-app/internal/journal"
	"github.com/benyaminbatau/journal-app/internal/reference"
	"github.com/benyaminbatau/journal-app/internal/thesis"
)

// Converter wires the conversion stages together.
type Converter struct {
	assembler *assemble.Assembler
	enhancer  *enhance.Enhancer
	refs      *reference.Engine
	log       *slog.Logger
	outDir    string
}

func NewConverter(asm *assemble.Assembler, enh *enhance.Enhancer, refs *reference.Engine, log *slog.Logger, outDir string) *Converter {
	return &Converter{
		assembler: asm,
		enhancer:  enh,
		refs:      refs,
		log:       log,
		outDir:    outDir,
	}
}

// Result is the outcome of one conversion.
type Result struct {
	Article    journal.Article
	Validation reference.Report
	OutputPath string
}

// Convert runs the full pipeline for one request. Per-file extraction and
// enhancement failures are absorbed inside their stages; an empty file set
// or a writer failure is fatal and no partial output file is left behind.
func (c *Converter) Convert(ctx context.Context, files []thesis.FileDescriptor, settings thesis.Settings) (*Result, error) {
	content, err := c.assembler.Assemble(files)
	if err != nil {
		return nil, fmt.Errorf("assemble thesis content: %w", err)
	}
	c.log.Info("thesis content assembled",
		"words", content.Metadata.WordCount,
		"chapters", content.Metadata.ChapterCount,
		"references", content.Metadata.ReferenceCount)

	if settings.UseAI {
		c.enhancer.EnhanceContent(ctx, content)
	}

	formatted, err := c.refs.Format(content.References, settings.MinReferences)
	if err != nil {
		var shortfall *reference.ShortfallError
		if !errors.As(err, &shortfall) {
			return nil, fmt.Errorf("format references: %w", err)
		}
		c.log.Warn("reference shortfall", "count", shortfall.Count, "minimum", shortfall.Min)
	}

	validation := c.refs.Validate(formatted)
	if !validation.IsValid {
		c.log.Warn("reference validation flagged the bibliography",
			"total", validation.TotalCount,
			"recommendations", len(validation.Recommendations))
	}

	article := journal.AssembleArticle(content, settings)
	article.References = formatted

	writer, err := journal.ForFormat(settings.OutputFormat)
	if err != nil {
		return nil, err
	}

	data, err := writer.Render(article)
	if err != nil {
		return nil, fmt.Errorf("render article: %w", err)
	}

	outPath := filepath.Join(c.outDir,
		fmt.Sprintf("artikel_jurnal_%s.%s", generateULID(), writer.Extension()))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		// Never leave a partial file a download path could serve.
		os.Remove(outPath)
		return nil, fmt.Errorf("write output: %w", err)
	}

	c.log.Info("journal article generated", "path", outPath)
	return &Result{
		Article:    article,
		Validation: validation,
		OutputPath: outPath,
	}, nil
}
