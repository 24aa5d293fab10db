// Package imagegen plans and executes the image set for a content artifact.
// Each artifact walks a fixed machine: pending, existence check, then either
// a cached record or one generation call followed by persistence. Artifact
// identifiers are deterministic functions of format and slot, never of
// content, so the skip-on-exists cache is purely identifier-based.
package imagegen

import (
	"context"
	"fmt"

	"craft/internal/artifact"
	"craft/internal/core"
	"craft/internal/logger"
)

const jpegMIME = "image/jpeg"

// Image sizes per role, matching the model's supported dimensions.
const (
	sizeSquare   = "1024x1024" // cards, newsletter section illustration
	sizePortrait = "1024x1792" // infographic
	sizeWide     = "1792x1024" // newsletter header
)

// ImageModel is the generative image model boundary. *OpenAIClient satisfies
// it; tests inject fakes.
type ImageModel interface {
	Generate(ctx context.Context, prompt, size, quality string) ([]byte, error)
}

// Orchestrator drives per-format image synthesis against an artifact store.
type Orchestrator struct {
	model ImageModel
}

// NewOrchestrator creates an Orchestrator around an injected image model.
func NewOrchestrator(model ImageModel) *Orchestrator {
	return &Orchestrator{model: model}
}

// Synthesize produces the required image set for the format, one artifact at
// a time. Existing identifiers are recorded as cached without a model call.
// A failure on one artifact is recorded and the batch continues; the
// aggregate status reflects how much was produced.
func (o *Orchestrator) Synthesize(ctx context.Context, format core.Format, content core.GeneratedContent, store artifact.Store) core.ImageResult {
	var result core.ImageResult

	switch format {
	case core.FormatCardNews:
		if len(content.Sections) == 0 {
			return errorResult("카드뉴스 섹션이 없습니다.")
		}
		for i, section := range content.Sections {
			filename := fmt.Sprintf("card_%02d.jpeg", i+1)
			prompt := buildCardPrompt(i+1, len(content.Sections), section)
			o.produce(ctx, &result, store, filename, "card", section.Title, prompt, sizeSquare, "")
		}

	case core.FormatInfographic:
		prompt := buildInfographicPrompt(content)
		o.produce(ctx, &result, store, "infographic.jpeg", "infographic", content.Title, prompt, sizePortrait, "high")

	case core.FormatNewsletter:
		o.produce(ctx, &result, store, "newsletter_header.jpeg", "header", content.Title, buildHeaderPrompt(content), sizeWide, "")
		if len(content.Sections) > 0 {
			// Only the first section gets an illustration.
			section := content.Sections[0]
			o.produce(ctx, &result, store, "newsletter_section.jpeg", "section", section.Title, buildSectionPrompt(section), sizeSquare, "")
		}

	default:
		return errorResult(fmt.Sprintf("지원하지 않는 콘텐츠 형식: %s", format))
	}

	switch {
	case len(result.Errors) == 0:
		result.Status = core.StatusComplete
	case len(result.Images) > 0:
		result.Status = core.StatusPartial
	default:
		result.Status = core.StatusError
	}
	return result
}

// produce runs the artifact state machine for one identifier: cached record
// when the store already has it, otherwise generate, persist, record.
func (o *Orchestrator) produce(ctx context.Context, result *core.ImageResult, store artifact.Store, filename, role, title, prompt, size, quality string) {
	if store.Exists(filename) {
		logger.Debug("artifact cached, skipping generation", "filename", filename)
		result.Images = append(result.Images, core.ImageArtifact{
			Filename: filename,
			Role:     role,
			Title:    title,
			Cached:   true,
		})
		return
	}

	data, err := o.model.Generate(ctx, prompt, size, quality)
	if err != nil {
		logger.Warn("image generation failed", "filename", filename, "reason", err.Error())
		result.Errors = append(result.Errors, core.ImageError{Filename: filename, Message: err.Error()})
		return
	}

	if err := store.Save(filename, data, jpegMIME); err != nil {
		logger.Warn("artifact save failed", "filename", filename, "reason", err.Error())
		result.Errors = append(result.Errors, core.ImageError{Filename: filename, Message: err.Error()})
		return
	}

	result.Images = append(result.Images, core.ImageArtifact{
		Filename: filename,
		Role:     role,
		Title:    title,
		Cached:   false,
	})
}

func errorResult(message string) core.ImageResult {
	return core.ImageResult{Status: core.StatusError, Message: message}
}
