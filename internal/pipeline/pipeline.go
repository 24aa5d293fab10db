// Package pipeline sequences the content creation stages: reference
// extraction, planning, structured generation, rendering, image synthesis.
// The coordinator is the only component aware of all stages; data flows
// strictly forward by value, and no per-request state outlives Run.
package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"craft/internal/artifact"
	"craft/internal/core"
	"craft/internal/extract"
	"craft/internal/imagegen"
	"craft/internal/logger"
	"craft/internal/render"
)

// ReferenceExtractor summarizes reference files.
type ReferenceExtractor interface {
	Summarize(paths []string) []core.ReferenceSummary
}

// ContentGenerator produces structured content for a topic. The returned
// error marks degradation to the skeleton, not a failure: the content is
// always usable.
type ContentGenerator interface {
	Generate(ctx context.Context, topic string, format core.Format, referenceInfo string) (core.GeneratedContent, error)
}

// ImageSynthesizer produces the image set for generated content.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, format core.Format, content core.GeneratedContent, store artifact.Store) core.ImageResult
}

// FileExtractor is the default ReferenceExtractor, backed by the extract
// package.
type FileExtractor struct{}

// Summarize implements ReferenceExtractor.
func (FileExtractor) Summarize(paths []string) []core.ReferenceSummary {
	return extract.Files(paths)
}

// Pipeline wires the stages together. Construct once, reuse across
// requests; it is stateless between invocations.
type Pipeline struct {
	extractor ReferenceExtractor
	generator ContentGenerator
	images    ImageSynthesizer
	store     artifact.Store
}

// New creates a Pipeline. images and store may be nil for text-only use;
// Run then skips image synthesis the way RunText does.
func New(generator ContentGenerator, images ImageSynthesizer, store artifact.Store) *Pipeline {
	return &Pipeline{
		extractor: FileExtractor{},
		generator: generator,
		images:    images,
		store:     store,
	}
}

// WithExtractor replaces the reference extractor. Used by tests.
func (p *Pipeline) WithExtractor(extractor ReferenceExtractor) *Pipeline {
	p.extractor = extractor
	return p
}

// Run executes the full pipeline: text content first, then the image set,
// merged into one result. Validation failures are returned before any model
// call is attempted.
func (p *Pipeline) Run(ctx context.Context, request core.ContentRequest) (core.PipelineResult, error) {
	result, err := p.RunText(ctx, request)
	if err != nil {
		return result, err
	}

	if p.images == nil || p.store == nil {
		return result, nil
	}

	imageResult := p.images.Synthesize(ctx, request.Format, result.RawContent, p.store)
	result.Images = imageResult.Images
	result.Errors = imageResult.Errors
	if imageResult.Message != "" {
		// A whole-batch rejection carries no per-artifact errors; surface its
		// reason instead of an unexplained error status.
		result.Errors = append(result.Errors, core.ImageError{Message: imageResult.Message})
	}
	result.Status = mergeStatus(result.Status, imageResult)

	logger.Info("pipeline finished",
		"topic", request.Topic,
		"format", request.Format.Slug(),
		"status", string(result.Status),
		"images", len(result.Images),
	)
	return result, nil
}

// RunText executes the text-only pipeline: extract references, plan,
// generate, render. Callers that manage image synthesis separately stop
// here.
func (p *Pipeline) RunText(ctx context.Context, request core.ContentRequest) (core.PipelineResult, error) {
	topic := strings.TrimSpace(request.Topic)
	if topic == "" {
		return core.PipelineResult{Status: core.StatusError}, core.ErrEmptyTopic
	}

	referenceInfo := p.referenceContext(request.ReferenceFiles)

	content, genErr := p.generator.Generate(ctx, topic, request.Format, referenceInfo)

	status := core.StatusSuccess
	if genErr != nil {
		// Generation fell back to the skeleton; the run still succeeds but
		// the degradation is surfaced instead of silently passing as success.
		status = core.StatusDegraded
	}

	return core.PipelineResult{
		Topic:            topic,
		Format:           request.Format,
		RawContent:       content,
		FormattedContent: render.Render(content, request.Format),
		Status:           status,
	}, nil
}

// referenceContext extracts every reference file, drops error-tagged
// summaries, and serializes the survivors as prompt context. Extraction
// faults never propagate past this point.
func (p *Pipeline) referenceContext(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	var serialized []string
	for _, summary := range p.extractor.Summarize(paths) {
		if summary.Status != core.StatusSuccess {
			logger.Warn("reference file skipped", "kind", summary.Kind, "reason", summary.Err)
			continue
		}
		data, err := json.Marshal(summary)
		if err != nil {
			continue
		}
		serialized = append(serialized, string(data))
	}

	return strings.Join(serialized, "\n\n")
}

// mergeStatus folds the image batch outcome into the text stage status.
// Precedence: error > partial_success > degraded > success.
func mergeStatus(textStatus core.Status, images core.ImageResult) core.Status {
	switch images.Status {
	case core.StatusError:
		return core.StatusError
	case core.StatusPartial:
		return core.StatusPartial
	default:
		return textStatus
	}
}

// Interface conformance for the concrete stage implementations.
var (
	_ ImageSynthesizer   = (*imagegen.Orchestrator)(nil)
	_ ReferenceExtractor = FileExtractor{}
)
