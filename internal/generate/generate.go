// Package generate fills the planner's skeleton with model-written content.
// The model call is single-attempt: no retry, no backoff. Any failure --
// transport fault, schema violation, empty reply -- degrades to the skeleton
// instead of propagating.
package generate

import (
	"context"
	"encoding/json"

	"craft/internal/core"
	"craft/internal/llm"
	"craft/internal/logger"
	"craft/internal/plan"
)

// TextModel is the generative text model boundary. *llm.Client satisfies it;
// tests inject fakes.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string, options llm.TextGenerationOptions) (string, error)
}

// Options tunes the generation call.
type Options struct {
	Temperature float32
	MaxTokens   int32
}

// Generator produces structured content for a topic. The model client is
// injected at construction time so tests can substitute doubles without
// touching the environment.
type Generator struct {
	model   TextModel
	options Options
}

// New creates a Generator. A nil model is allowed and means every call
// degrades to the skeleton (the tool stays usable without credentials).
func New(model TextModel, options Options) *Generator {
	return &Generator{model: model, options: options}
}

// Generate returns the content for a topic, merged over the planner's
// skeleton. The returned content is always usable. The error, when non-nil,
// reports why generation degraded to the skeleton; callers surface it as a
// degraded status rather than a failure.
func (g *Generator) Generate(ctx context.Context, topic string, format core.Format, referenceInfo string) (core.GeneratedContent, error) {
	skeleton := plan.Structure(topic, format)

	if g.model == nil {
		return skeleton, errNoModel
	}

	prompt := BuildContentPrompt(topic, format, referenceInfo)

	response, err := g.model.GenerateText(ctx, prompt, llm.TextGenerationOptions{
		MaxTokens:      g.options.MaxTokens,
		Temperature:    g.options.Temperature,
		ResponseSchema: ContentSchema(),
	})
	if err != nil {
		logger.Warn("content generation failed, using skeleton", "topic", topic, "format", format.Slug(), "reason", err.Error())
		return skeleton, err
	}

	if err := validateResponse(response); err != nil {
		logger.Warn("model response failed schema validation, using skeleton", "topic", topic, "format", format.Slug(), "reason", err.Error())
		return skeleton, err
	}

	var generated core.GeneratedContent
	if err := json.Unmarshal([]byte(response), &generated); err != nil {
		return skeleton, err
	}

	return merge(skeleton, generated, format), nil
}

type generateError string

func (e generateError) Error() string { return string(e) }

const errNoModel = generateError("no text model configured")

// merge lays the model output over the skeleton field by field. A field the
// model left empty keeps the skeleton's value; non-empty model values win.
// Statistics and visual elements are only taken for infographics.
func merge(skeleton, generated core.GeneratedContent, format core.Format) core.GeneratedContent {
	content := skeleton

	if generated.Title != "" {
		content.Title = generated.Title
	}
	if generated.Introduction != "" {
		content.Introduction = generated.Introduction
	}
	if len(generated.Sections) > 0 {
		sections := make([]core.ContentSection, len(generated.Sections))
		for i, section := range generated.Sections {
			keyPoints := section.KeyPoints
			if keyPoints == nil {
				keyPoints = []string{}
			}
			sections[i] = core.ContentSection{
				Title:     section.Title,
				Content:   section.Content,
				KeyPoints: keyPoints,
			}
		}
		content.Sections = sections
	}
	if len(generated.KeyPoints) > 0 {
		content.KeyPoints = generated.KeyPoints
	}
	if generated.Conclusion != "" {
		content.Conclusion = generated.Conclusion
	}

	if format == core.FormatInfographic {
		if len(generated.Statistics) > 0 {
			content.Statistics = generated.Statistics
		}
		if len(generated.VisualElements) > 0 {
			content.VisualElements = generated.VisualElements
		}
	}

	return content
}
