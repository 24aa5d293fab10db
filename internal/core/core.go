package core

import "errors"

// ErrEmptyTopic is returned when a request arrives without a topic.
// Validation happens before any model call is attempted.
var ErrEmptyTopic = errors.New("topic is required")

// Format identifies one of the supported content layouts. It is a closed
// enum: every dispatch on it is an exhaustive switch so that adding a new
// format fails to compile until all handlers cover it.
type Format int

const (
	FormatCardNews Format = iota
	FormatNewsletter
	FormatInfographic
)

// formatNames maps each format to its display (Korean) name, which is also
// what the prompt templates and skeleton titles use.
var formatNames = map[Format]string{
	FormatCardNews:    "카드뉴스",
	FormatNewsletter:  "뉴스레터",
	FormatInfographic: "인포그래픽",
}

// formatSlugs maps each format to its ASCII identifier used in flags,
// config and log output.
var formatSlugs = map[Format]string{
	FormatCardNews:    "card-news",
	FormatNewsletter:  "newsletter",
	FormatInfographic: "infographic",
}

// String returns the display name of the format (e.g. "카드뉴스").
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return formatNames[FormatNewsletter]
}

// Slug returns the ASCII identifier of the format (e.g. "card-news").
func (f Format) Slug() string {
	if slug, ok := formatSlugs[f]; ok {
		return slug
	}
	return formatSlugs[FormatNewsletter]
}

// ParseFormat resolves a user-supplied format name. Both the Korean display
// names and the ASCII slugs are accepted. The boolean reports whether the
// input named a known format; callers that receive false decide themselves
// whether to reject the input or fall back to the newsletter path.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "카드뉴스", "card-news", "cardnews":
		return FormatCardNews, true
	case "뉴스레터", "newsletter":
		return FormatNewsletter, true
	case "인포그래픽", "infographic":
		return FormatInfographic, true
	}
	return FormatNewsletter, false
}

// Formats returns all supported formats in display order.
func Formats() []Format {
	return []Format{FormatCardNews, FormatNewsletter, FormatInfographic}
}

// Status classifies the outcome of a pipeline run or an image batch.
type Status string

const (
	StatusSuccess  Status = "success"         // everything produced as requested
	StatusDegraded Status = "degraded"        // text generation fell back to the skeleton
	StatusComplete Status = "complete"        // image batch finished without errors
	StatusPartial  Status = "partial_success" // some artifacts produced, some failed
	StatusError    Status = "error"           // nothing usable was produced
)

// ContentSection is a single section of generated content. Sections keep
// their order from planning through rendering and image synthesis; the
// section index is the join key for per-card image identifiers.
type ContentSection struct {
	Title     string   `json:"title"`      // Section heading
	Content   string   `json:"content"`    // Body text (empty in skeletons)
	KeyPoints []string `json:"key_points"` // Optional bullet points for this section
}

// Statistic is a single label/value pair highlighted in an infographic.
type Statistic struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// VisualElement describes a chart, icon or other visual suggested for an
// infographic (e.g. type "막대 그래프").
type VisualElement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// GeneratedContent is the structured text artifact. Its shape is the schema
// contract enforced on the text model: a reply that does not conform exactly
// is treated as a failed call. Statistics and VisualElements are only
// populated for infographics.
type GeneratedContent struct {
	Title          string           `json:"title"`
	Introduction   string           `json:"introduction"`
	Sections       []ContentSection `json:"sections"`
	KeyPoints      []string         `json:"key_points"`
	Conclusion     string           `json:"conclusion"`
	Statistics     []Statistic      `json:"statistics,omitempty"`
	VisualElements []VisualElement  `json:"visual_elements,omitempty"`
}

// ReferenceSummary is the normalized record produced for one uploaded
// reference file. It is a tagged variant: Kind selects which field group is
// meaningful. Created per file at request time, consumed once by the
// planner/generator, then discarded.
type ReferenceSummary struct {
	Kind   string `json:"type"`            // "pdf", "excel", "csv" or "image"
	Status Status `json:"status"`          // StatusSuccess or StatusError
	Err    string `json:"error,omitempty"` // Failure message when Status is error

	// PDF fields
	Summary   string `json:"summary,omitempty"`    // Extracted text, truncated to 1000 chars + "..."
	PageCount int    `json:"page_count,omitempty"` // Number of pages that yielded text

	// Tabular fields (excel, csv)
	Columns     []string `json:"columns,omitempty"` // Up to 10 column names; no cell values
	RowCount    int      `json:"row_count,omitempty"`
	ColumnCount int      `json:"column_count,omitempty"`

	// Image fields
	Format string `json:"format,omitempty"` // e.g. "png", "jpeg"
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ContentRequest is the entry point of the pipeline. It is immutable once
// constructed.
type ContentRequest struct {
	Topic          string   `json:"topic"`
	Format         Format   `json:"format"`
	ReferenceFiles []string `json:"reference_files,omitempty"` // Local file paths
}

// ImageArtifact records one persisted image.
type ImageArtifact struct {
	Filename string `json:"filename"` // Deterministic identifier, e.g. "card_01.jpeg"
	Role     string `json:"role"`     // "card", "header", "section" or "infographic"
	Title    string `json:"title,omitempty"`
	Cached   bool   `json:"cached"` // True when the artifact already existed and no call was made
}

// ImageError records one failed artifact. Failures are isolated per
// artifact and never abort the batch.
type ImageError struct {
	Filename string `json:"filename"`
	Message  string `json:"error"`
}

// ImageResult aggregates an image synthesis batch.
type ImageResult struct {
	Status  Status          `json:"status"`            // complete, partial_success or error
	Message string          `json:"message,omitempty"` // Set when the whole batch was rejected
	Images  []ImageArtifact `json:"images"`
	Errors  []ImageError    `json:"errors,omitempty"`
}

// PipelineResult is the sole data surface returned to callers. It is never
// mutated after construction.
type PipelineResult struct {
	Topic            string           `json:"topic"`
	Format           Format           `json:"format"`
	RawContent       GeneratedContent `json:"raw_content"`
	FormattedContent string           `json:"formatted_content"`
	Images           []ImageArtifact  `json:"images,omitempty"`
	Status           Status           `json:"status"`
	Errors           []ImageError     `json:"errors,omitempty"`
}
