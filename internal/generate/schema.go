package generate

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// ContentSchema returns the Gemini response_schema for structured content.
// The model is constrained to the GeneratedContent shape; statistics and
// visual_elements stay optional because only infographics carry them.
func ContentSchema() *genai.Schema {
	sectionSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "섹션 제목",
			},
			"content": {
				Type:        genai.TypeString,
				Description: "섹션 본문 (최소 200자)",
			},
			"key_points": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"title", "content"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "콘텐츠 제목",
			},
			"introduction": {
				Type:        genai.TypeString,
				Description: "도입부 (2-3문장)",
			},
			"sections": {
				Type:  genai.TypeArray,
				Items: sectionSchema,
			},
			"key_points": {
				Type:        genai.TypeArray,
				Description: "전체 콘텐츠의 핵심 포인트",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"conclusion": {
				Type:        genai.TypeString,
				Description: "마무리 문단",
			},
			"statistics": {
				Type:        genai.TypeArray,
				Description: "인포그래픽용 통계 (label/value)",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"label": {Type: genai.TypeString},
						"value": {Type: genai.TypeString},
					},
					Required: []string{"label", "value"},
				},
			},
			"visual_elements": {
				Type:        genai.TypeArray,
				Description: "인포그래픽용 시각 요소 제안 (type/description)",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"type", "description"},
				},
			},
		},
		Required: []string{"title", "introduction", "sections", "key_points", "conclusion"},
	}
}

// contentSchemaJSON mirrors ContentSchema as a JSON Schema document. The
// model reply is validated against it before unmarshalling; a reply that
// drifts from the contract counts as a failed call, not as content.
const contentSchemaJSON = `{
	"type": "object",
	"required": ["title", "introduction", "sections", "key_points", "conclusion"],
	"properties": {
		"title": {"type": "string"},
		"introduction": {"type": "string"},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "content"],
				"properties": {
					"title": {"type": "string"},
					"content": {"type": "string"},
					"key_points": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"key_points": {"type": "array", "items": {"type": "string"}},
		"conclusion": {"type": "string"},
		"statistics": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["label", "value"],
				"properties": {
					"label": {"type": "string"},
					"value": {"type": "string"}
				}
			}
		},
		"visual_elements": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type", "description"],
				"properties": {
					"type": {"type": "string"},
					"description": {"type": "string"}
				}
			}
		}
	}
}`

var contentSchemaLoader = gojsonschema.NewStringLoader(contentSchemaJSON)

// validateResponse checks the raw model reply against the content schema.
func validateResponse(response string) error {
	result, err := gojsonschema.Validate(contentSchemaLoader, gojsonschema.NewStringLoader(response))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("response does not conform to content schema: %s", strings.Join(problems, "; "))
	}
	return nil
}
