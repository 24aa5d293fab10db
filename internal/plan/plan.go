// Package plan builds the format-specific skeleton structure that the text
// model fills in. The skeleton doubles as the fallback value when generation
// fails, so it must always be a valid GeneratedContent.
package plan

import (
	"fmt"

	"craft/internal/core"
)

// Structure returns the skeleton content structure for a topic and format.
// Pure function: no I/O, no model calls.
func Structure(topic string, format core.Format) core.GeneratedContent {
	content := core.GeneratedContent{
		Title:        fmt.Sprintf("%s에 대한 %s", topic, format),
		Introduction: fmt.Sprintf("%s에 대해 자세히 알아보겠습니다.", topic),
		KeyPoints:    []string{},
	}

	switch format {
	case core.FormatCardNews:
		content.Sections = []core.ContentSection{
			{Title: "핵심 내용 1", KeyPoints: []string{}},
			{Title: "핵심 내용 2", KeyPoints: []string{}},
			{Title: "핵심 내용 3", KeyPoints: []string{}},
		}
	case core.FormatNewsletter:
		content.Sections = []core.ContentSection{
			{Title: "주요 소식", KeyPoints: []string{}},
			{Title: "상세 내용", KeyPoints: []string{}},
		}
	case core.FormatInfographic:
		content.Sections = []core.ContentSection{
			{Title: "주요 통계", KeyPoints: []string{}},
			{Title: "핵심 정보", KeyPoints: []string{}},
		}
		content.Statistics = []core.Statistic{}
		content.VisualElements = []core.VisualElement{}
	}

	return content
}
