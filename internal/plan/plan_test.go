package plan

import (
	"strings"
	"testing"

	"craft/internal/core"
)

func TestStructure(t *testing.T) {
	tests := []struct {
		name          string
		format        core.Format
		sectionTitles []string
	}{
		{"card news has three content slots", core.FormatCardNews, []string{"핵심 내용 1", "핵심 내용 2", "핵심 내용 3"}},
		{"newsletter has news and detail", core.FormatNewsletter, []string{"주요 소식", "상세 내용"}},
		{"infographic has stats and info", core.FormatInfographic, []string{"주요 통계", "핵심 정보"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := Structure("건강한 식습관", tt.format)

			if !strings.Contains(content.Title, "건강한 식습관") {
				t.Errorf("title %q does not contain the topic", content.Title)
			}
			if !strings.Contains(content.Title, tt.format.String()) {
				t.Errorf("title %q does not contain the format name", content.Title)
			}
			if content.Introduction == "" {
				t.Error("introduction is empty")
			}

			if len(content.Sections) != len(tt.sectionTitles) {
				t.Fatalf("got %d sections, expected %d", len(content.Sections), len(tt.sectionTitles))
			}
			for i, title := range tt.sectionTitles {
				if content.Sections[i].Title != title {
					t.Errorf("section %d title = %q, expected %q", i, content.Sections[i].Title, title)
				}
				if content.Sections[i].Content != "" {
					t.Errorf("section %d content should be empty in the skeleton", i)
				}
			}
		})
	}
}

func TestStructureInfographicContainers(t *testing.T) {
	content := Structure("전기차 시장", core.FormatInfographic)

	if content.Statistics == nil {
		t.Error("statistics container should be present (empty, not nil)")
	}
	if len(content.Statistics) != 0 {
		t.Errorf("statistics should start empty, got %d", len(content.Statistics))
	}
	if content.VisualElements == nil {
		t.Error("visual elements container should be present (empty, not nil)")
	}
}

func TestStructureIsPure(t *testing.T) {
	first := Structure("주제", core.FormatCardNews)
	second := Structure("주제", core.FormatCardNews)

	first.Sections[0].Title = "변경됨"
	if second.Sections[0].Title != "핵심 내용 1" {
		t.Error("skeletons must not share section storage")
	}
}
