package imagegen

import (
	"fmt"
	"strings"

	"craft/internal/core"
)

const (
	maxPromptStats   = 10  // statistic lines injected into the infographic prompt
	cardExcerptLen   = 200 // card body excerpt
	headerExcerptLen = 150 // introduction / section excerpt for newsletters
)

// buildCardPrompt describes one square SNS card. index is 1-based.
func buildCardPrompt(index, total int, section core.ContentSection) string {
	return fmt.Sprintf(`Create a modern Korean card news image for social media:

Card %d/%d
Title: %s

Content: %s

Design requirements:
- Modern, clean design suitable for Instagram/SNS
- Square format (1080x1080)
- Bold, readable Korean text
- Attractive color scheme
- Professional layout
- Card number indicator visible
- Eye-catching visual elements

Style: Modern infographic, clean typography, vibrant colors`,
		index, total, section.Title, excerpt(section.Content, cardExcerptLen))
}

// buildInfographicPrompt describes the single portrait data-visualization
// image, with up to ten statistic lines injected.
func buildInfographicPrompt(content core.GeneratedContent) string {
	var lines []string
	for i, stat := range content.Statistics {
		if i >= maxPromptStats {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", stat.Label, stat.Value))
	}

	return fmt.Sprintf(`Create a professional infographic image:

Title: %s

Key Statistics:
%s

Design requirements:
- Professional infographic design
- Clear data visualization with charts, graphs, and icons
- Modern, clean layout
- Vibrant but professional colors
- Korean text support
- Portrait format (1080x1920)

Style: Data visualization, modern infographic, professional design`,
		content.Title, strings.Join(lines, "\n"))
}

// buildHeaderPrompt describes the landscape newsletter header.
func buildHeaderPrompt(content core.GeneratedContent) string {
	return fmt.Sprintf(`Create a professional newsletter header image:

Title: %s
Introduction: %s

Design requirements:
- Professional newsletter header design
- Elegant and sophisticated style
- Landscape format (1200x600)
- Clean typography
- Subtle, professional color scheme

Style: Modern newsletter header, professional, elegant`,
		content.Title, excerpt(content.Introduction, headerExcerptLen))
}

// buildSectionPrompt describes the illustration for the first newsletter
// section.
func buildSectionPrompt(section core.ContentSection) string {
	return fmt.Sprintf(`Create an illustration image for newsletter content:

Section Title: %s
Content Summary: %s

Design requirements:
- Newsletter illustration style
- Professional and engaging
- Landscape format (800x600)
- Clean, modern design

Style: Newsletter illustration, professional, engaging`,
		section.Title, excerpt(section.Content, headerExcerptLen))
}

// excerpt cuts s to at most n runes, without an ellipsis marker.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
