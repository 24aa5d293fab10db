// Package render turns structured content into display text, one layout per
// format. Output is decorative box-drawing text for humans; section content
// is emitted verbatim, so callers needing machine-readable data must use the
// raw content instead.
package render

import (
	"fmt"
	"strings"

	"craft/internal/core"
)

const (
	heavyRule  = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	newsletterCTA = "이 뉴스레터가 유용하셨나요? 피드백을 남겨주세요!"
	infoTip       = "💡 인포그래픽은 시각적 요소와 함께 보시면 더 효과적입니다."

	maxKeyPoints  = 5   // card-news key point block is capped at the top 5
	maxStatistics = 10  // infographic statistic lines are capped at 10
	maxBodyRunes  = 200 // infographic section bodies are truncated
)

// Render formats content for the given layout. Renderers are pure and
// deterministic; every format tolerates empty sections so that a skeleton
// fallback still renders. An unknown format falls back to the newsletter
// layout.
func Render(content core.GeneratedContent, format core.Format) string {
	switch format {
	case core.FormatCardNews:
		return renderCardNews(content)
	case core.FormatNewsletter:
		return renderNewsletter(content)
	case core.FormatInfographic:
		return renderInfographic(content)
	default:
		return renderNewsletter(content)
	}
}

func renderCardNews(content core.GeneratedContent) string {
	var b strings.Builder

	title := content.Title
	if title == "" {
		title = "제목 없음"
	}

	fmt.Fprintf(&b, "\n%s\n📌 카드뉴스: %s\n%s\n\n", heavyRule, title, heavyRule)

	if len(content.KeyPoints) > 0 {
		b.WriteString("🔑 핵심 포인트\n\n")
		for i, point := range content.KeyPoints {
			if i >= maxKeyPoints {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
		b.WriteString("\n")
	}

	for i, section := range content.Sections {
		sectionTitle := section.Title
		if sectionTitle == "" {
			sectionTitle = fmt.Sprintf("섹션 %d", i+1)
		}
		fmt.Fprintf(&b, "\n%s\n카드 %d: %s\n%s\n\n%s\n\n", heavyRule, i+1, sectionTitle, heavyRule, section.Content)
	}

	fmt.Fprintf(&b, "\n%s\n", heavyRule)
	return b.String()
}

func renderNewsletter(content core.GeneratedContent) string {
	var b strings.Builder

	title := content.Title
	if title == "" {
		title = "뉴스레터 제목"
	}

	border := strings.Repeat("═", 40)
	fmt.Fprintf(&b, "\n╔%s╗\n║          %s          ║\n╚%s╝\n\n", border, center(title, 30), border)

	if content.Introduction != "" {
		fmt.Fprintf(&b, "📬 인사말\n\n%s\n\n", content.Introduction)
	}

	for _, section := range content.Sections {
		fmt.Fprintf(&b, "%s\n📰 %s\n%s\n\n%s\n\n", heavyRule, section.Title, heavyRule, section.Content)
	}

	if content.Conclusion != "" {
		fmt.Fprintf(&b, "%s\n💭 마무리\n\n%s\n\n", heavyRule, content.Conclusion)
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", strings.Repeat("=", 50), newsletterCTA)
	return b.String()
}

func renderInfographic(content core.GeneratedContent) string {
	var b strings.Builder

	title := content.Title
	if title == "" {
		title = "인포그래픽 제목"
	}

	border := strings.Repeat("━", 40)
	blank := strings.Repeat(" ", 42)
	fmt.Fprintf(&b, "\n┏%s┓\n┃%s┃\n┃        📊 %s        ┃\n┃%s┃\n┗%s┛\n\n",
		border, blank, center(title, 30), blank, border)

	// Empty statistic/visual lists are omitted entirely, headers included.
	if len(content.Statistics) > 0 {
		b.WriteString("📈 주요 통계\n\n")
		for i, stat := range content.Statistics {
			if i >= maxStatistics {
				break
			}
			fmt.Fprintf(&b, "  • %s: %s\n", stat.Label, stat.Value)
		}
		b.WriteString("\n")
	}

	if len(content.VisualElements) > 0 {
		b.WriteString("🎨 시각적 요소\n\n")
		for _, element := range content.VisualElements {
			fmt.Fprintf(&b, "  [%s] %s\n", element.Type, element.Description)
		}
		b.WriteString("\n")
	}

	boxTop := strings.Repeat("─", 42)
	for i, section := range content.Sections {
		sectionTitle := section.Title
		if sectionTitle == "" {
			sectionTitle = fmt.Sprintf("섹션 %d", i+1)
		}
		body := truncateRunes(section.Content, maxBodyRunes)
		fmt.Fprintf(&b, "\n┌%s┐\n│ %d. %s │\n├%s┤\n│%s│\n│ %s │\n│%s│\n└%s┘\n\n",
			boxTop, i+1, padRight(sectionTitle, 35), boxTop, blank, padRight(body, 40), blank, boxTop)
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", strings.Repeat("━", 50), infoTip)
	return b.String()
}

// center pads s with spaces on both sides to at least width runes.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// padRight pads s with spaces to at least width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncateRunes cuts s to at most n runes. Content is Korean, so byte
// slicing would split characters.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
