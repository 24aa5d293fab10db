package generate

import (
	"fmt"

	"craft/internal/core"
)

const cardNewsGuide = `카드뉴스 형식으로 작성해주세요:
- 각 카드는 핵심 메시지 하나에 집중
- 간결하고 명확한 문장 (2-3문장)
- 시각적 요소 제안 포함
- 보통 5-10개의 카드로 구성`

const newsletterGuide = `뉴스레터 형식으로 작성해주세요:
- 전문적이고 깊이 있는 내용
- 각 섹션은 5-10문장으로 구성
- 독자와의 연결감을 주는 톤앤매너
- 명확한 섹션 구분`

const infographicGuide = `인포그래픽 형식으로 작성해주세요:
- 통계, 숫자, 비교 데이터 강조
- 시각화 타입 제안 (막대 그래프, 원형 차트 등)
- 간결하고 명확한 정보 전달
- 비교/대조 요소 포함`

// formatGuide returns the format-specific style rules embedded in the prompt.
func formatGuide(format core.Format) string {
	switch format {
	case core.FormatCardNews:
		return cardNewsGuide
	case core.FormatNewsletter:
		return newsletterGuide
	case core.FormatInfographic:
		return infographicGuide
	default:
		return newsletterGuide
	}
}

// BuildContentPrompt assembles the single generation instruction: topic,
// target format, style guide, and the serialized reference summaries when
// present.
func BuildContentPrompt(topic string, format core.Format, referenceInfo string) string {
	if referenceInfo == "" {
		referenceInfo = "참고자료 없음"
	}

	return fmt.Sprintf(`당신은 전문 콘텐츠 작가입니다. 다음 주제와 형식에 맞는 콘텐츠를 생성해주세요.

주제: %s
콘텐츠 형식: %s

%s

%s

각 섹션의 content는 최소 200자 이상으로 구체적이고 전문적으로 작성해주세요.`,
		topic, format, formatGuide(format), referenceInfo)
}
