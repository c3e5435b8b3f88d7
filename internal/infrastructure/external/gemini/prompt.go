package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"stock-insight/internal/application/sentiment"
	"stock-insight/internal/domain/news"
)

// buildPrompt 組出情緒分析提示詞：每則新聞帶日期、前 100 字內文與情感分數，
// 並要求模型以嚴格 JSON 回覆。
func buildPrompt(company string, items []news.Item) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("根據以下新聞分析 %s 的市場情況：\n\n", company))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s: %s... (情感分數: %d%%)\n", item.Date, headRunes(item.Text, 100), item.ImpactPct))
	}
	sb.WriteString(`
請嚴格依照以下 JSON 格式回覆，不要加入其他文字：
{
    "sentiment": "positive或neutral或negative",
    "summary": "50字內的分析摘要",
    "suggestions": ["投資建議1", "投資建議2"]
}
`)
	return sb.String()
}

// parseAnalysis 解析模型回覆。模型偶爾會把 JSON 包在 code fence 內，
// 先剝除再解析；缺必要欄位視同解析失敗。
func parseAnalysis(text string) (sentiment.Analysis, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "json"))

	var out sentiment.Analysis
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return sentiment.Analysis{}, fmt.Errorf("parse model reply: %w", err)
	}
	if out.Sentiment == "" || out.Summary == "" || len(out.Suggestions) == 0 {
		return sentiment.Analysis{}, fmt.Errorf("model reply missing required fields")
	}
	return out, nil
}

func headRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
